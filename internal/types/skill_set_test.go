package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jonathan/job-matcher/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkillSet_Normalizes(t *testing.T) {
	set := NewSkillSet([]string{" Python ", "SQL", "python", "", "  ", "Machine   Learning"})

	assert.Equal(t, SkillSet{"machine learning", "python", "sql"}, set)
	assert.NoError(t, set.Validate())
}

func TestNewSkillSet_OrderIndependent(t *testing.T) {
	a := NewSkillSet([]string{"go", "python", "sql"})
	b := NewSkillSet([]string{"SQL", "Go", "go", "Python", "sql"})

	assert.Equal(t, a, b)
}

func TestNewSkillSet_Empty(t *testing.T) {
	set := NewSkillSet(nil)

	assert.NotNil(t, set)
	assert.Empty(t, set)
	assert.NoError(t, set.Validate())
}

func TestParseSkillSet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SkillSet
	}{
		{"Comma separated", "Go, Python,sql", SkillSet{"go", "python", "sql"}},
		{"Trailing comma", "react,", SkillSet{"react"}},
		{"Empty", "", SkillSet{}},
		{"Only commas", " , ,", SkillSet{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSkillSet(tt.input))
		})
	}
}

func TestSkillSet_Contains(t *testing.T) {
	set := NewSkillSet([]string{"Go", "Python"})

	assert.True(t, set.Contains("go"))
	assert.True(t, set.Contains(" PYTHON "))
	assert.False(t, set.Contains("java"))
}

func TestSkillSet_ContainsUnsortedLiteral(t *testing.T) {
	set := SkillSet{"sql", "go", "python"}
	require.NoError(t, set.Validate())

	for _, skill := range set {
		assert.True(t, set.Contains(skill), skill)
	}
	assert.False(t, set.Contains("java"))
}

func TestSkillSet_ValidateContractViolations(t *testing.T) {
	tests := []struct {
		name string
		set  SkillSet
		msg  string
	}{
		{"Empty entry", SkillSet{"go", ""}, "empty skill"},
		{"Unnormalized entry", SkillSet{"Go"}, "not normalized"},
		{"Padded entry", SkillSet{" go"}, "not normalized"},
		{"Duplicate entry", SkillSet{"go", "go"}, "duplicate skill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, parsing.ErrContractViolation))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestSkillSet_UnmarshalJSON(t *testing.T) {
	var fromArray SkillSet
	require.NoError(t, json.Unmarshal([]byte(`["Go", "go", " SQL "]`), &fromArray))
	assert.Equal(t, SkillSet{"go", "sql"}, fromArray)

	var fromString SkillSet
	require.NoError(t, json.Unmarshal([]byte(`"python, Go"`), &fromString))
	assert.Equal(t, SkillSet{"go", "python"}, fromString)

	var bad SkillSet
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/jonathan/job-matcher/internal/parsing"
)

// SkillSet is a set of normalized skill names: folded to lower case, trimmed,
// whitespace-collapsed and deduplicated. NewSkillSet and ParseSkillSet return it
// sorted; literals are checked by Validate.
type SkillSet []string

// NewSkillSet normalizes raw skill names into a SkillSet. Blank entries are dropped.
func NewSkillSet(raw []string) SkillSet {
	seen := make(map[string]struct{}, len(raw))
	set := make(SkillSet, 0, len(raw))
	for _, r := range raw {
		skill := parsing.Fold(r)
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		set = append(set, skill)
	}
	sort.Strings(set)
	return set
}

// ParseSkillSet splits a comma-separated skills field, e.g. "Go, Python,sql".
func ParseSkillSet(csv string) SkillSet {
	return NewSkillSet(strings.Split(csv, ","))
}

// Contains reports whether skill, after normalization, is in the set.
func (s SkillSet) Contains(skill string) bool {
	return slices.Contains(s, parsing.Fold(skill))
}

// Validate reports a contract violation if the set holds blank, unnormalized or
// duplicate entries. Order is not checked; operations on a SkillSet treat it as
// an unordered set.
func (s SkillSet) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for i, skill := range s {
		if skill == "" {
			return &parsing.ContractError{Field: fmt.Sprintf("skills[%d]", i), Message: "empty skill"}
		}
		if parsing.Fold(skill) != skill {
			return &parsing.ContractError{Field: fmt.Sprintf("skills[%d]", i), Message: fmt.Sprintf("skill %q is not normalized", skill)}
		}
		if _, dup := seen[skill]; dup {
			return &parsing.ContractError{Field: fmt.Sprintf("skills[%d]", i), Message: fmt.Sprintf("duplicate skill %q", skill)}
		}
		seen[skill] = struct{}{}
	}
	return nil
}

// UnmarshalJSON accepts either a JSON array of names or a comma-separated string,
// and normalizes the result.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = NewSkillSet(list)
		return nil
	}

	var csv string
	if err := json.Unmarshal(data, &csv); err != nil {
		return fmt.Errorf("skills must be an array of strings or a comma-separated string: %w", err)
	}
	*s = ParseSkillSet(csv)
	return nil
}

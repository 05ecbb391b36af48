package matching

import (
	"fmt"
	"strings"
)

// Thresholds for describing a skill overlap
const (
	strongSkillMatch   = 0.7
	moderateSkillMatch = 0.4
	goodKeywordOverlap = 0.5
	maxNotedMissing    = 3
)

// generateNotes creates a brief explanation of the score.
func generateNotes(skillOverlap, keywordOverlap float64, matchedSkills, missingSkills []string) string {
	var parts []string

	switch {
	case len(matchedSkills) == 0:
		parts = append(parts, "No skill matches")
	case skillOverlap >= strongSkillMatch:
		parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(matchedSkills, ", ")))
	case skillOverlap >= moderateSkillMatch:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", strings.Join(matchedSkills, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("Weak skill match (%s)", strings.Join(matchedSkills, ", ")))
	}

	if len(missingSkills) > 0 {
		shown := missingSkills
		if len(shown) > maxNotedMissing {
			shown = shown[:maxNotedMissing]
		}
		note := "Missing " + strings.Join(shown, ", ")
		if extra := len(missingSkills) - len(shown); extra > 0 {
			note += fmt.Sprintf(" and %d more", extra)
		}
		parts = append(parts, note)
	}

	if keywordOverlap >= goodKeywordOverlap {
		parts = append(parts, "Good keyword overlap")
	} else if keywordOverlap > 0 {
		parts = append(parts, "Some keyword overlap")
	}

	return strings.Join(parts, ". ")
}

// Package parsing turns raw job-description and skill text into normalized terms.
package parsing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/job-matcher/internal/vocabulary"
)

// Fold lower-cases s, strips diacritics and compatibility forms, and collapses
// runs of whitespace to single spaces.
func Fold(s string) string {
	return strings.Join(strings.Fields(foldCase(s)), " ")
}

// foldCase lower-cases s and strips diacritics, leaving whitespace intact.
func foldCase(s string) string {
	if s == "" {
		return ""
	}

	// Transformers carry state, so the chain is built per call
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// NormalizeSkillName folds a skill name and resolves it to its canonical form
// through the vocabulary, e.g. "JS" -> "javascript". Returns "" for blank input.
func NormalizeSkillName(skillName string, vocab *vocabulary.Vocabulary) string {
	folded := Fold(skillName)
	if folded == "" {
		return ""
	}
	return vocab.Canonical(folded)
}

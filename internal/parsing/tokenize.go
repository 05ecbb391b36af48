package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/job-matcher/internal/vocabulary"
)

// minTokenLength is the minimum rune count of a kept token
const minTokenLength = 2

// Tokens holds the normalized terms of a text in order of appearance.
// Bigrams pair adjacent kept tokens within one clause.
type Tokens struct {
	Unigrams []string
	Bigrams  []string
}

// Empty reports whether no terms survived normalization.
func (t Tokens) Empty() bool {
	return len(t.Unigrams) == 0 && len(t.Bigrams) == 0
}

// Tokenizer normalizes free text into terms. It holds no mutable state.
type Tokenizer struct {
	vocab *vocabulary.Vocabulary
}

// NewTokenizer creates a Tokenizer backed by vocab, or the default vocabulary when nil.
func NewTokenizer(vocab *vocabulary.Vocabulary) *Tokenizer {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Tokenizer{vocab: vocab}
}

// Tokenize is shorthand for NewTokenizer(vocab).Tokenize(text).
func Tokenize(text string, vocab *vocabulary.Vocabulary) Tokens {
	return NewTokenizer(vocab).Tokenize(text)
}

// Tokenize lower-cases text, strips punctuation (keeping internal hyphens and
// the punctuation of known technology names such as "node.js" or "c++"), drops
// stop words and short tokens, and pairs adjacent survivors into bigrams.
// Bigrams never span a line break, clause punctuation or a dropped token.
func (t *Tokenizer) Tokenize(text string) Tokens {
	var out Tokens
	var run []string

	flush := func() {
		for i := 0; i+1 < len(run); i++ {
			out.Bigrams = append(out.Bigrams, run[i]+" "+run[i+1])
		}
		run = run[:0]
	}

	for _, line := range strings.Split(foldCase(text), "\n") {
		for _, field := range strings.Fields(line) {
			parts, boundary := t.splitField(field)
			if len(parts) == 0 {
				flush()
			}
			for i, part := range parts {
				if i > 0 {
					// pieces of one field were separated by punctuation
					flush()
				}
				if !t.keep(part) {
					flush()
					continue
				}
				out.Unigrams = append(out.Unigrams, part)
				run = append(run, part)
			}
			if boundary {
				flush()
			}
		}
		flush()
	}

	return out
}

// splitField strips the punctuation of a single whitespace-delimited field and
// reports whether the field closed a clause.
func (t *Tokenizer) splitField(field string) ([]string, bool) {
	core := strings.TrimRightFunc(field, func(r rune) bool {
		return isCloser(r) || strings.ContainsRune(clausePunct, r)
	})
	boundary := strings.ContainsAny(field[len(core):], clausePunct)

	candidate := strings.TrimLeftFunc(core, isOpener)
	if candidate == "" {
		return nil, boundary
	}
	if t.vocab.Known(candidate) {
		return []string{candidate}, boundary
	}

	var parts []string
	for _, alt := range strings.Split(candidate, "/") {
		if t.vocab.Known(alt) {
			parts = append(parts, alt)
			continue
		}
		parts = append(parts, wordPieces(alt)...)
	}
	return parts, boundary
}

// wordPieces splits s on any rune that is not a letter, digit or hyphen.
func wordPieces(s string) []string {
	pieces := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	parts := pieces[:0]
	for _, p := range pieces {
		p = strings.Trim(p, "-")
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// keep reports whether a normalized token survives filtering.
func (t *Tokenizer) keep(token string) bool {
	if utf8.RuneCountInString(token) < minTokenLength {
		return false
	}
	if t.vocab.IsStopWord(token) {
		return false
	}
	if t.vocab.Known(token) {
		return true
	}
	return strings.IndexFunc(token, unicode.IsLetter) >= 0
}

const clausePunct = ".,;:!?"

func isOpener(r rune) bool {
	return strings.ContainsRune(`([{"'`+"`", r)
}

func isCloser(r rune) bool {
	return strings.ContainsRune(`)]}"'`+"`", r)
}

// Package keywords extracts weighted, ranked keywords from job descriptions.
package keywords

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/parsing"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vocabulary"
)

// Default extraction parameters
const (
	DefaultBoost              = 3.0
	DefaultMinBigramFrequency = 2
)

// Options tunes keyword extraction. Zero fields take the defaults.
type Options struct {
	// Boost multiplies the frequency of terms found in the skill vocabulary
	Boost float64
	// Limit caps the number of returned keywords
	Limit int
	// MinBigramFrequency is how often a bigram that is not a known skill must
	// occur to be kept. Known skill bigrams are always kept.
	MinBigramFrequency int
}

// DefaultOptions returns the default extraction parameters.
func DefaultOptions() Options {
	return Options{
		Boost:              DefaultBoost,
		Limit:              types.DefaultKeywordLimit,
		MinBigramFrequency: DefaultMinBigramFrequency,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Boost <= 0 {
		o.Boost = d.Boost
	}
	if o.Limit <= 0 {
		o.Limit = d.Limit
	}
	if o.MinBigramFrequency <= 0 {
		o.MinBigramFrequency = d.MinBigramFrequency
	}
	return o
}

// Extractor derives a KeywordSet from description text. It is a pure function of
// its input and safe for concurrent use.
type Extractor struct {
	vocab     *vocabulary.Vocabulary
	tokenizer *parsing.Tokenizer
	opts      Options
}

// NewExtractor creates an Extractor. A nil vocab selects the default vocabulary.
func NewExtractor(vocab *vocabulary.Vocabulary, opts Options) *Extractor {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Extractor{
		vocab:     vocab,
		tokenizer: parsing.NewTokenizer(vocab),
		opts:      opts.withDefaults(),
	}
}

// Options returns the effective extraction parameters.
func (e *Extractor) Options() Options {
	return e.opts
}

// Extract returns the top keywords of description, weighted by boosted term
// frequency relative to the most frequent term. Aliases are merged into their
// canonical skill, and a known skill bigram absorbs the occurrences of its two
// words. An empty description yields an empty KeywordSet.
func (e *Extractor) Extract(description string) types.KeywordSet {
	tokens := e.tokenizer.Tokenize(description)
	if tokens.Empty() {
		return types.KeywordSet{}
	}

	counts := make(map[string]int, len(tokens.Unigrams)+len(tokens.Bigrams))
	for _, u := range tokens.Unigrams {
		counts[e.vocab.Canonical(u)]++
	}

	bigrams := make(map[string]int, len(tokens.Bigrams))
	for _, b := range tokens.Bigrams {
		bigrams[b]++
	}
	// non-skill bigrams are keyed on their canonical words so "js developer"
	// and "javascript developer" count as one term
	pairs := make(map[string]int, len(bigrams))
	for b, n := range bigrams {
		first, second, _ := strings.Cut(b, " ")
		pair := e.vocab.Canonical(first) + " " + e.vocab.Canonical(second)
		canonical := e.vocab.Canonical(b)
		if !e.vocab.IsSkill(canonical) {
			canonical = e.vocab.Canonical(pair)
		}
		if e.vocab.IsSkill(canonical) {
			counts[e.vocab.Canonical(first)] -= n
			counts[e.vocab.Canonical(second)] -= n
			counts[canonical] += n
			continue
		}
		pairs[pair] += n
	}
	for pair, n := range pairs {
		if n >= e.opts.MinBigramFrequency {
			counts[pair] += n
		}
	}

	boosted := make(map[string]float64, len(counts))
	maxWeight := 0.0
	for term, n := range counts {
		if n <= 0 {
			continue
		}
		w := float64(n)
		if e.vocab.IsSkill(term) {
			w *= e.opts.Boost
		}
		boosted[term] = w
		if w > maxWeight {
			maxWeight = w
		}
	}
	if maxWeight == 0 {
		return types.KeywordSet{}
	}

	keywords := make([]types.Keyword, 0, len(boosted))
	for term, w := range boosted {
		keywords = append(keywords, types.Keyword{Term: term, Weight: w / maxWeight})
	}
	types.SortKeywords(keywords)

	if len(keywords) > e.opts.Limit {
		keywords = keywords[:e.opts.Limit]
	}
	return types.KeywordSet(keywords)
}

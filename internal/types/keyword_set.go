// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"sort"

	"github.com/jonathan/job-matcher/internal/parsing"
)

// DefaultKeywordLimit caps the length of an extracted KeywordSet
const DefaultKeywordLimit = 20

// Keyword is a salient term of a job description with a weight in (0,1]
type Keyword struct {
	Term   string  `json:"term" validate:"required"`
	Weight float64 `json:"weight" validate:"gt=0,lte=1"`
}

// KeywordSet is ordered by weight descending, then term ascending, with no
// duplicate terms.
type KeywordSet []Keyword

// SortKeywords orders keywords by weight descending, breaking ties alphabetically.
func SortKeywords(k []Keyword) {
	sort.Slice(k, func(i, j int) bool {
		if k[i].Weight != k[j].Weight {
			return k[i].Weight > k[j].Weight
		}
		return k[i].Term < k[j].Term
	})
}

// Terms returns the keyword terms in order.
func (k KeywordSet) Terms() []string {
	terms := make([]string, len(k))
	for i, kw := range k {
		terms[i] = kw.Term
	}
	return terms
}

// TotalWeight sums all keyword weights.
func (k KeywordSet) TotalWeight() float64 {
	total := 0.0
	for _, kw := range k {
		total += kw.Weight
	}
	return total
}

// Validate reports a contract violation if any keyword is blank, unnormalized,
// out of the (0,1] weight range, duplicated, or out of order.
func (k KeywordSet) Validate() error {
	seen := make(map[string]struct{}, len(k))
	for i, kw := range k {
		field := fmt.Sprintf("keywords[%d]", i)
		if err := validate.Struct(kw); err != nil {
			return &parsing.ContractError{Field: field, Message: err.Error()}
		}
		if parsing.Fold(kw.Term) != kw.Term {
			return &parsing.ContractError{Field: field, Message: fmt.Sprintf("term %q is not normalized", kw.Term)}
		}
		if _, dup := seen[kw.Term]; dup {
			return &parsing.ContractError{Field: field, Message: fmt.Sprintf("duplicate term %q", kw.Term)}
		}
		seen[kw.Term] = struct{}{}

		if i > 0 {
			prev := k[i-1]
			if prev.Weight < kw.Weight || (prev.Weight == kw.Weight && prev.Term > kw.Term) {
				return &parsing.ContractError{Field: field, Message: "keywords are not sorted by weight"}
			}
		}
	}
	return nil
}

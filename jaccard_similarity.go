// jaccard_similarity.go
// Package jaccardsimilarity computes a multiset Jaccard similarity score
// between two documents to flag potential plagiarism. Both documents are
// segmented into words, stripped of punctuation and high-frequency function
// words, and counted into token multisets; the score is the multiset
// intersection size over the multiset union size:
//
//	score = Σ min(countA, countB) / Σ max(countA, countB)
//
// Repeated tokens count toward both sums, so the score rewards proportional
// overlap in word usage rather than mere vocabulary overlap. The score is
// always in [0, 1]; an empty union resolves to 0.
//
// This package is the convenience surface over pkg/jaccard, which exposes
// the full functional-options API.
package jaccardsimilarity

import (
	"context"
	"sync"

	"github.com/baditaflorin/go_jaccard_similarity/internal/core/domain"
	"github.com/baditaflorin/go_jaccard_similarity/pkg/jaccard"
)

// Result holds the outcome of a similarity computation.
type Result = domain.Result

// Option configures a TextSimilarity instance.
type Option = jaccard.Option

// TextSimilarity scores document pairs with the configured pipeline.
type TextSimilarity = jaccard.TextSimilarity

// Re-exported options for the common configuration knobs. The full set
// lives in pkg/jaccard.
var (
	WithThreshold       = jaccard.WithThreshold
	WithPrecision       = jaccard.WithPrecision
	WithLogger          = jaccard.WithLogger
	WithSegmenter       = jaccard.WithSegmenter
	WithSimpleSegmenter = jaccard.WithSimpleSegmenter
	WithTokenFilter     = jaccard.WithTokenFilter
)

// New creates a new TextSimilarity with the provided functional options.
func New(opts ...Option) (*TextSimilarity, error) {
	return jaccard.New(opts...)
}

var (
	defaultOnce sync.Once
	defaultTS   *TextSimilarity
	defaultErr  error
)

// Default returns a shared TextSimilarity with the default configuration.
// The dictionary-based segmenter loads once on first use.
func Default() (*TextSimilarity, error) {
	defaultOnce.Do(func() {
		defaultTS, defaultErr = New()
	})
	return defaultTS, defaultErr
}

// ComputeWithDefaults scores two documents with the default configuration.
// Initialization failures surface in the result's Details under "error".
func ComputeWithDefaults(original, candidate string) Result {
	ts, err := Default()
	if err != nil {
		return Result{
			Name:    "jaccard_similarity",
			Score:   0,
			Flagged: false,
			Details: map[string]interface{}{"error": err.Error()},
		}
	}
	return ts.Compute(context.Background(), original, candidate)
}

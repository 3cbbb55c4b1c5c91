package jaccard

import (
	"context"
	"errors"
	"math"

	"github.com/baditaflorin/go_jaccard_similarity/internal/core/domain"
	"github.com/baditaflorin/go_jaccard_similarity/internal/ports"
)

// SimilarityConfig holds configuration for the Jaccard similarity calculator.
type SimilarityConfig struct {
	Threshold float64
	Precision int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{
		Threshold: 0.7,
		Precision: 2,
	}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	if c.Precision < 0 {
		return errors.New("precision must not be negative")
	}
	return nil
}

// Calculator implements the multiset Jaccard similarity calculation:
// both documents are segmented, filtered, and counted into token multisets;
// the score is the multiset intersection size over the multiset union size.
type Calculator struct {
	config    SimilarityConfig
	logger    ports.Logger
	segmenter ports.Segmenter
	filter    ports.TokenFilter
}

// NewCalculator creates a new Jaccard similarity calculator.
func NewCalculator(config SimilarityConfig, logger ports.Logger, segmenter ports.Segmenter, filter ports.TokenFilter) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		config:    config,
		logger:    logger,
		segmenter: segmenter,
		filter:    filter,
	}, nil
}

// tokenize segments the text and drops punctuation, stop words and empty units.
func (c *Calculator) tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return c.filter.Filter(c.segmenter.Segment(text))
}

// Compute calculates the multiset Jaccard similarity between two texts.
// It is total: every text input, including the empty string, resolves to a
// defined score. An empty union scores 0.0.
func (c *Calculator) Compute(ctx context.Context, original, candidate string) domain.Result {
	c.logger.Debug("Starting jaccard similarity computation",
		"original_bytes", len(original),
		"candidate_bytes", len(candidate),
	)

	details := make(map[string]interface{})

	originalTokens := c.tokenize(original)
	candidateTokens := c.tokenize(candidate)

	c.logger.Debug("Tokenized texts",
		"original_tokens", len(originalTokens),
		"candidate_tokens", len(candidateTokens),
	)

	// Check context cancellation.
	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		details["error"] = "computation cancelled"
		return domain.Result{
			Name:    "jaccard_similarity",
			Score:   0,
			Flagged: false,
			Details: details,
		}
	default:
		// continue
	}

	originalSet := domain.NewMultiset(originalTokens)
	candidateSet := domain.NewMultiset(candidateTokens)

	intersection := originalSet.IntersectionCount(candidateSet)
	union := originalSet.UnionCount(candidateSet)

	var score float64
	if union > 0 {
		score = float64(intersection) / float64(union)
	}

	// Round the score to the configured precision.
	factor := math.Pow(10, float64(c.config.Precision))
	score = math.Round(score*factor) / factor

	flagged := score >= c.config.Threshold

	details["original_tokens"] = len(originalTokens)
	details["candidate_tokens"] = len(candidateTokens)
	details["intersection"] = intersection
	details["union"] = union
	details["threshold"] = c.config.Threshold

	c.logger.Debug("Computed jaccard similarity",
		"score", score,
		"flagged", flagged,
		"details", details,
	)

	return domain.Result{
		Name:            "jaccard_similarity",
		Score:           score,
		Flagged:         flagged,
		OriginalTokens:  len(originalTokens),
		CandidateTokens: len(candidateTokens),
		Intersection:    intersection,
		Union:           union,
		Threshold:       c.config.Threshold,
		Details:         details,
	}
}

package ports

import (
	"context"

	"github.com/baditaflorin/go_jaccard_similarity/internal/core/domain"
)

// SimilarityCalculator defines the interface for computing similarity between texts.
type SimilarityCalculator interface {
	Compute(ctx context.Context, original, candidate string) domain.Result
}

package segmenter

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/baditaflorin/go_jaccard_similarity/internal/ports"
)

// Cached wraps a Segmenter with an LRU cache keyed by document text.
// Useful in the service surface, where the same document is often
// compared against many candidates. Callers must not mutate the
// returned slices.
type Cached struct {
	inner ports.Segmenter
	cache *lru.Cache[string, []string]
}

var _ ports.Segmenter = (*Cached)(nil)

// NewCached wraps inner with an LRU cache holding up to size entries.
func NewCached(inner ports.Segmenter, size int) (*Cached, error) {
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, cache: cache}, nil
}

// Segment returns the cached token sequence for text, segmenting on a miss.
func (c *Cached) Segment(text string) []string {
	if tokens, ok := c.cache.Get(text); ok {
		return tokens
	}
	tokens := c.inner.Segment(text)
	c.cache.Add(text, tokens)
	return tokens
}

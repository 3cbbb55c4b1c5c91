// Package segmenter provides word-breaker implementations behind the
// ports.Segmenter interface.
package segmenter

import (
	"github.com/go-ego/gse"

	"github.com/baditaflorin/go_jaccard_similarity/internal/ports"
)

// Gse segments text with the gse dictionary- and HMM-based Chinese word
// breaker, which also handles mixed Latin content.
type Gse struct {
	seg gse.Segmenter
}

var _ ports.Segmenter = (*Gse)(nil)

// NewGse creates a segmenter backed by the default gse dictionary.
// Dictionary loading is the only failure point; it happens once here.
func NewGse() (*Gse, error) {
	seg, err := gse.New()
	if err != nil {
		return nil, err
	}
	return &Gse{seg: seg}, nil
}

// Segment breaks text into ordered word-like units. HMM is enabled so
// out-of-dictionary words still segment sensibly.
func (g *Gse) Segment(text string) []string {
	if text == "" {
		return nil
	}
	return g.seg.Cut(text, true)
}

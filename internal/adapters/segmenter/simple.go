package segmenter

import (
	"unicode"

	"github.com/baditaflorin/go_jaccard_similarity/internal/ports"
)

// Simple is a dependency-free word breaker: consecutive Latin letters and
// digits form one unit, every CJK ideograph stands alone, and every other
// non-space rune stands alone so downstream filters can drop punctuation.
// It exists for tests and for callers that do not need dictionary-based
// segmentation.
type Simple struct{}

var _ ports.Segmenter = (*Simple)(nil)

// NewSimple creates a new Simple segmenter.
func NewSimple() *Simple {
	return &Simple{}
}

// Segment breaks text into ordered units.
func (s *Simple) Segment(text string) []string {
	units := make([]string, 0, len(text)/2)
	var word []rune

	flush := func() {
		if len(word) > 0 {
			units = append(units, string(word))
			word = word[:0]
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isCJK(r):
			flush()
			units = append(units, string(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			word = append(word, r)
		default:
			// Punctuation and symbols stand alone.
			flush()
			units = append(units, string(r))
		}
	}
	flush()

	return units
}

// isCJK reports whether r is a CJK ideograph.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // unified ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // extension A
		(r >= 0xF900 && r <= 0xFAFF) // compatibility ideographs
}

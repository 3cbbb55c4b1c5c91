package ports

// Segmenter defines the interface for breaking raw text into ordered
// word-like units. Implementations must be deterministic: the same input
// yields the same output sequence.
type Segmenter interface {
	Segment(text string) []string
}

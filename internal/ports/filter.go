package ports

// TokenFilter defines the interface for discarding noise tokens after
// segmentation. Surviving tokens keep their input order.
type TokenFilter interface {
	Filter(tokens []string) []string
}

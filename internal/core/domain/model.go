package domain

// Result holds the outcome of a similarity computation.
type Result struct {
	Name            string
	Score           float64
	Flagged         bool
	OriginalTokens  int
	CandidateTokens int
	Intersection    int
	Union           int
	Threshold       float64
	Details         map[string]interface{}
}

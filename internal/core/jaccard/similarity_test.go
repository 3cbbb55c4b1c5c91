package jaccard

import (
	"context"
	"strings"
	"testing"
)

// fieldsSegmenter splits on whitespace, enough to exercise the scoring
// contract without a dictionary.
type fieldsSegmenter struct{}

func (fieldsSegmenter) Segment(text string) []string { return strings.Fields(text) }

// dropFilter drops the configured tokens and empty strings.
type dropFilter struct {
	drop map[string]struct{}
}

func (f dropFilter) Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := f.drop[t]; ok {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(DefaultConfig(), nopLogger{}, fieldsSegmenter{}, dropFilter{})
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func TestComputeScores(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		candidate string
		score     float64
		flagged   bool
	}{
		{
			name:      "identical texts",
			original:  "paper plagiarism detection via token overlap",
			candidate: "paper plagiarism detection via token overlap",
			score:     1.0,
			flagged:   true,
		},
		{
			name:      "disjoint vocabularies",
			original:  "alpha beta gamma",
			candidate: "delta epsilon zeta",
			score:     0.0,
			flagged:   false,
		},
		{
			name:      "both empty",
			original:  "",
			candidate: "",
			score:     0.0,
			flagged:   false,
		},
		{
			name:      "one empty",
			original:  "alpha beta",
			candidate: "",
			score:     0.0,
			flagged:   false,
		},
		{
			name:      "partial overlap",
			original:  "a b c d",
			candidate: "a b x y",
			// intersection 2, union 6
			score:   0.33,
			flagged: false,
		},
		{
			name:      "repeated tokens weigh by frequency",
			original:  "a a a b",
			candidate: "a b b",
			// intersection min(3,1)+min(1,2)=2, union max(3,1)+max(1,2)=5
			score:   0.4,
			flagged: false,
		},
	}

	calc := newTestCalculator(t)
	ctx := context.Background()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := calc.Compute(ctx, tc.original, tc.candidate)
			if result.Score != tc.score {
				t.Errorf("Score = %v, want %v, details: %v", result.Score, tc.score, result.Details)
			}
			if result.Flagged != tc.flagged {
				t.Errorf("Flagged = %v, want %v", result.Flagged, tc.flagged)
			}
		})
	}
}

func TestComputeSymmetry(t *testing.T) {
	calc := newTestCalculator(t)
	ctx := context.Background()

	pairs := [][2]string{
		{"a b c", "a b"},
		{"a a b", "b b a"},
		{"", "a b"},
		{"x y z", "p q"},
	}
	for _, p := range pairs {
		ab := calc.Compute(ctx, p[0], p[1])
		ba := calc.Compute(ctx, p[1], p[0])
		if ab.Score != ba.Score {
			t.Errorf("score(%q,%q)=%v but score(%q,%q)=%v", p[0], p[1], ab.Score, p[1], p[0], ba.Score)
		}
	}
}

func TestComputeBounds(t *testing.T) {
	calc := newTestCalculator(t)
	ctx := context.Background()

	pairs := [][2]string{
		{"a b c d e", "a"},
		{"a a a a", "a"},
		{"a b", "c d e f g h"},
		{"", ""},
	}
	for _, p := range pairs {
		result := calc.Compute(ctx, p[0], p[1])
		if result.Score < 0 || result.Score > 1 {
			t.Errorf("score(%q,%q)=%v out of [0,1]", p[0], p[1], result.Score)
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	calc := newTestCalculator(t)
	ctx := context.Background()

	first := calc.Compute(ctx, "a b b c", "b c d")
	for i := 0; i < 10; i++ {
		again := calc.Compute(ctx, "a b b c", "b c d")
		if again.Score != first.Score || again.Intersection != first.Intersection || again.Union != first.Union {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}

func TestComputeAppliesFilter(t *testing.T) {
	filter := dropFilter{drop: map[string]struct{}{"the": {}, "a": {}}}
	calc, err := NewCalculator(DefaultConfig(), nopLogger{}, fieldsSegmenter{}, filter)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	// Only stop words on both sides: nothing survives, empty union.
	result := calc.Compute(context.Background(), "the a the", "a the")
	if result.Score != 0 {
		t.Errorf("Score = %v, want 0 for stop-word-only inputs", result.Score)
	}
	if result.Union != 0 {
		t.Errorf("Union = %d, want 0", result.Union)
	}
}

func TestComputeCancelledContext(t *testing.T) {
	calc := newTestCalculator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := calc.Compute(ctx, "a b c", "a b c")
	if result.Score != 0 {
		t.Errorf("Score = %v, want 0 on cancelled context", result.Score)
	}
	if _, ok := result.Details["error"]; !ok {
		t.Error("expected error detail on cancelled context")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  SimilarityConfig
		wantErr bool
	}{
		{"valid defaults", DefaultConfig(), false},
		{"threshold too high", SimilarityConfig{Threshold: 1.5, Precision: 2}, true},
		{"threshold negative", SimilarityConfig{Threshold: -0.1, Precision: 2}, true},
		{"negative precision", SimilarityConfig{Threshold: 0.5, Precision: -1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestResultInvariants(t *testing.T) {
	calc := newTestCalculator(t)
	result := calc.Compute(context.Background(), "a b b c", "b c d")

	if result.Union != result.OriginalTokens+result.CandidateTokens-result.Intersection {
		t.Errorf("union %d != %d + %d - %d", result.Union, result.OriginalTokens, result.CandidateTokens, result.Intersection)
	}
}

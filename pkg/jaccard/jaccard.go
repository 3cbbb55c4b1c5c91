// Package jaccard provides the public API for multiset Jaccard text
// similarity, wired by default with a dictionary-based Chinese word breaker
// and the built-in punctuation/stop-word filter.
package jaccard

import (
	"context"

	"github.com/baditaflorin/go_jaccard_similarity/internal/adapters/filter"
	"github.com/baditaflorin/go_jaccard_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_jaccard_similarity/internal/adapters/segmenter"
	"github.com/baditaflorin/go_jaccard_similarity/internal/core/domain"
	core "github.com/baditaflorin/go_jaccard_similarity/internal/core/jaccard"
	"github.com/baditaflorin/go_jaccard_similarity/internal/ports"
	"github.com/baditaflorin/go_jaccard_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// TextSimilarity computes a plagiarism-oriented similarity score between
// two documents.
type TextSimilarity struct {
	calculator ports.SimilarityCalculator
	logger     ports.Logger
	segmenter  ports.Segmenter
	warmed     bool
}

// Option defines a functional option for configuring TextSimilarity.
type Option func(*textSimilarityConfig)

type textSimilarityConfig struct {
	Threshold    float64
	Precision    int
	Logger       ports.Logger
	Segmenter    ports.Segmenter
	Filter       ports.TokenFilter
	CacheSize    int
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithThreshold sets the score at or above which a candidate is flagged.
func WithThreshold(th float64) Option {
	return func(cfg *textSimilarityConfig) {
		cfg.Threshold = th
	}
}

// WithPrecision sets the number of decimal places the score is rounded to.
func WithPrecision(p int) Option {
	return func(cfg *textSimilarityConfig) {
		cfg.Precision = p
	}
}

// WithLogger sets a custom logger.
func WithLogger(log l.Logger) Option {
	return func(cfg *textSimilarityConfig) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// WithSegmenter sets a custom word breaker.
func WithSegmenter(seg ports.Segmenter) Option {
	return func(cfg *textSimilarityConfig) {
		cfg.Segmenter = seg
	}
}

// WithSimpleSegmenter selects the dependency-free rune-based word breaker
// instead of the dictionary-based default.
func WithSimpleSegmenter() Option {
	return func(cfg *textSimilarityConfig) {
		cfg.Segmenter = segmenter.NewSimple()
	}
}

// WithTokenFilter sets a custom token filter, replacing the built-in
// Chinese punctuation and stop-word tables.
func WithTokenFilter(f ports.TokenFilter) Option {
	return func(cfg *textSimilarityConfig) {
		cfg.Filter = f
	}
}

// WithTokenTables sets custom punctuation and stop-word tables for the
// built-in filter, for callers targeting other languages.
func WithTokenTables(punctuation, stopWords []string) Option {
	return func(cfg *textSimilarityConfig) {
		cfg.Filter = filter.New(punctuation, stopWords)
	}
}

// WithCachedSegmentation wraps the segmenter with an LRU cache of the given
// size. Useful when the same documents are compared repeatedly.
func WithCachedSegmentation(size int) Option {
	return func(cfg *textSimilarityConfig) {
		cfg.CacheSize = size
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *textSimilarityConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) Option {
	return func(cfg *textSimilarityConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new TextSimilarity instance.
func New(opts ...Option) (*TextSimilarity, error) {
	defaults := core.DefaultConfig()

	config := &textSimilarityConfig{
		Threshold:    defaults.Threshold,
		Precision:    defaults.Precision,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	// Set up segmenter if not provided
	if config.Segmenter == nil {
		seg, err := segmenter.NewGse()
		if err != nil {
			return nil, err
		}
		config.Segmenter = seg
	}

	if config.CacheSize != 0 {
		cached, err := segmenter.NewCached(config.Segmenter, config.CacheSize)
		if err != nil {
			return nil, err
		}
		config.Segmenter = cached
	}

	// Set up token filter if not provided
	if config.Filter == nil {
		config.Filter = filter.NewDefault()
	}

	coreConfig := core.SimilarityConfig{
		Threshold: config.Threshold,
		Precision: config.Precision,
	}
	calculator, err := core.NewCalculator(coreConfig, config.Logger, config.Segmenter, config.Filter)
	if err != nil {
		return nil, err
	}

	ts := &TextSimilarity{
		calculator: calculator,
		logger:     config.Logger,
		segmenter:  config.Segmenter,
	}

	if config.WarmUp {
		ts.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return ts, nil
}

// Compute calculates the similarity between the reference and candidate
// documents. The score is in [0, 1]; an empty union resolves to 0.
func (ts *TextSimilarity) Compute(ctx context.Context, original, candidate string) domain.Result {
	return ts.calculator.Compute(ctx, original, candidate)
}

// WarmUp pre-exercises the segmenter and calculator so first-request
// latency is flat.
func (ts *TextSimilarity) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if ts.warmed {
		ts.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(ts.logger, config)
	warmupMgr.RegisterCalculator(ts.calculator)
	warmupMgr.RegisterSegmenter(ts.segmenter)

	warmupMgr.WarmUp(ctx)
	ts.warmed = true
}

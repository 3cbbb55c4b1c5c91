package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_jaccard_similarity/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     200,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	calculators []ports.SimilarityCalculator
	segmenters  []ports.Segmenter
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCalculator adds a calculator to be warmed up
func (wm *Manager) RegisterCalculator(calc ports.SimilarityCalculator) {
	wm.calculators = append(wm.calculators, calc)
}

// RegisterSegmenter adds a segmenter to be warmed up
func (wm *Manager) RegisterSegmenter(seg ports.Segmenter) {
	wm.segmenters = append(wm.segmenters, seg)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.calculators)+len(wm.segmenters),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	wm.warmUpSegmenters(warmupCtx)
	wm.warmUpCalculators(warmupCtx)

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpSegmenters runs warmup for all registered segmenters
func (wm *Manager) warmUpSegmenters(ctx context.Context) {
	if len(wm.segmenters) == 0 {
		return
	}

	wm.logger.Debug("Warming up segmenters", "count", len(wm.segmenters))

	sampleText := generateSampleText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, segmenter := range wm.segmenters {
					_ = segmenter.Segment(sampleText)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpCalculators runs warmup for all registered calculators
func (wm *Manager) warmUpCalculators(ctx context.Context) {
	if len(wm.calculators) == 0 {
		return
	}

	wm.logger.Debug("Warming up calculators", "count", len(wm.calculators))

	// Sample documents of different overlap levels.
	original := generateSampleText(wm.config.SampleTextSize)
	similar := generateSimilarText(original, 0.1)   // 10% difference
	different := generateSimilarText(original, 0.5) // 50% difference

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, calculator := range wm.calculators {
					// Alternate between different overlap levels.
					switch j % 3 {
					case 0:
						_ = calculator.Compute(ctx, original, original)
					case 1:
						_ = calculator.Compute(ctx, original, similar)
					default:
						_ = calculator.Compute(ctx, original, different)
					}
				}
			}
		}()
	}

	wg.Wait()
}

// Helper functions for generating warmup data

// generateSampleText creates mixed Chinese/Latin sample text of roughly the
// specified byte size.
func generateSampleText(size int) string {
	words := []string{
		"今天", "天气", "真好", "我们", "一起", "出去", "散步", "晚上",
		"学习", "编程", "语言", "相似", "文本", "比较", "算法", "分词",
		"paper", "check", "token", "score", "jaccard", "filter",
	}

	var sb strings.Builder
	sb.Grow(size)
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}
	return sb.String()
}

// generateSimilarText replaces a fraction of the words in the original text
// with unrelated vocabulary.
func generateSimilarText(original string, diffRatio float64) string {
	words := strings.Fields(original)
	changeCount := int(float64(len(words)) * diffRatio)

	replacements := []string{
		"完全", "不同", "替换", "内容", "另外", "其他",
		"replaced", "modified", "changed", "altered",
	}

	newWords := make([]string, len(words))
	copy(newWords, words)
	for i := 0; i < changeCount && i < len(newWords); i++ {
		newWords[i] = replacements[i%len(replacements)]
	}

	return strings.Join(newWords, " ")
}

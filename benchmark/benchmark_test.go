package benchmark

import (
	"context"
	"strings"
	"testing"

	"github.com/baditaflorin/go_jaccard_similarity/internal/adapters/filter"
	"github.com/baditaflorin/go_jaccard_similarity/internal/adapters/segmenter"
	"github.com/baditaflorin/go_jaccard_similarity/pkg/jaccard"
)

// generateText builds mixed Chinese/Latin text of roughly the given byte size.
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "今天天气真好，我们一起出去散步。The similarity score rewards proportional overlap in word usage. 文本比较算法依赖分词质量。"
	var sb strings.Builder
	sb.Grow(size)
	for sb.Len() < size {
		sb.WriteString(sample)
	}
	return sb.String()[:size]
}

func BenchmarkSimpleSegmenter(b *testing.B) {
	benchmarks := []struct {
		name string
		size int
	}{
		{"Small", 100},
		{"Medium", 10_000},
		{"Large", 100_000},
	}

	seg := segmenter.NewSimple()
	for _, bm := range benchmarks {
		text := generateText(bm.size)
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				_ = seg.Segment(text)
			}
		})
	}
}

func BenchmarkCachedSegmenter(b *testing.B) {
	seg, err := segmenter.NewCached(segmenter.NewSimple(), 64)
	if err != nil {
		b.Fatal(err)
	}
	text := generateText(10_000)

	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seg.Segment(text)
	}
}

func BenchmarkFilter(b *testing.B) {
	f := filter.NewDefault()
	tokens := segmenter.NewSimple().Segment(generateText(10_000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Filter(tokens)
	}
}

func BenchmarkCompute(b *testing.B) {
	ts, err := jaccard.New(jaccard.WithSimpleSegmenter())
	if err != nil {
		b.Fatal(err)
	}

	benchmarks := []struct {
		name string
		size int
	}{
		{"Small", 100},
		{"Medium", 10_000},
		{"Large", 100_000},
	}

	ctx := context.Background()
	for _, bm := range benchmarks {
		original := generateText(bm.size)
		candidate := generateText(bm.size/2) + generateText(bm.size/2)
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(original) + len(candidate)))
			for i := 0; i < b.N; i++ {
				_ = ts.Compute(ctx, original, candidate)
			}
		})
	}
}

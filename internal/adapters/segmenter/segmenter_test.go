package segmenter

import (
	"reflect"
	"testing"
)

func TestSimpleSegment(t *testing.T) {
	s := NewSimple()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "latin words",
			text: "hello world",
			want: []string{"hello", "world"},
		},
		{
			name: "cjk ideographs stand alone",
			text: "今天天气",
			want: []string{"今", "天", "天", "气"},
		},
		{
			name: "punctuation stands alone",
			text: "好，好。",
			want: []string{"好", "，", "好", "。"},
		},
		{
			name: "mixed scripts",
			text: "Go语言 rocks",
			want: []string{"Go", "语", "言", "rocks"},
		},
		{
			name: "digits stay in word runs",
			text: "top10 results",
			want: []string{"top10", "results"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: " \n\t ",
			want: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Segment(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Segment(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestSimpleSegmentDeterministic(t *testing.T) {
	s := NewSimple()
	text := "今天天气真好 sunny day"

	first := s.Segment(text)
	for i := 0; i < 5; i++ {
		if got := s.Segment(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

// countingSegmenter records how many times Segment runs.
type countingSegmenter struct {
	inner interface{ Segment(string) []string }
	calls int
}

func (c *countingSegmenter) Segment(text string) []string {
	c.calls++
	return c.inner.Segment(text)
}

func TestCachedSegmentHitsCache(t *testing.T) {
	counting := &countingSegmenter{inner: NewSimple()}
	cached, err := NewCached(counting, 8)
	if err != nil {
		t.Fatalf("NewCached: %v", err)
	}

	text := "今天天气真好"
	first := cached.Segment(text)
	second := cached.Segment(text)

	if counting.calls != 1 {
		t.Errorf("inner segmenter ran %d times, want 1", counting.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs: %v vs %v", first, second)
	}
}

func TestCachedSegmentEvicts(t *testing.T) {
	counting := &countingSegmenter{inner: NewSimple()}
	cached, err := NewCached(counting, 1)
	if err != nil {
		t.Fatalf("NewCached: %v", err)
	}

	cached.Segment("甲")
	cached.Segment("乙") // evicts 甲
	cached.Segment("甲") // miss again

	if counting.calls != 3 {
		t.Errorf("inner segmenter ran %d times, want 3", counting.calls)
	}
}

func TestCachedRejectsInvalidSize(t *testing.T) {
	if _, err := NewCached(NewSimple(), 0); err == nil {
		t.Error("expected error for cache size 0")
	}
}

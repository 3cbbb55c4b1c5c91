// Package filter provides token filters that drop noise tokens emitted by
// a segmenter before similarity scoring.
package filter

import (
	"strings"

	"github.com/baditaflorin/go_jaccard_similarity/internal/ports"
)

// defaultPunctuation lists the punctuation tokens dropped from segmented
// output: the common CJK marks plus their Latin counterparts. Matching is
// exact, so full-width and half-width forms are separate entries.
var defaultPunctuation = []string{
	"，", "。", "！", "？", "；", "：", "“", "”", "‘", "’",
	"（", "）", "【", "】", "《", "》", "、", "…", "——", "—",
	",", ".", "!", "?", ";", ":", "(", ")", "[", "]",
	"<", ">", "\"", "'", "-", "--",
}

// defaultStopWords lists the high-frequency Chinese function words excluded
// from comparison. Script variants are intentionally absent: a simplified
// form never matches its traditional rendering.
var defaultStopWords = []string{
	"的", "了", "在", "是", "我", "有", "和", "就", "不", "人",
	"都", "一", "一个", "上", "也", "很", "到", "说", "要", "去",
	"你", "会", "着", "没有", "看", "好", "自己", "这",
}

// StopWordFilter drops punctuation tokens, stop words and empty units,
// preserving the order of the survivors. It applies no normalization:
// filtering is case- and script-variant-sensitive.
type StopWordFilter struct {
	punctuation map[string]struct{}
	stopWords   map[string]struct{}
}

// NewDefault returns a filter configured with the built-in Chinese
// punctuation and stop-word tables.
func NewDefault() *StopWordFilter {
	return New(defaultPunctuation, defaultStopWords)
}

// New returns a filter with custom punctuation and stop-word tables, for
// callers targeting other languages or scripts.
func New(punctuation, stopWords []string) *StopWordFilter {
	f := &StopWordFilter{
		punctuation: make(map[string]struct{}, len(punctuation)),
		stopWords:   make(map[string]struct{}, len(stopWords)),
	}
	for _, p := range punctuation {
		f.punctuation[p] = struct{}{}
	}
	for _, w := range stopWords {
		f.stopWords[w] = struct{}{}
	}
	return f
}

var _ ports.TokenFilter = (*StopWordFilter)(nil)

// Filter returns the tokens that survive filtering, in input order.
// Zero-length and whitespace-only units are dropped as well; segmenters
// should not emit them, but some pass separator runs through.
func (f *StopWordFilter) Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" || strings.TrimSpace(t) == "" {
			continue
		}
		if _, ok := f.punctuation[t]; ok {
			continue
		}
		if _, ok := f.stopWords[t]; ok {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

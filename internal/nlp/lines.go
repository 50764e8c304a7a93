package nlp

import (
	"regexp"
	"strings"
)

var lineBreaks = regexp.MustCompile(`\n+`)

// NewLineSegmenter returns the heuristic fallback segmenter: it splits on one
// or more newlines. It is a fully independent strategy, not a stub, so the
// pipeline behaves the same way whether or not the tokenizer model loaded.
func NewLineSegmenter() Segmenter {
	return &lineSegmenter{}
}

type lineSegmenter struct{}

func (s *lineSegmenter) Name() string { return "lines" }

func (s *lineSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}

	var segments []string
	for _, line := range lineBreaks.Split(text, -1) {
		if trimmed := trim(line); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}

	return segments
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

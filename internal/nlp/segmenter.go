// Package nlp provides sentence segmentation with two interchangeable
// strategies: a trained punkt tokenizer and a plain line splitter. The
// strategy is selected once, at construction, based on whether the tokenizer
// model loads in this process.
package nlp

import (
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
)

// Segmenter splits text into sentence-like segments. Implementations return
// trimmed, non-empty segments in text order and never fail.
type Segmenter interface {
	Name() string
	Segment(text string) []string
}

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
	tokenizerErr  error
)

// loadTokenizer loads the english punkt model once per process. A load
// failure is permanent: the capability is treated as absent for the rest of
// the process lifetime rather than retried per call.
func loadTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	tokenizerOnce.Do(func() {
		tokenizer, tokenizerErr = english.NewSentenceTokenizer(nil)
	})

	return tokenizer, tokenizerErr
}

// NewSegmenter returns the sentence-aware segmenter when the tokenizer model
// is available, falling back to line splitting otherwise. Degradation only
// affects precision, never correctness.
func NewSegmenter(log *zap.Logger) Segmenter {
	if log == nil {
		log = zap.NewNop()
	}

	tok, err := loadTokenizer()
	if err != nil {
		log.Warn("sentence tokenizer unavailable, falling back to line segmentation", zap.Error(err))
		return NewLineSegmenter()
	}

	return &sentenceSegmenter{tokenizer: tok}
}

type sentenceSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func (s *sentenceSegmenter) Name() string { return "sentences" }

func (s *sentenceSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}

	var segments []string
	for _, sentence := range s.tokenizer.Tokenize(text) {
		if trimmed := trim(sentence.Text); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}

	return segments
}

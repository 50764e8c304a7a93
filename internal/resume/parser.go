// Package resume extracts structured signals (skills, experience, education)
// from the plain text of a résumé.
package resume

import (
	"go.uber.org/zap"

	"github.com/Muigai-Kiongo/resume-matcher/internal/nlp"
)

// DefaultExperienceLimit bounds the number of experience entries collected
// when no limit is configured.
const DefaultExperienceLimit = 5

// Parser extracts entities from résumé text. All of its methods are total:
// empty or unparseable input produces empty results, never an error.
type Parser struct {
	segmenter       nlp.Segmenter
	logger          *zap.Logger
	vocabulary      []string
	experienceLimit int
}

// NewParser creates a parser. A nil segmenter selects the best available
// segmentation strategy, an empty vocabulary falls back to the built-in one
// and a non-positive limit falls back to DefaultExperienceLimit.
func NewParser(log *zap.Logger, segmenter nlp.Segmenter, vocabulary []string, experienceLimit int) *Parser {
	if log == nil {
		log = zap.NewNop()
	}

	if segmenter == nil {
		segmenter = nlp.NewSegmenter(log)
	}

	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary()
	}

	if experienceLimit <= 0 {
		experienceLimit = DefaultExperienceLimit
	}

	return &Parser{
		segmenter:       segmenter,
		logger:          log,
		vocabulary:      vocabulary,
		experienceLimit: experienceLimit,
	}
}

// SegmenterName reports which segmentation strategy the parser selected.
func (p *Parser) SegmenterName() string {
	return p.segmenter.Name()
}

// Package pipeline runs the résumé ingestion stages in sequence: text
// extraction, entity extraction and scoring. It is the seam the surrounding
// upload/persistence layer calls into.
package pipeline

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Muigai-Kiongo/resume-matcher/internal/document"
	"github.com/Muigai-Kiongo/resume-matcher/internal/logger"
	"github.com/Muigai-Kiongo/resume-matcher/internal/matching"
	"github.com/Muigai-Kiongo/resume-matcher/internal/resume"
)

// Report is the structured output of one pipeline run. It is a transient
// value with no identity beyond the call that produced it; persistence is the
// caller's job. Text is kept off the JSON form since it can be large.
type Report struct {
	RunID        string                `json:"run_id"`
	Source       string                `json:"source,omitempty"`
	Text         string                `json:"-"`
	TextChars    int                   `json:"text_chars"`
	Skills       []string              `json:"skills"`
	Experience   []string              `json:"experience"`
	Education    string                `json:"education,omitempty"`
	Segmenter    string                `json:"segmenter"`
	Capabilities document.Capabilities `json:"capabilities"`
}

// Pipeline wires the text extractor and entity parser together.
type Pipeline struct {
	extractor *document.Extractor
	parser    *resume.Parser
	logger    *zap.Logger
}

// New creates a pipeline. Nil dependencies fall back to defaults so callers
// only wire what they configure.
func New(log *zap.Logger, extractor *document.Extractor, parser *resume.Parser) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}

	if extractor == nil {
		extractor = document.New(log)
	}

	if parser == nil {
		parser = resume.NewParser(log, nil, nil, 0)
	}

	return &Pipeline{
		extractor: extractor,
		parser:    parser,
		logger:    log,
	}
}

// Run executes the extraction stages in order, logging per-stage stats. It
// never fails: a degraded stage produces empty artifacts and the run carries
// on. Each run is independent; no state is shared between invocations.
func (p *Pipeline) Run(src *document.Source) *Report {
	report := &Report{
		RunID:        uuid.New().String(),
		Segmenter:    p.parser.SegmenterName(),
		Capabilities: p.extractor.Capabilities(),
	}
	if src != nil {
		report.Source = src.DisplayName()
	}

	log := p.logger.With(zap.String("run_id", report.RunID))
	log = logger.WithFields(log, logger.StringFields(
		logger.StringField{Key: logger.FieldSource, Value: report.Source},
	)...)

	report.Text = p.extractor.Extract(src)
	report.TextChars = len(report.Text)
	log.Info("text extraction", zap.Int("chars", report.TextChars))

	report.Skills = p.parser.Skills(report.Text)
	log.Info("skill extraction", zap.Int("found", len(report.Skills)))

	report.Experience = p.parser.Experience(report.Text)
	log.Info("experience extraction", zap.Int("entries", len(report.Experience)))

	report.Education = p.parser.Education(report.Text)
	log.Info("education extraction", zap.Bool("found", report.Education != ""))

	return report
}

// Match scores the report's skills against job requirements, which may be a
// string list, a separated string or domain objects carrying a name.
func (p *Pipeline) Match(report *Report, requirements any) float64 {
	score := matching.Score(report.Skills, requirements)

	p.logger.Info("match score",
		zap.String("run_id", report.RunID),
		zap.Float64("score", score),
	)

	return score
}

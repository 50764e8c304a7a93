package pipeline

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Muigai-Kiongo/resume-matcher/internal/document"
	"github.com/Muigai-Kiongo/resume-matcher/internal/nlp"
	"github.com/Muigai-Kiongo/resume-matcher/internal/resume"
)

const sampleResume = `John Doe
Worked at Acme from 2019 to 2023 building Python services.
Skills: Python, SQL, Docker
Bachelor degree in Computer Science, Example University
`

func newTestPipeline() *Pipeline {
	parser := resume.NewParser(zap.NewNop(), nlp.NewLineSegmenter(), nil, 0)
	return New(zap.NewNop(), document.New(zap.NewNop()), parser)
}

func TestRunProducesFullReport(t *testing.T) {
	p := newTestPipeline()

	report := p.Run(document.FromBytes("resume.txt", []byte(sampleResume), ""))

	if report.RunID == "" {
		t.Fatalf("expected a run id")
	}
	if report.Source != "resume.txt" {
		t.Fatalf("unexpected source: %q", report.Source)
	}
	if report.TextChars == 0 {
		t.Fatalf("expected extracted text")
	}

	skills := strings.Join(report.Skills, ",")
	for _, want := range []string{"Python", "SQL", "Docker"} {
		if !strings.Contains(skills, want) {
			t.Fatalf("expected %s in skills, got %v", want, report.Skills)
		}
	}

	if len(report.Experience) == 0 {
		t.Fatalf("expected experience entries")
	}
	if !strings.Contains(report.Experience[0], "Worked at Acme") {
		t.Fatalf("unexpected first experience entry: %q", report.Experience[0])
	}

	if !strings.Contains(report.Education, "Bachelor") {
		t.Fatalf("unexpected education: %q", report.Education)
	}

	if !report.Capabilities.PDF || !report.Capabilities.Docx {
		t.Fatalf("expected full capabilities, got %+v", report.Capabilities)
	}
	if report.Segmenter == "" {
		t.Fatalf("expected segmenter name in report")
	}
}

func TestRunNeverFails(t *testing.T) {
	p := newTestPipeline()

	for name, src := range map[string]*document.Source{
		"nil source":    nil,
		"empty bytes":   document.FromBytes("empty.txt", nil, ""),
		"missing file":  document.FromFile("/nonexistent/resume.pdf", ""),
		"malformed pdf": document.FromBytes("bad.pdf", []byte("%PDF-1.4 junk"), ""),
	} {
		report := p.Run(src)
		if report == nil {
			t.Fatalf("%s: expected a report", name)
		}
		if report.RunID == "" {
			t.Fatalf("%s: expected a run id", name)
		}
		if len(report.Skills) != 0 || len(report.Experience) != 0 || report.Education != "" {
			t.Fatalf("%s: expected empty artifacts, got %+v", name, report)
		}
	}
}

func TestMatchUsesReportSkills(t *testing.T) {
	p := newTestPipeline()

	report := p.Run(document.FromBytes("resume.txt", []byte(sampleResume), ""))

	score := p.Match(report, "Python, SQL")
	if score != 1.0 {
		t.Fatalf("expected 1.0, got %v", score)
	}

	if got := p.Match(report, []string{}); got != 0.0 {
		t.Fatalf("expected 0.0 for empty requirements, got %v", got)
	}
}

func TestRunsAreIndependent(t *testing.T) {
	p := newTestPipeline()

	first := p.Run(document.FromBytes("resume.txt", []byte(sampleResume), ""))
	second := p.Run(document.FromBytes("resume.txt", []byte(sampleResume), ""))

	if first.RunID == second.RunID {
		t.Fatalf("expected distinct run ids")
	}

	if strings.Join(first.Skills, ",") != strings.Join(second.Skills, ",") {
		t.Fatalf("expected identical skills, got %v and %v", first.Skills, second.Skills)
	}
}

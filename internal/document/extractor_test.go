package document

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestExtractPlainTextBytes(t *testing.T) {
	e := New(zap.NewNop())

	src := FromBytes("resume.txt", []byte("Python developer since 2019"), "")
	if got := e.Extract(src); got != "Python developer since 2019" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractDropsInvalidUTF8(t *testing.T) {
	e := New(zap.NewNop())

	src := FromBytes("resume.txt", []byte("caf\xff\xfee"), "")
	if got := e.Extract(src); got != "cafe" {
		t.Fatalf("expected invalid bytes dropped, got %q", got)
	}
}

func TestExtractFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("worked at Acme"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	e := New(zap.NewNop())
	if got := e.Extract(FromFile(path, "")); got != "worked at Acme" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractMissingFileDegrades(t *testing.T) {
	e := New(zap.NewNop())

	if got := e.Extract(FromFile("/nonexistent/resume.pdf", "")); got != "" {
		t.Fatalf("expected empty text for missing file, got %q", got)
	}
}

func TestExtractNilSource(t *testing.T) {
	e := New(zap.NewNop())

	if got := e.Extract(nil); got != "" {
		t.Fatalf("expected empty text for nil source, got %q", got)
	}
}

func TestExtractPDFWithoutReaderWarns(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	e := NewWithReaders(zap.New(core))

	src := FromBytes("resume.pdf", []byte("%PDF-1.4 whatever"), "pdf")
	if got := e.Extract(src); got != "" {
		t.Fatalf("expected empty text without pdf reader, got %q", got)
	}

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(entries))
	}

	if !strings.Contains(entries[0].Message, "no reader installed") {
		t.Fatalf("unexpected warning: %q", entries[0].Message)
	}
}

func TestExtractMalformedPDFDegrades(t *testing.T) {
	e := New(zap.NewNop())

	src := FromBytes("resume.pdf", []byte("%PDF-1.4 this is not a real pdf"), "")
	if got := e.Extract(src); got != "" {
		t.Fatalf("expected empty text for malformed pdf, got %q", got)
	}
}

func TestExtractDocx(t *testing.T) {
	e := New(zap.NewNop())

	src := FromBytes("resume.docx", buildDocx(t, []string{"John Doe", "Python developer"}), "")
	got := e.Extract(src)
	if got != "John Doe\nPython developer" {
		t.Fatalf("unexpected docx text: %q", got)
	}
}

func TestExtractMalformedDocxDegrades(t *testing.T) {
	e := New(zap.NewNop())

	src := FromBytes("resume.docx", []byte("PK\x03\x04 not a real archive"), "")
	if got := e.Extract(src); got != "" {
		t.Fatalf("expected empty text for malformed docx, got %q", got)
	}
}

func TestParagraphText(t *testing.T) {
	content := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` +
		`<w:p><w:r><w:t>First </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`<w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got := paragraphText(content)
	if got != "First paragraph\nSecond paragraph" {
		t.Fatalf("unexpected paragraph text: %q", got)
	}

	if paragraphText("not xml at all <<<") != "" {
		t.Fatalf("expected empty text for broken xml")
	}
}

func TestCapabilities(t *testing.T) {
	full := New(zap.NewNop()).Capabilities()
	if !full.PDF || !full.Docx {
		t.Fatalf("expected default extractor to carry both readers: %+v", full)
	}

	bare := NewWithReaders(zap.NewNop()).Capabilities()
	if bare.PDF || bare.Docx {
		t.Fatalf("expected bare extractor to carry no readers: %+v", bare)
	}

	pdfOnly := NewWithReaders(zap.NewNop(), NewPDFReader()).Capabilities()
	if !pdfOnly.PDF || pdfOnly.Docx {
		t.Fatalf("unexpected capabilities: %+v", pdfOnly)
	}
}

// buildDocx assembles a minimal OOXML archive with one text run per paragraph.
func buildDocx(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	relsXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	files := map[string]string{
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": relsXML,
	}
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}

	return buf.Bytes()
}

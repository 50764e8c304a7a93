package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

type docxReader struct{}

// NewDocxReader returns the DOC/DOCX format reader.
func NewDocxReader() Reader {
	return &docxReader{}
}

func (r *docxReader) Format() Format {
	return FormatDocx
}

func (r *docxReader) Read(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}
	defer doc.Close()

	return paragraphText(doc.Editable().GetContent()), nil
}

// documentXML mirrors the parts of word/document.xml needed for text
// extraction: body > paragraphs > runs > text elements.
type documentXML struct {
	Body struct {
		Paragraphs []struct {
			Runs []struct {
				Text []struct {
					Content string `xml:",chardata"`
				} `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"body"`
}

// paragraphText renders raw document XML as paragraph lines joined with
// newlines, dropping paragraphs that carry no text.
func paragraphText(content string) string {
	var doc documentXML
	if err := xml.Unmarshal([]byte(content), &doc); err != nil {
		return ""
	}

	var lines []string
	for _, para := range doc.Body.Paragraphs {
		var b strings.Builder
		for _, run := range para.Runs {
			for _, t := range run.Text {
				b.WriteString(t.Content)
			}
		}

		if line := strings.TrimSpace(b.String()); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type pdfReader struct{}

// NewPDFReader returns the PDF format reader.
func NewPDFReader() Reader {
	return &pdfReader{}
}

func (r *pdfReader) Format() Format {
	return FormatPDF
}

// Read extracts text page by page and joins pages with newlines. Pages that
// yield no text (scanned or image-only pages) contribute nothing.
func (r *pdfReader) Read(content []byte) (text string, err error) {
	// The pdf library panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("parsing pdf: %v", rec)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil || strings.TrimSpace(pageText) == "" {
			continue
		}

		pages = append(pages, strings.TrimRight(pageText, "\n"))
	}

	return strings.Join(pages, "\n"), nil
}

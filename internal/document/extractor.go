package document

import (
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Muigai-Kiongo/resume-matcher/internal/logger"
	"github.com/Muigai-Kiongo/resume-matcher/internal/utils"
)

const previewLogLength = 120

// Reader extracts plain text from a single binary document format.
type Reader interface {
	Format() Format
	Read(content []byte) (string, error)
}

// Capabilities records which optional format readers are installed.
type Capabilities struct {
	PDF  bool `json:"pdf"`
	Docx bool `json:"docx"`
}

// Extractor converts raw documents into plain text. Extraction is total: any
// failure degrades to an empty string with a warning instead of an error.
type Extractor struct {
	readers map[Format]Reader
	logger  *zap.Logger
}

// New creates an extractor with the default PDF and DOCX readers installed.
func New(log *zap.Logger) *Extractor {
	return NewWithReaders(log, NewPDFReader(), NewDocxReader())
}

// NewWithReaders creates an extractor with only the provided readers. A format
// without a reader degrades to an empty result, which is how tests and
// stripped-down builds exercise the reduced feature set.
func NewWithReaders(log *zap.Logger, readers ...Reader) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}

	installed := make(map[Format]Reader, len(readers))
	for _, r := range readers {
		installed[r.Format()] = r
	}

	return &Extractor{readers: installed, logger: log}
}

// Capabilities reports which format readers this extractor carries.
func (e *Extractor) Capabilities() Capabilities {
	_, pdf := e.readers[FormatPDF]
	_, docx := e.readers[FormatDocx]

	return Capabilities{PDF: pdf, Docx: docx}
}

// Extract returns the plain text of the source. An empty string means "no text
// available" and is not an error: missing readers, unreadable files and
// malformed documents all degrade to it.
func (e *Extractor) Extract(src *Source) string {
	if src == nil {
		return ""
	}

	content := src.Content
	if content == nil && src.Path != "" {
		data, err := os.ReadFile(src.Path)
		if err != nil {
			e.logger.Warn("reading document from disk",
				zap.String(logger.FieldSource, src.DisplayName()),
				zap.Error(err),
			)
			return ""
		}
		content = data
	}

	format := src.resolveFormat(content)
	log := logger.WithDocumentFields(e.logger, string(format), src.DisplayName())

	switch format {
	case FormatPDF, FormatDocx:
		reader, ok := e.readers[format]
		if !ok {
			log.Warn("no reader installed for format, returning empty text")
			return ""
		}

		text, err := reader.Read(content)
		if err != nil {
			log.Warn("extracting text", zap.Error(err))
			return ""
		}

		log.Debug("extracted text",
			zap.Int("chars", len(text)),
			zap.String("preview", utils.TruncateForLog(text, previewLogLength)),
		)
		return text
	default:
		// Unknown binary content and plain-text files alike: tolerant UTF-8
		// decode, invalid sequences dropped.
		text := strings.ToValidUTF8(string(content), "")
		log.Debug("decoded as plain text", zap.Int("chars", len(text)))
		return text
	}
}

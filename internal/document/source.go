package document

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format identifies a resolved document format.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDocx    Format = "docx"
	FormatText    Format = "text"
	FormatUnknown Format = "unknown"
)

// Source is a single document to extract text from. Either Path or Content is
// set; when both are present Content wins. Ext is an optional extension hint
// (without the dot) and is kept lower-cased.
type Source struct {
	Path    string
	Name    string
	Content []byte
	Ext     string
}

// FromFile creates a source backed by a file on disk.
func FromFile(path, ext string) *Source {
	return &Source{
		Path: path,
		Name: filepath.Base(path),
		Ext:  normalizeExt(ext),
	}
}

// FromBytes creates an in-memory source.
func FromBytes(name string, content []byte, ext string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Ext:     normalizeExt(ext),
	}
}

// FromReader drains a byte-bearing stream into an in-memory source. The stream
// is rewound first: upload handlers often hand over a reader that has already
// been consumed.
func FromReader(name string, r io.Reader, ext string) (*Source, error) {
	if seeker, ok := r.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewinding %q: %w", name, err)
		}
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return FromBytes(name, content, ext), nil
}

// Format resolves the effective format of the source: the explicit hint wins,
// then the filename suffix, then content sniffing.
func (s *Source) Format() Format {
	return s.resolveFormat(s.Content)
}

func (s *Source) resolveFormat(content []byte) Format {
	if f := formatFromExt(s.Ext); f != FormatUnknown {
		return f
	}

	name := s.Name
	if name == "" {
		name = s.Path
	}
	if ext := strings.TrimPrefix(filepath.Ext(name), "."); ext != "" {
		// A real extension that maps to no binary format means plain text.
		return formatFromExt(normalizeExt(ext))
	}

	return sniffFormat(content)
}

// DisplayName returns a human-readable identifier for logs.
func (s *Source) DisplayName() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Path != "":
		return s.Path
	default:
		return "in-memory buffer"
	}
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

func formatFromExt(ext string) Format {
	switch ext {
	case "pdf":
		return FormatPDF
	case "doc", "docx":
		return FormatDocx
	case "":
		return FormatUnknown
	default:
		return FormatText
	}
}

// sniffFormat inspects magic bytes: %PDF for PDF, the ZIP local-file header
// for DOCX (OOXML files are ZIP archives).
func sniffFormat(content []byte) Format {
	switch {
	case bytes.HasPrefix(content, []byte("%PDF")):
		return FormatPDF
	case bytes.HasPrefix(content, []byte("PK")):
		return FormatDocx
	default:
		return FormatUnknown
	}
}

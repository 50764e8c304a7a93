package resume

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultVocabulary returns the built-in list of common technical and soft
// skills used when no vocabulary is configured.
func DefaultVocabulary() []string {
	return []string{
		"Python", "Java", "Excel", "Machine Learning", "Django", "React", "SQL",
		"Project Management", "Communication", "Leadership", "AWS", "Docker", "Kubernetes",
		"REST", "GraphQL", "TypeScript", "JavaScript", "HTML", "CSS",
	}
}

// VocabularySource describes where a skill vocabulary comes from.
type VocabularySource struct {
	// Name is used in error messages to give more context.
	Name string
	// Skills is an inline vocabulary provided via configuration or flags.
	Skills []string
	// File points to a file with one skill per line (commas and semicolons
	// also separate entries). When set it takes precedence over Skills.
	File string
}

var vocabularySeparators = regexp.MustCompile(`[\n,;]+`)

// LoadVocabulary returns the resolved vocabulary from the provided source.
// When File is set it takes precedence over Skills. Entries are trimmed and
// empties dropped. An error is returned when the source resolves to nothing,
// so a misconfigured vocabulary fails loudly instead of silently matching no
// skills.
func LoadVocabulary(src VocabularySource) ([]string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "vocabulary"
	}

	entries := src.Skills

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		entries = vocabularySeparators.Split(string(data), -1)
	}

	vocabulary := make([]string, 0, len(entries))
	for _, entry := range entries {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			vocabulary = append(vocabulary, trimmed)
		}
	}

	if len(vocabulary) == 0 {
		if file != "" {
			return nil, fmt.Errorf("%s file %q is empty", name, file)
		}
		return nil, fmt.Errorf("%s is not configured", name)
	}

	return vocabulary, nil
}

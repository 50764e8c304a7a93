package resume

import (
	"regexp"
	"strings"
)

// Bare year tokens in the 1900-2099 range.
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

var experienceKeywords = []string{
	"experience",
	"worked at",
	"responsible for",
	"role:",
	"position:",
}

// Experience returns up to the configured limit of segments that look like
// work history, in text order.
func (p *Parser) Experience(text string) []string {
	if text == "" {
		return nil
	}

	var entries []string
	for _, segment := range p.segmenter.Segment(text) {
		if !looksLikeExperience(segment) {
			continue
		}

		entries = append(entries, segment)
		if len(entries) >= p.experienceLimit {
			break
		}
	}

	return entries
}

func looksLikeExperience(segment string) bool {
	lower := strings.ToLower(segment)
	for _, keyword := range experienceKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return yearPattern.MatchString(segment)
}

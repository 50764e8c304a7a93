package resume

import "regexp"

var educationPattern = regexp.MustCompile(`(?i)\b(university|college|bachelor|master|degree|phd|mba)\b`)

// Education returns the first segment that mentions formal education, or the
// empty string when nothing matches.
func (p *Parser) Education(text string) string {
	if text == "" {
		return ""
	}

	for _, segment := range p.segmenter.Segment(text) {
		if educationPattern.MatchString(segment) {
			return segment
		}
	}

	return ""
}

package resume

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/Muigai-Kiongo/resume-matcher/internal/matching"
)

// Capitalised tokens of three or more characters, allowing the punctuation
// that shows up in tool names (C++, C#, Node.js, scikit-learn style).
var fallbackSkillPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z0-9+#.\-]{2,}\b`)

// Skills returns the distinct vocabulary entries present in the text, in
// vocabulary order, with case-insensitive substring matching. When nothing in
// the vocabulary matches, a capitalised-token scan catches framework and
// language names the vocabulary is missing. The fallback is best effort and
// may over-match proper nouns; it is kept deliberately loose.
func (p *Parser) Skills(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	found := matching.NewSkillSet()
	for _, skill := range p.vocabulary {
		if skill == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			found.Add(skill)
		}
	}

	if found.Len() == 0 {
		for _, token := range fallbackSkillPattern.FindAllString(text, -1) {
			found.Add(token)
		}
		p.logger.Debug("vocabulary matched nothing, used capitalised-token fallback",
			zap.Int("found", found.Len()),
		)
	}

	return found.Items()
}

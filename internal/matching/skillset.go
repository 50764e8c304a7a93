// Package matching computes the skill-overlap score between a résumé and a
// job posting.
package matching

import "strings"

// SkillSet is an ordered collection of distinct skill names. Membership is
// case-insensitive; the casing of the first occurrence is preserved.
type SkillSet struct {
	items []string
	seen  map[string]struct{}
}

// NewSkillSet creates a set from the provided names, dropping empties and
// duplicates.
func NewSkillSet(names ...string) *SkillSet {
	s := &SkillSet{seen: make(map[string]struct{})}
	for _, name := range names {
		s.Add(name)
	}

	return s
}

// Add inserts a skill, trimming whitespace and deduplicating
// case-insensitively. It reports whether the skill was actually added.
func (s *SkillSet) Add(raw string) bool {
	name := strings.TrimSpace(raw)
	if name == "" {
		return false
	}

	key := strings.ToLower(name)
	if _, ok := s.seen[key]; ok {
		return false
	}

	s.seen[key] = struct{}{}
	s.items = append(s.items, name)

	return true
}

func (s *SkillSet) Len() int {
	return len(s.items)
}

// Items returns the skills in insertion order.
func (s *SkillSet) Items() []string {
	items := make([]string, len(s.items))
	copy(items, s.items)

	return items
}

// Contains reports case-insensitive membership.
func (s *SkillSet) Contains(name string) bool {
	_, ok := s.seen[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

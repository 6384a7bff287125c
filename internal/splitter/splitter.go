package splitter

import (
	"strings"

	"resumerag/internal/domain"
)

// HeaderPolicy decides whether a trimmed line opens a new section.
type HeaderPolicy interface {
	Name() string
	IsHeader(line string, format domain.Format) bool
}

// Splitter scans extracted lines in order and groups them into titled
// sections under whichever policy it was built with.
type Splitter struct {
	policy HeaderPolicy
}

// New creates a splitter using the given header detection policy.
func New(policy HeaderPolicy) *Splitter {
	return &Splitter{policy: policy}
}

// Split groups the document's lines into sections. Non-empty lines before
// the first recognized header are discarded, blank lines are skipped, and
// the final section's content runs to end of document. An empty document
// yields nil; callers upgrade that to the single full-document fallback.
func (s *Splitter) Split(doc domain.Document) []domain.Section {
	lines := strings.Split(doc.Text, "\n")
	var sections []domain.Section
	var current *domain.Section
	var content []string

	flush := func(endLine int) {
		if current == nil {
			return
		}
		current.Content = strings.Join(content, "\n")
		current.EndLine = endLine
		sections = append(sections, *current)
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if s.policy.IsHeader(trimmed, doc.Format) {
			flush(i)
			current = &domain.Section{Title: trimmed, StartLine: i}
			content = content[:0]
			continue
		}
		if current != nil {
			content = append(content, trimmed)
		}
	}
	flush(len(lines))
	return sections
}

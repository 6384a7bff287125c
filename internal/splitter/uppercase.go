package splitter

import (
	"unicode"
	"unicode/utf8"

	"resumerag/internal/domain"
)

// UppercasePolicy treats a line as a header when its first rune is an
// uppercase letter (Word-derived text) or when the entire line is
// uppercase (PDF-derived text). Any capitalized sentence start in Word
// text is misclassified as a header; this imprecision is a known
// limitation of the policy, not something the splitter compensates for.
type UppercasePolicy struct{}

// NewUppercasePolicy creates the uppercase header heuristic.
func NewUppercasePolicy() *UppercasePolicy { return &UppercasePolicy{} }

// Name returns the identifier of this policy.
func (p *UppercasePolicy) Name() string { return "uppercase" }

// IsHeader applies the format-specific uppercase rule to a trimmed line.
func (p *UppercasePolicy) IsHeader(line string, format domain.Format) bool {
	if format == domain.FormatPDF {
		return isAllUpper(line)
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(r)
}

// isAllUpper reports whether the line contains at least one letter and no
// lowercase letters.
func isAllUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

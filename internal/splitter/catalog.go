package splitter

import (
	"regexp"
	"strings"

	"resumerag/internal/domain"
)

// sectionPatterns is the fixed vocabulary of recognized resume section
// headers, synonyms included per category.
var sectionPatterns = []string{
	`summary|professional summary|profile|objective`,
	`experience|work experience|employment|work history`,
	`education|academic background`,
	`skills|technical skills|core competencies|additional|technical`,
	`projects|key projects`,
	`certifications|certificates|licenses|certifications?\s*&\s*training`,
	`awards|achievements|honors`,
	`publications|research`,
	`languages|language proficiency`,
	`interests|hobbies`,
	`references|referees`,
	`soft skills`,
}

// CatalogPolicy recognizes a header when the whole trimmed line matches
// the section vocabulary, case-insensitively.
type CatalogPolicy struct {
	re *regexp.Regexp
}

// NewCatalogPolicy compiles the header vocabulary into a single matcher.
func NewCatalogPolicy() *CatalogPolicy {
	return &CatalogPolicy{
		re: regexp.MustCompile(`(?i)^(?:` + strings.Join(sectionPatterns, `|`) + `)$`),
	}
}

// Name returns the identifier of this policy.
func (p *CatalogPolicy) Name() string { return "catalog" }

// IsHeader reports whether the trimmed line is a recognized section name.
// The source format is irrelevant for this policy.
func (p *CatalogPolicy) IsHeader(line string, _ domain.Format) bool {
	return p.re.MatchString(line)
}

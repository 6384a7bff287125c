package splitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumerag/internal/domain"
)

func wordDoc(text string) domain.Document {
	return domain.Document{Format: domain.FormatWord, Text: text}
}

func TestCatalogSplit_RecognizedHeaders(t *testing.T) {
	doc := wordDoc(`Samarth Dhawan
Dublin, Ireland

Summary
Software engineer with five years of experience.

Experience
Worked at Optum as a developer.
Built internal tooling.

Education
BSc Computer Science.
`)
	s := New(NewCatalogPolicy())
	sections := s.Split(doc)

	require.Len(t, sections, 3)
	assert.Equal(t, "Summary", sections[0].Title)
	assert.Equal(t, "Software engineer with five years of experience.", sections[0].Content)
	assert.Equal(t, "Experience", sections[1].Title)
	assert.Equal(t, "Worked at Optum as a developer.\nBuilt internal tooling.", sections[1].Content)
	assert.Equal(t, "Education", sections[2].Title)
	assert.Equal(t, "BSc Computer Science.", sections[2].Content)
}

func TestCatalogSplit_CaseInsensitiveAndSynonyms(t *testing.T) {
	doc := wordDoc("WORK EXPERIENCE\nfirst job\nacademic background\ndegree\nSoft Skills\ncommunication\n")
	s := New(NewCatalogPolicy())
	sections := s.Split(doc)

	require.Len(t, sections, 3)
	assert.Equal(t, "WORK EXPERIENCE", sections[0].Title)
	assert.Equal(t, "academic background", sections[1].Title)
	assert.Equal(t, "Soft Skills", sections[2].Title)
}

// Concatenating section contents must reconstruct every non-header,
// non-blank line after the first header, in order.
func TestCatalogSplit_ReconstructsContentLines(t *testing.T) {
	lines := []string{
		"discarded preamble",
		"Experience",
		"line one",
		"",
		"line two",
		"Education",
		"line three",
		"line four",
	}
	doc := wordDoc(strings.Join(lines, "\n"))
	s := New(NewCatalogPolicy())
	sections := s.Split(doc)

	var got []string
	for _, sec := range sections {
		got = append(got, strings.Split(sec.Content, "\n")...)
	}
	assert.Equal(t, []string{"line one", "line two", "line three", "line four"}, got)
}

func TestCatalogSplit_LineRanges(t *testing.T) {
	doc := wordDoc("Experience\njob\nEducation\ndegree\ntrailing line\n")
	s := New(NewCatalogPolicy())
	sections := s.Split(doc)

	require.Len(t, sections, 2)
	assert.Equal(t, 0, sections[0].StartLine)
	assert.Equal(t, 2, sections[0].EndLine)
	assert.Equal(t, 2, sections[1].StartLine)
	// Final section runs to end of document.
	assert.Equal(t, 6, sections[1].EndLine)
	assert.Equal(t, "degree\ntrailing line", sections[1].Content)
}

func TestCatalogSplit_NoHeadersYieldsNil(t *testing.T) {
	doc := wordDoc("just some prose\nwithout any recognized header\n")
	s := New(NewCatalogPolicy())
	assert.Empty(t, s.Split(doc))
}

func TestSplit_EmptyDocument(t *testing.T) {
	for _, policy := range []HeaderPolicy{NewCatalogPolicy(), NewUppercasePolicy()} {
		s := New(policy)
		assert.Empty(t, s.Split(wordDoc("")), "policy %s", policy.Name())
	}
}

func TestUppercaseSplit_WordFirstLetter(t *testing.T) {
	doc := wordDoc("Experience\nworked at a hospital\nAlso shipped software\nEducation\ndegree\n")
	s := New(NewUppercasePolicy())
	sections := s.Split(doc)

	// "Also shipped software" starts uppercase and is misclassified as a
	// header; that over-triggering is inherent to the policy.
	require.Len(t, sections, 3)
	assert.Equal(t, "Experience", sections[0].Title)
	assert.Equal(t, "worked at a hospital", sections[0].Content)
	assert.Equal(t, "Also shipped software", sections[1].Title)
	assert.Equal(t, "Education", sections[2].Title)
}

func TestUppercaseSplit_PDFWholeLine(t *testing.T) {
	doc := domain.Document{
		Format: domain.FormatPDF,
		Text:   "EXPERIENCE\nWorked at Optum as a developer.\nEDUCATION\nBSc Computer Science.\n",
	}
	s := New(NewUppercasePolicy())
	sections := s.Split(doc)

	require.Len(t, sections, 2)
	assert.Equal(t, "EXPERIENCE", sections[0].Title)
	assert.Equal(t, "Worked at Optum as a developer.", sections[0].Content)
	assert.Equal(t, "EDUCATION", sections[1].Title)
}

func TestUppercaseSplit_PDFLineWithoutLettersIsContent(t *testing.T) {
	doc := domain.Document{
		Format: domain.FormatPDF,
		Text:   "EXPERIENCE\n2019 - 2023\n100%\n",
	}
	s := New(NewUppercasePolicy())
	sections := s.Split(doc)

	require.Len(t, sections, 1)
	assert.Equal(t, "2019 - 2023\n100%", sections[0].Content)
}

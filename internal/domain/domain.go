package domain

import "context"

// Format identifies the source format of an extracted resume.
type Format string

const (
	FormatWord Format = "word"
	FormatPDF  Format = "pdf"
	FormatText Format = "text"
)

// Document is the flat text extracted from a single resume file.
type Document struct {
	Path   string
	Format Format
	Text   string
}

// Section is a titled contiguous block of resume text. Title and content
// are derived once at load time and never mutated afterwards.
type Section struct {
	Title     string
	Content   string
	StartLine int
	EndLine   int
}

// ScoredSection pairs a section with its retrieval similarity score.
type ScoredSection struct {
	Section Section
	Score   float64
}

// Extractor converts a resume file on disk into flat text.
type Extractor interface {
	Extract(path string) (Document, error)
}

// Splitter groups extracted lines into titled sections.
type Splitter interface {
	Split(doc Document) []Section
}

// Generator produces text from a prompt via a hosted completion endpoint.
// It is the only capability the answer composer needs, so tests can stub
// it without a live network dependency.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error)
}

// Summarizer produces a brief summary of the provided text without
// calling out to a generation backend.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

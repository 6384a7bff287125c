// Package service wires extraction, splitting, indexing, retrieval, and
// generation into the resume question-answering pipeline.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"resumerag/internal/domain"
	"resumerag/internal/index"
)

// sentinelTitle names the single fallback section used when a document
// has no recognized headers.
const sentinelTitle = "Full Resume"

// summaryPrefixChars bounds how much of the extracted text is sent with a
// summary request.
const summaryPrefixChars = 4000

// Options carries the fixed tuning values of the pipeline.
type Options struct {
	TopK                int
	MaxFeatures         int
	MaxAnswerTokens     int
	MaxSummaryTokens    int
	Temperature         float32
	SummaryMaxSentences int
}

// ResumeService owns the immutable index built from one loaded resume and
// answers questions against it. Loading replaces the index wholesale;
// nothing mutates it in place, so concurrent readers are safe.
type ResumeService struct {
	extractor domain.Extractor
	splitter  domain.Splitter
	generator domain.Generator
	fallback  domain.Summarizer
	opts      Options

	index    *index.Index
	fullText string
}

// New assembles a resume service. generator may be nil, in which case
// answers degrade to raw retrieved sections and summaries fall back to
// the extractive summarizer.
func New(extractor domain.Extractor, splitter domain.Splitter, generator domain.Generator, fallback domain.Summarizer, opts Options) *ResumeService {
	if opts.TopK <= 0 {
		opts.TopK = index.DefaultTopK
	}
	if opts.MaxFeatures <= 0 {
		opts.MaxFeatures = 1000
	}
	if opts.MaxAnswerTokens <= 0 {
		opts.MaxAnswerTokens = 500
	}
	if opts.MaxSummaryTokens <= 0 {
		opts.MaxSummaryTokens = 300
	}
	if opts.Temperature <= 0 {
		opts.Temperature = 0.7
	}
	if opts.SummaryMaxSentences <= 0 {
		opts.SummaryMaxSentences = 4
	}
	return &ResumeService{
		extractor: extractor,
		splitter:  splitter,
		generator: generator,
		fallback:  fallback,
		opts:      opts,
	}
}

// LoadResume extracts the file, splits it into sections, and builds the
// index. A document with no recognized headers is indexed as one section
// covering the entire text. The previous index, if any, is replaced
// wholesale.
func (s *ResumeService) LoadResume(path string) error {
	doc, err := s.extractor.Extract(path)
	if err != nil {
		return err
	}
	sections := s.splitter.Split(doc)
	if len(sections) == 0 {
		sections = []domain.Section{{
			Title:   sentinelTitle,
			Content: doc.Text,
			EndLine: len(strings.Split(doc.Text, "\n")),
		}}
	}
	ix, err := index.Build(sections, s.opts.MaxFeatures)
	if err != nil {
		return fmt.Errorf("index %s: %w", path, err)
	}
	s.index = ix
	s.fullText = doc.Text
	return nil
}

// Retrieve returns the topK sections most similar to the question. topK
// values below one fall back to the configured default; the result is
// clamped to the number of indexed sections.
func (s *ResumeService) Retrieve(question string, topK int) ([]domain.ScoredSection, error) {
	if s.index == nil {
		return nil, index.ErrNotIndexed
	}
	if topK <= 0 {
		topK = s.opts.TopK
	}
	return s.index.Search(question, topK)
}

// AnswerQuestion retrieves the most relevant sections and asks the
// generation backend to answer from them. Failures never propagate: a bad
// turn becomes a human-readable error string so the chat session survives.
func (s *ResumeService) AnswerQuestion(ctx context.Context, question string, topK int) string {
	results, err := s.Retrieve(question, topK)
	if err != nil {
		return "Sorry, I encountered an error: " + err.Error()
	}
	if s.generator == nil {
		return offlineAnswer(results)
	}
	reply, err := s.generator.Generate(ctx, answerPrompt(question, results), s.opts.MaxAnswerTokens, s.opts.Temperature)
	if err != nil {
		return "Sorry, I encountered an error: " + err.Error()
	}
	return reply
}

// Summary asks the generation backend for a short professional summary of
// the resume, sending only a bounded prefix of the extracted text. With
// no backend configured it falls back to the extractive summarizer.
func (s *ResumeService) Summary(ctx context.Context) string {
	if s.index == nil {
		return "Error generating summary: " + index.ErrNotIndexed.Error()
	}
	if s.generator == nil {
		out, err := s.fallback.Summarize(s.fullText, s.opts.SummaryMaxSentences)
		if err != nil {
			return "Error generating summary: " + err.Error()
		}
		return out
	}
	reply, err := s.generator.Generate(ctx, summaryPrompt(s.fullText), s.opts.MaxSummaryTokens, s.opts.Temperature)
	if err != nil {
		return "Error generating summary: " + err.Error()
	}
	return reply
}

// ListSections returns the ordered titles of the indexed sections.
func (s *ResumeService) ListSections() []string {
	if s.index == nil {
		return nil
	}
	sections := s.index.Sections()
	titles := make([]string, len(sections))
	for i, sec := range sections {
		titles[i] = sec.Title
	}
	return titles
}

func answerPrompt(question string, results []domain.ScoredSection) string {
	blocks := make([]string, len(results))
	for i, r := range results {
		blocks[i] = fmt.Sprintf("Section: %s\n%s", r.Section.Title, r.Section.Content)
	}
	return fmt.Sprintf(`Based on the following sections from a resume, answer the question.

Resume Sections:
%s

Question: %s

Provide a clear, concise answer based only on the information in the resume sections above. If the information is not available, say so.`,
		strings.Join(blocks, "\n\n"), question)
}

func summaryPrompt(fullText string) string {
	return fmt.Sprintf(`Provide a concise professional summary of this resume, highlighting:
- Key qualifications and experience
- Main skills
- Career focus
- Notable achievements

Resume:
%s

Provide a 3-4 sentence summary.`, truncateRunes(fullText, summaryPrefixChars))
}

// offlineAnswer shows the best-matching section directly when no
// generation backend is available.
func offlineAnswer(results []domain.ScoredSection) string {
	if len(results) == 0 {
		return "No generation backend is configured and no sections matched the question."
	}
	best := results[0]
	return fmt.Sprintf("No generation backend is configured. Most relevant section (%s):\n%s", best.Section.Title, best.Section.Content)
}

// truncateRunes cuts s to at most n characters without splitting a rune.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

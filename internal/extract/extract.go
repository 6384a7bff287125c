package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resumerag/internal/domain"
)

// ErrUnsupportedFormat is returned for file extensions that are neither a
// recognized Word, PDF, nor plain-text resume.
var ErrUnsupportedFormat = errors.New("unsupported resume format")

// FileExtractor reads Word, PDF, or plain-text resumes from disk and
// produces flat text. It holds no state; extraction is a pure file read.
type FileExtractor struct{}

// NewFileExtractor creates a resume file extractor.
func NewFileExtractor() *FileExtractor { return &FileExtractor{} }

// Extract converts the file at path into a Document. Word documents yield
// their paragraphs joined by newlines in document order; PDFs yield the
// per-page text blocks joined by newlines, with the format recorded so the
// splitter can apply its per-page uppercase rule.
func (e *FileExtractor) Extract(path string) (domain.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx", ".doc":
		text, err := wordText(path)
		if err != nil {
			return domain.Document{}, fmt.Errorf("extract %s: %w", path, err)
		}
		return domain.Document{Path: path, Format: domain.FormatWord, Text: text}, nil
	case ".pdf":
		pages, err := pdfPages(path)
		if err != nil {
			return domain.Document{}, fmt.Errorf("extract %s: %w", path, err)
		}
		return domain.Document{Path: path, Format: domain.FormatPDF, Text: strings.Join(pages, "\n")}, nil
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.Document{}, err
		}
		return domain.Document{Path: path, Format: domain.FormatText, Text: string(data)}, nil
	default:
		return domain.Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

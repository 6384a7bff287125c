// Package index builds the sparse lexical index over resume sections and
// answers top-K cosine similarity queries against it. An Index is built
// wholesale when a resume is loaded and never mutated afterwards, so it
// is safe for concurrent readers.
package index

import (
	"errors"
	"sort"

	"resumerag/internal/domain"
)

var (
	// ErrEmptyCorpus is returned when fitting is attempted with no sections.
	ErrEmptyCorpus = errors.New("no sections to index")
	// ErrNotIndexed is returned when retrieval is attempted before an index
	// has been built.
	ErrNotIndexed = errors.New("no resume indexed")
)

// DefaultTopK is the number of sections retrieved per question when the
// caller does not specify one.
const DefaultTopK = 3

// Index is the fitted vector space over one resume's sections: the
// ordered section sequence plus one L2-normalized TF-IDF vector per
// section, aligned by position.
type Index struct {
	sections   []domain.Section
	vectorizer *Vectorizer
	vectors    [][]float64
}

// Build fits a TF-IDF model over the sections, using each section's title
// and content as its indexing text. Callers must apply the full-document
// fallback section before building; an empty slice fails with
// ErrEmptyCorpus.
func Build(sections []domain.Section, maxFeatures int) (*Index, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyCorpus
	}
	corpus := make([]string, len(sections))
	for i, sec := range sections {
		corpus[i] = sec.Title + " " + sec.Content
	}
	v := NewVectorizer(maxFeatures)
	if err := v.Fit(corpus); err != nil {
		return nil, err
	}
	vectors := make([][]float64, len(corpus))
	for i, text := range corpus {
		vec, err := v.Transform(text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return &Index{sections: sections, vectorizer: v, vectors: vectors}, nil
}

// Sections returns the indexed sections in document order.
func (ix *Index) Sections() []domain.Section { return ix.sections }

// Search vectorizes the query in the fitted vocabulary and returns the
// topK sections by descending cosine similarity, clamped to the number of
// indexed sections. Ties keep document order.
func (ix *Index) Search(query string, topK int) ([]domain.ScoredSection, error) {
	qvec, err := ix.vectorizer.Transform(query)
	if err != nil {
		return nil, err
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > len(ix.sections) {
		topK = len(ix.sections)
	}

	results := make([]domain.ScoredSection, len(ix.sections))
	for i, vec := range ix.vectors {
		// Vectors are L2-normalized, so the dot product is the cosine.
		results[i] = domain.ScoredSection{Section: ix.sections[i], Score: dot(qvec, vec)}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results[:topK], nil
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

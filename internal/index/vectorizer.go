package index

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Vectorizer is a TF-IDF vectorizer over unigrams and bigrams with
// English stop-word removal and a capped vocabulary. Fitting assigns each
// surviving term a column in alphabetical order, so the produced vector
// space is deterministic for a given corpus and configuration.
type Vectorizer struct {
	maxFeatures  int
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
	vocabulary   map[string]int
	idf          []float64
	dimension    int
	fitted       bool
}

// NewVectorizer creates an unfitted vectorizer. maxFeatures caps the
// vocabulary size; zero or negative means no cap.
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{
		maxFeatures:  maxFeatures,
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords:    englishStopwords(),
	}
}

// Fit builds the vocabulary and IDF values from the corpus.
func (v *Vectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return ErrEmptyCorpus
	}
	df := make(map[string]int)
	total := make(map[string]int)
	for _, text := range corpus {
		terms := v.terms(text)
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			total[term]++
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return ErrEmptyCorpus
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	if v.maxFeatures > 0 && len(terms) > v.maxFeatures {
		// Keep the most frequent terms; ties resolve alphabetically so the
		// selection is reproducible.
		sort.Slice(terms, func(i, j int) bool {
			if total[terms[i]] != total[terms[j]] {
				return total[terms[i]] > total[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.dimension = len(terms)
	v.fitted = true
	return nil
}

// Dimension returns the size of the fitted vocabulary.
func (v *Vectorizer) Dimension() int { return v.dimension }

// Transform computes the L2-normalized TF-IDF vector for the given text
// in the fitted vocabulary. Terms unseen at fit time are ignored; a text
// with no known terms yields the zero vector.
func (v *Vectorizer) Transform(text string) ([]float64, error) {
	if !v.fitted {
		return nil, ErrNotIndexed
	}
	vec := make([]float64, v.dimension)
	tf := make(map[int]int)
	counted := 0
	for _, term := range v.terms(text) {
		if idx, ok := v.vocabulary[term]; ok {
			tf[idx]++
			counted++
		}
	}
	if counted == 0 {
		return vec, nil
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(counted) * v.idf[idx]
	}
	// L2 normalize
	norm := 0.0
	for _, w := range vec {
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// terms lowercases the text, drops stop-words, and emits the surviving
// unigrams plus the bigrams formed from adjacent survivors.
func (v *Vectorizer) terms(text string) []string {
	raw := v.tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, t := range raw {
		if _, isStop := v.stopwords[t]; isStop {
			continue
		}
		tokens = append(tokens, t)
	}
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, 0, 2*len(tokens)-1)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

func englishStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now", "i", "you", "he", "she", "we", "they", "them", "his", "her", "its", "our", "their", "my", "your", "me", "him", "us", "what", "which", "who", "whom", "where", "when", "why", "how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "no", "nor", "not", "only", "do", "does", "did", "doing", "have", "has", "had", "having", "am",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Package lexical provides a deterministic, dependency-free similarity
// backend: cosine similarity over lower-cased term-frequency vectors. It is
// the default scorer and the one used in tests; heavier embedding backends
// plug in behind the same interface.
package lexical

import (
	"context"
	"math"
	"strings"
	"unicode"
)

type Scorer struct{}

func New() *Scorer {
	return &Scorer{}
}

// Similarity returns the cosine similarity of the two texts' term-frequency
// vectors, in [0, 1]. Two empty texts score 0.
func (s *Scorer) Similarity(_ context.Context, a, b string) (float64, error) {
	va := termFrequencies(a)
	vb := termFrequencies(b)

	if len(va) == 0 || len(vb) == 0 {
		return 0, nil
	}

	var dot, normA, normB float64
	for term, fa := range va {
		normA += fa * fa
		if fb, ok := vb[term]; ok {
			dot += fa * fb
		}
	}
	for _, fb := range vb {
		normB += fb * fb
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0, nil
	}

	return dot / denom, nil
}

func termFrequencies(text string) map[string]float64 {
	freqs := make(map[string]float64)
	for _, token := range tokenize(text) {
		freqs[token]++
	}
	return freqs
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

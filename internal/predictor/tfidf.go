package predictor

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
)

// tokenPattern mirrors the vectorizer used at training time: maximal runs of
// two or more word characters, after lowercasing.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// TFIDF is the text vectorizer the classifier was trained with, rebuilt from
// its exported vocabulary and idf weights. It implements
// interfaces.TextVectorizer and is read-only after load.
type TFIDF struct {
	vocabulary map[string]int
	idf        []float64
}

// NewTFIDF builds a vectorizer from an exported vocabulary (token → column)
// and idf weight vector. Every vocabulary index must address a column of idf.
func NewTFIDF(vocabulary map[string]int, idf []float64) (*TFIDF, error) {
	for tok, idx := range vocabulary {
		if idx < 0 || idx >= len(idf) {
			return nil, fmt.Errorf("vocabulary entry %q has index %d outside idf vector of length %d", tok, idx, len(idf))
		}
	}
	return &TFIDF{vocabulary: vocabulary, idf: idf}, nil
}

// LoadTFIDF reads the exported vectorizer JSON artifact.
func LoadTFIDF(path string) (*TFIDF, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vectorizer %s: %w", path, err)
	}
	var raw struct {
		Vocabulary map[string]int `json:"vocabulary"`
		IDF        []float64      `json:"idf"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing vectorizer %s: %w", path, err)
	}
	if len(raw.Vocabulary) == 0 || len(raw.IDF) == 0 {
		return nil, fmt.Errorf("vectorizer %s is missing vocabulary or idf weights", path)
	}
	return NewTFIDF(raw.Vocabulary, raw.IDF)
}

// Transform vectorizes one document: token counts weighted by idf, then
// L2-normalized. The returned slice is a fresh allocation.
func (t *TFIDF) Transform(text string) []float32 {
	counts := make(map[int]int)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if idx, ok := t.vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	vec := make([]float64, len(t.idf))
	var sumSq float64
	for idx, n := range counts {
		w := float64(n) * t.idf[idx]
		vec[idx] = w
		sumSq += w * w
	}

	out := make([]float32, len(vec))
	if sumSq > 0 {
		norm := math.Sqrt(sumSq)
		for i, v := range vec {
			out[i] = float32(v / norm)
		}
	}
	return out
}

// Dim returns the width of vectors produced by Transform.
func (t *TFIDF) Dim() int {
	return len(t.idf)
}

package validate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/agrovet/pashumitra/internal/lang"
)

// SymptomSet is the canonical symptom vocabulary the classifier was trained
// on. It is loaded once at startup and read-only afterwards.
type SymptomSet struct {
	ordered []string
	byLower map[string]string
}

// NewSymptomSet builds a set from raw entries: each is normalized, empties
// dropped, duplicates removed preserving first occurrence, and the result
// sorted case-insensitively.
func NewSymptomSet(entries []string) *SymptomSet {
	seen := make(map[string]struct{}, len(entries))
	uniq := make([]string, 0, len(entries))
	for _, v := range lang.NormalizeAll(entries) {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		uniq = append(uniq, v)
	}
	sort.Slice(uniq, func(i, j int) bool {
		return strings.ToLower(uniq[i]) < strings.ToLower(uniq[j])
	})

	byLower := make(map[string]string, len(uniq))
	for _, s := range uniq {
		byLower[strings.ToLower(s)] = s
	}
	return &SymptomSet{ordered: uniq, byLower: byLower}
}

// LoadSymptomSet reads the one-column symptom CSV. A first row reading
// "Symptom" or "Symptoms" is treated as a header and skipped.
func LoadSymptomSet(path string) (*SymptomSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening symptom list %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var entries []string
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading symptom list %s: %w", path, err)
		}
		if len(rec) == 0 {
			continue
		}
		v := rec[0]
		if first {
			first = false
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "symptom", "symptoms":
				continue
			}
		}
		entries = append(entries, v)
	}
	return NewSymptomSet(entries), nil
}

// Canonical resolves a term against the vocabulary case-insensitively and
// returns the canonical spelling.
func (s *SymptomSet) Canonical(term string) (string, bool) {
	v, ok := s.byLower[strings.ToLower(term)]
	return v, ok
}

// List returns the vocabulary in case-insensitive sorted order. The returned
// slice is shared; callers must not modify it.
func (s *SymptomSet) List() []string {
	return s.ordered
}

// Len returns the vocabulary size.
func (s *SymptomSet) Len() int {
	return len(s.ordered)
}

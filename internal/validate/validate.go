// Package validate turns a raw prediction request into the canonical
// (animal, symptom list) form the model expects. Unknown terms and
// out-of-range inputs are reported as accumulated human-readable messages,
// never as errors: the HTTP layer decides what status they map to.
package validate

import (
	"fmt"
	"strings"

	"github.com/agrovet/pashumitra/internal/lang"
)

// Animals is the fixed species allow-list, sorted. The animal encoder was
// trained on exactly these four classes.
var Animals = []string{"Buffalo", "Cow", "Goat", "Sheep"}

var animalSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Animals))
	for _, a := range Animals {
		m[a] = struct{}{}
	}
	return m
}()

// Options bound how many symptoms a request may carry.
type Options struct {
	// MinSymptoms is the fewest resolved symptoms a valid request needs.
	MinSymptoms int

	// MaxSymptoms caps how many raw items are considered; the remainder is
	// silently dropped.
	MaxSymptoms int
}

// DefaultOptions returns the bounds the service runs with.
func DefaultOptions() Options {
	return Options{MinSymptoms: 3, MaxSymptoms: 8}
}

// Result is the outcome of validating one request. Ephemeral, one per call.
type Result struct {
	// OK is true iff Errors is empty.
	OK bool `json:"ok"`

	// Errors holds the accumulated validation messages.
	Errors []string `json:"errors,omitempty"`

	// Animal is the canonical English species name, or the title-cased input
	// if it could not be resolved.
	Animal string `json:"animal"`

	// Symptoms are the resolved canonical symptoms in first-seen order,
	// deduplicated.
	Symptoms []string `json:"symptoms"`

	// SymptomsCSV joins Symptoms with ", ".
	SymptomsCSV string `json:"symptoms_csv"`

	// SymptomsText joins Symptoms with single spaces; this is the document
	// handed to the text vectorizer.
	SymptomsText string `json:"symptoms_text"`

	// Unknown lists the input terms that resolved to nothing, as given.
	Unknown []string `json:"unknown,omitempty"`
}

// SplitSymptoms breaks a comma-delimited symptom string into raw items for
// Validate. Callers with an already-split list pass it directly.
func SplitSymptoms(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// ResolveSymptom maps one raw term to its canonical vocabulary form: it is
// normalized, translated via the Telugu reverse map when present, then looked
// up case-insensitively against the allowed set. The second return is false
// for unknown terms; resolution itself never fails.
func ResolveSymptom(term string, allowed *SymptomSet, dict *lang.Dictionary) (string, bool) {
	s := lang.NormalizeText(term)
	if s == "" {
		return "", false
	}
	if en, ok := dict.PrimarySymptom(s); ok {
		s = en
	}
	return allowed.Canonical(s)
}

// Validate checks the animal against the allow-list (with Telugu fallback),
// then normalizes, deduplicates, caps and resolves the symptom list. Both
// rules — minimum resolved count and unknown terms — are always checked, in
// that order.
func Validate(animal string, symptoms []string, allowed *SymptomSet, dict *lang.Dictionary, opts Options) Result {
	var res Result

	res.Animal = resolveAnimal(animal, dict, &res.Errors)

	// Normalize, drop empties, dedupe preserving first-seen order, then cap.
	seen := make(map[string]struct{})
	raw := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		v := lang.NormalizeText(s)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		raw = append(raw, v)
	}
	if len(raw) > opts.MaxSymptoms {
		raw = raw[:opts.MaxSymptoms]
	}

	// Resolve; a Telugu term and its English form collapse to one entry.
	resolvedSeen := make(map[string]struct{})
	for _, s := range raw {
		en, ok := ResolveSymptom(s, allowed, dict)
		if !ok {
			res.Unknown = append(res.Unknown, s)
			continue
		}
		if _, dup := resolvedSeen[en]; dup {
			continue
		}
		resolvedSeen[en] = struct{}{}
		res.Symptoms = append(res.Symptoms, en)
	}

	if len(res.Symptoms) < opts.MinSymptoms {
		res.Errors = append(res.Errors, fmt.Sprintf("Please provide at least %d valid symptoms.", opts.MinSymptoms))
	}
	if len(res.Unknown) > 0 {
		res.Errors = append(res.Errors, "Unknown symptoms: "+strings.Join(res.Unknown, ", "))
	}

	res.SymptomsCSV = strings.Join(res.Symptoms, ", ")
	res.SymptomsText = strings.Join(res.Symptoms, " ")
	res.OK = len(res.Errors) == 0
	return res
}

// resolveAnimal normalizes and title-cases the species name, falling back to
// the Telugu reverse map when the result is not in the allow-list.
func resolveAnimal(animal string, dict *lang.Dictionary, errs *[]string) string {
	clean := lang.TitleCase(lang.NormalizeText(animal))
	if _, ok := animalSet[clean]; ok {
		return clean
	}
	if en, ok := dict.PrimaryAnimal(animal); ok {
		if _, valid := animalSet[en]; valid {
			return en
		}
	}
	*errs = append(*errs, fmt.Sprintf("Invalid animal '%s'. Allowed: %s", animal, strings.Join(Animals, ", ")))
	return clean
}

package lang

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dictionary section names present in the bilingual term file.
const (
	SectionAnimals    = "animals"
	SectionSymptoms   = "symptoms"
	SectionDiseases   = "diseases"
	SectionRiskPhrase = "risk_phrase"
)

// missingTranslation is rendered when a term has no Telugu equivalent.
const missingTranslation = "—"

// Bilingual is the response envelope for any user-facing string: the English
// canonical form, its Telugu equivalent and a combined display string.
type Bilingual struct {
	EN      string `json:"en"`
	TE      string `json:"te"`
	Display string `json:"display"`
}

// Advisory holds the per-disease prevention and precaution text in both
// languages.
type Advisory struct {
	PreventionEN string `json:"prevention_en"`
	PreventionTE string `json:"prevention_te"`
	PrecautionEN string `json:"precaution_en"`
	PrecautionTE string `json:"precaution_te"`
}

// Dictionary is the English→Telugu term dictionary loaded once at startup.
// The reverse (Telugu→English) maps are derived at load time and the whole
// structure is read-only afterwards, so it is safe to share across requests.
type Dictionary struct {
	sections        map[string]map[string]string
	advisories      map[string]Advisory
	reverseSymptoms map[string]string
	reverseAnimals  map[string]string
}

// LoadDictionary reads the bilingual dictionary JSON from path and computes
// the reverse lookup maps.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", path, err)
	}
	return ParseDictionary(data)
}

// ParseDictionary builds a Dictionary from raw JSON.
func ParseDictionary(data []byte) (*Dictionary, error) {
	var raw struct {
		Animals    map[string]string   `json:"animals"`
		Symptoms   map[string]string   `json:"symptoms"`
		Diseases   map[string]string   `json:"diseases"`
		RiskPhrase map[string]string   `json:"risk_phrase"`
		Advisories map[string]Advisory `json:"prevention_precautions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dictionary: %w", err)
	}

	d := &Dictionary{
		sections: map[string]map[string]string{
			SectionAnimals:    raw.Animals,
			SectionSymptoms:   raw.Symptoms,
			SectionDiseases:   raw.Diseases,
			SectionRiskPhrase: raw.RiskPhrase,
		},
		advisories:      raw.Advisories,
		reverseSymptoms: buildReverse(raw.Symptoms),
		reverseAnimals:  buildReverse(raw.Animals),
	}
	return d, nil
}

// buildReverse inverts an English→Telugu map. Entries with an empty Telugu
// value are skipped so the reverse map stays consistent with the forward one.
func buildReverse(forward map[string]string) map[string]string {
	out := make(map[string]string, len(forward))
	for en, te := range forward {
		if te == "" {
			continue
		}
		out[NormalizeText(te)] = NormalizeText(en)
	}
	return out
}

// PrimarySymptom maps a Telugu symptom term to its English canonical form.
func (d *Dictionary) PrimarySymptom(term string) (string, bool) {
	en, ok := d.reverseSymptoms[NormalizeText(term)]
	return en, ok
}

// PrimaryAnimal maps a Telugu animal name to its English canonical form.
func (d *Dictionary) PrimaryAnimal(term string) (string, bool) {
	en, ok := d.reverseAnimals[NormalizeText(term)]
	return en, ok
}

// Entry returns the bilingual envelope for an English term in the given
// section. Terms without a translation render as "—".
func (d *Dictionary) Entry(section, en string) Bilingual {
	te := missingTranslation
	if m, ok := d.sections[section]; ok {
		if v, ok := m[en]; ok && v != "" {
			te = v
		}
	}
	return Bilingual{EN: en, TE: te, Display: en + " / " + te}
}

// RiskPhrase returns the localized "<Level> Risk" phrase for a risk level.
func (d *Dictionary) RiskPhrase(level string) Bilingual {
	return d.Entry(SectionRiskPhrase, level+" Risk")
}

// Advisory returns the prevention/precaution text for a disease, if any.
func (d *Dictionary) Advisory(disease string) (Advisory, bool) {
	a, ok := d.advisories[disease]
	return a, ok
}

// Empty reports whether the dictionary has no usable sections. Used by the
// health endpoint to flag a bad artifact load.
func (d *Dictionary) Empty() bool {
	for _, m := range d.sections {
		if len(m) > 0 {
			return false
		}
	}
	return true
}

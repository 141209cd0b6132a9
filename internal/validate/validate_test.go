package validate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agrovet/pashumitra/internal/lang"
	"github.com/agrovet/pashumitra/internal/validate"
)

const dictJSON = `{
  "animals": {"Cow": "ఆవు", "Buffalo": "గేదె"},
  "symptoms": {
    "High fever": "అధిక జ్వరం",
    "Cough": "దగ్గు",
    "Nasal discharge": "ముక్కు కారడం",
    "Loss of appetite": "ఆకలి లేకపోవడం"
  }
}`

var allowedSymptoms = []string{
	"High fever", "Cough", "Nasal discharge", "Loss of appetite",
	"Lameness", "Salivation", "Diarrhea", "Weight loss", "Skin lesions", "Swelling",
}

func fixtures(t *testing.T) (*validate.SymptomSet, *lang.Dictionary) {
	t.Helper()
	dict, err := lang.ParseDictionary([]byte(dictJSON))
	if err != nil {
		t.Fatalf("ParseDictionary: %v", err)
	}
	return validate.NewSymptomSet(allowedSymptoms), dict
}

func TestValidate_HappyPath(t *testing.T) {
	t.Parallel()
	set, dict := fixtures(t)

	res := validate.Validate("cow", []string{"high fever", "Cough", "nasal discharge"}, set, dict, validate.DefaultOptions())
	if !res.OK {
		t.Fatalf("expected ok, errors: %v", res.Errors)
	}
	if res.Animal != "Cow" {
		t.Errorf("Animal = %q", res.Animal)
	}
	want := []string{"High fever", "Cough", "Nasal discharge"}
	if strings.Join(res.Symptoms, "|") != strings.Join(want, "|") {
		t.Errorf("Symptoms = %v, want %v", res.Symptoms, want)
	}
	if res.SymptomsCSV != "High fever, Cough, Nasal discharge" {
		t.Errorf("SymptomsCSV = %q", res.SymptomsCSV)
	}
	if res.SymptomsText != "High fever Cough Nasal discharge" {
		t.Errorf("SymptomsText = %q", res.SymptomsText)
	}
}

func TestValidate_TeluguAnimal(t *testing.T) {
	t.Parallel()
	set, dict := fixtures(t)

	res := validate.Validate("ఆవు", []string{"High fever", "Cough", "Nasal discharge"}, set, dict, validate.DefaultOptions())
	if !res.OK {
		t.Fatalf("expected ok, errors: %v", res.Errors)
	}
	if res.Animal != "Cow" {
		t.Errorf("Animal = %q, want Cow", res.Animal)
	}
}

func TestValidate_InvalidAnimal(t *testing.T) {
	t.Parallel()
	set, dict := fixtures(t)

	res := validate.Validate("Horse", []string{"High fever", "Cough", "Nasal discharge"}, set, dict, validate.DefaultOptions())
	if res.OK {
		t.Fatal("expected validation failure")
	}
	want := "Invalid animal 'Horse'. Allowed: Buffalo, Cow, Goat, Sheep"
	if len(res.Errors) != 1 || res.Errors[0] != want {
		t.Errorf("Errors = %v, want [%q]", res.Errors, want)
	}
}

func TestValidate_DuplicatesCollapse(t *testing.T) {
	t.Parallel()
	set, dict := fixtures(t)

	res := validate.Validate("Cow",
		[]string{"High fever", " high fever ", "High fever", "Cough", "Nasal discharge"},
		set, dict, validate.DefaultOptions())
	if !res.OK {
		t.Fatalf("expected ok, errors: %v", res.Errors)
	}
	if len(res.Symptoms) != 3 {
		t.Errorf("Symptoms = %v, want 3 distinct", res.Symptoms)
	}
}

func TestValidate_TeluguDuplicateOfEnglishCollapses(t *testing.T) {
	t.Parallel()
	set, dict := fixtures(t)

	// "దగ్గు" resolves to "Cough", already supplied in English.
	res := validate.Validate("Cow",
		[]string{"Cough", "దగ్గు", "High fever", "Nasal discharge"},
		set, dict, validate.DefaultOptions())
	if !res.OK {
		t.Fatalf("expected ok, errors: %v", res.Errors)
	}
	count := 0
	for _, s := range res.Symptoms {
		if s == "Cough" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Cough appears %d times: %v", count, res.Symptoms)
	}
}

func TestValidate_CapSilentlyDropsExtras(t *testing.T) {
	t.Parallel()
	set, dict := fixtures(t)

	many := []string{
		"High fever", "Cough", "Nasal discharge", "Loss of appetite", "Lameness",
		"Salivation", "Diarrhea", "Weight loss", "Skin lesions", "Swelling",
	}
	res := validate.Validate("Cow", many, set, dict, validate.DefaultOptions())
	if !res.OK {
		t.Fatalf("over-cap input must not produce errors, got: %v", res.Errors)
	}
	if len(res.Symptoms) != 8 {
		t.Errorf("got %d symptoms, want cap of 8", len(res.Symptoms))
	}
	// First-seen order preserved; the dropped items are the trailing ones.
	if res.Symptoms[0] != "High fever" || res.Symptoms[7] != "Weight loss" {
		t.Errorf("unexpected order: %v", res.Symptoms)
	}
}

func TestValidate_TooFewSymptoms(t *testing.T) {
	t.Parallel()
	set, dict := fixtures(t)

	res := validate.Validate("Cow", []string{"High fever", "Cough"}, set, dict, validate.DefaultOptions())
	if res.OK {
		t.Fatal("expected validation failure")
	}
	found := false
	for _, e := range res.Errors {
		if e == "Please provide at least 3 valid symptoms." {
			found = true
		}
	}
	if !found {
		t.Errorf("Errors = %v, missing minimum-symptom message", res.Errors)
	}
}

func TestValidate_UnknownSymptomsReportedAlongsideMinimum(t *testing.T) {
	t.Parallel()
	set, dict := fixtures(t)

	// One resolvable, two unknown: both rules fire, in order.
	res := validate.Validate("Cow", []string{"High fever", "glowing", "levitating"}, set, dict, validate.DefaultOptions())
	if res.OK {
		t.Fatal("expected validation failure")
	}
	if len(res.Errors) != 2 {
		t.Fatalf("Errors = %v, want 2", res.Errors)
	}
	if res.Errors[0] != "Please provide at least 3 valid symptoms." {
		t.Errorf("first error = %q", res.Errors[0])
	}
	if res.Errors[1] != "Unknown symptoms: glowing, levitating" {
		t.Errorf("second error = %q", res.Errors[1])
	}
}

func TestSplitSymptoms(t *testing.T) {
	t.Parallel()

	got := validate.SplitSymptoms("High fever, Cough,, Nasal discharge, ")
	if len(got) != 3 {
		t.Errorf("SplitSymptoms = %v, want 3 items", got)
	}
}

func TestNewSymptomSet_NormalizesEntries(t *testing.T) {
	t.Parallel()

	set := validate.NewSymptomSet([]string{"  High   fever ", "High\tfever", "", "Cough"})
	if set.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (whitespace variants collapse, empty dropped)", set.Len())
	}
	if c, ok := set.Canonical("high fever"); !ok || c != "High fever" {
		t.Errorf("Canonical = %q, %v", c, ok)
	}
}

func TestLoadSymptomSet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "unique_symptoms.csv")
	csv := "Symptom\nhigh fever\nCough\nhigh fever\n\nNasal discharge\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	set, err := validate.LoadSymptomSet(path)
	if err != nil {
		t.Fatalf("LoadSymptomSet: %v", err)
	}
	if set.Len() != 3 {
		t.Errorf("Len = %d, want 3 (header skipped, duplicate dropped)", set.Len())
	}
	// Case-insensitive sorted order.
	want := []string{"Cough", "high fever", "Nasal discharge"}
	got := set.List()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if c, ok := set.Canonical("HIGH FEVER"); !ok || c != "high fever" {
		t.Errorf("Canonical = %q, %v", c, ok)
	}
}

// Package risk computes the hybrid risk assessment for a prediction:
// disease severity, worst-case symptom severity and a model-confidence
// bucket, blended with fixed weights into a three-level overall label.
package risk

import "strings"

// Level is a severity label attached to a disease or symptom.
type Level string

const (
	Low    Level = "Low"
	Medium Level = "Medium"
	High   Level = "High"
)

// Weights of the blended score. They sum to 1 so the total stays in [1, 3].
const (
	diseaseWeight    = 0.45
	symptomWeight    = 0.40
	confidenceWeight = 0.15
)

// Overall label boundaries, inclusive on the lower side of each bucket.
const (
	highThreshold   = 2.6
	mediumThreshold = 1.8
)

// score maps a severity level to its numeric weight.
func score(l Level) int {
	switch l {
	case High:
		return 3
	case Medium:
		return 2
	default:
		return 1
	}
}

// NormalizeLevel canonicalizes a severity label from the risk tables.
// "mid", "med" and "medium" all mean Medium; anything unrecognized,
// including the empty string, is Low.
func NormalizeLevel(label string) Level {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "mid", "med", "medium":
		return Medium
	case "high":
		return High
	default:
		return Low
	}
}

// Table maps an entity name (disease or symptom, exact match) to its raw
// severity label. Built once at load time, read-only afterwards.
type Table map[string]string

// Level looks up name and normalizes the stored label. Absent entries are Low.
func (t Table) Level(name string) Level {
	return NormalizeLevel(t[name])
}

// Result is the outcome of one risk assessment.
type Result struct {
	// Overall is the blended three-level risk label.
	Overall Level `json:"overall"`

	// Explanation names the High-severity symptoms that contributed, or
	// states that none were present.
	Explanation string `json:"explanation"`
}

// Score blends disease severity, the worst symptom severity and the model
// confidence bucket. Pure and total: identical inputs always produce the
// identical Result.
func Score(disease string, symptoms []string, confidence float64, diseaseTable, symptomTable Table) Result {
	dScore := score(diseaseTable.Level(disease))

	sScore := 1
	var highSymptoms []string
	for _, s := range symptoms {
		lvl := symptomTable.Level(s)
		if v := score(lvl); v > sScore {
			sScore = v
		}
		if lvl == High {
			highSymptoms = append(highSymptoms, s)
		}
	}

	cScore := 1
	switch {
	case confidence >= 0.85:
		cScore = 3
	case confidence >= 0.60:
		cScore = 2
	}

	total := diseaseWeight*float64(dScore) + symptomWeight*float64(sScore) + confidenceWeight*float64(cScore)

	// Checked High first so equality at a boundary lands in the higher bucket.
	overall := Low
	switch {
	case total >= highThreshold:
		overall = High
	case total >= mediumThreshold:
		overall = Medium
	}

	explanation := "No high-risk symptoms detected."
	if len(highSymptoms) > 0 {
		explanation = "High-risk symptoms present: " + strings.Join(highSymptoms, ", ")
	}

	return Result{Overall: overall, Explanation: explanation}
}

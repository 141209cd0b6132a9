package app

import (
	"path/filepath"

	"github.com/agrovet/pashumitra/internal/predictor"
	"github.com/agrovet/pashumitra/internal/validate"
)

// Config aggregates everything the application needs at startup. Module
// sub-configs keep their own defaults; this only decides where artifacts
// live and how the service is bounded.
type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// ArtifactsDir holds every serialized artifact the service loads.
	ArtifactsDir string

	// HistoryPath is the SQLite file for the prediction audit trail.
	// Empty disables history.
	HistoryPath string

	// SymptomsFile, DictionaryFile, DiseaseRiskFile and SymptomRiskFile are
	// artifact file names, relative to ArtifactsDir.
	SymptomsFile    string
	DictionaryFile  string
	DiseaseRiskFile string
	SymptomRiskFile string

	// PredictorCfg locates the model artifacts.
	PredictorCfg predictor.Config

	// Validation bounds the symptom list per request.
	Validation validate.Options
}

// DefaultConfig returns a Config populated with the artifact layout the
// training pipeline exports.
func DefaultConfig() *Config {
	pcfg := predictor.DefaultConfig()
	pcfg.ArtifactsDir = "artifacts"
	return &Config{
		ListenAddr:      ":8080",
		ArtifactsDir:    "artifacts",
		HistoryPath:     "predictions.db",
		SymptomsFile:    "unique_symptoms.csv",
		DictionaryFile:  "i18n_te.json",
		DiseaseRiskFile: "disease_risk_levels.csv",
		SymptomRiskFile: "symptom_risk_levels.csv",
		PredictorCfg:    pcfg,
		Validation:      validate.DefaultOptions(),
	}
}

// artifactPath resolves an artifact file name against ArtifactsDir.
func (c *Config) artifactPath(name string) string {
	return filepath.Join(c.ArtifactsDir, name)
}

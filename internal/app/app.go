// Package app holds the application context: every dictionary, table and
// model handle loaded once at startup, shared read-only by all requests.
// Request-scoped methods hang off Application so the HTTP layer stays thin
// and the pipeline is testable without a running server.
package app

import (
	"context"
	"errors"
	"math"

	"github.com/agrovet/pashumitra/internal/history"
	"github.com/agrovet/pashumitra/internal/lang"
	"github.com/agrovet/pashumitra/internal/logging"
	"github.com/agrovet/pashumitra/internal/predictor"
	"github.com/agrovet/pashumitra/internal/risk"
	"github.com/agrovet/pashumitra/internal/validate"
)

// ErrNotReady is returned when a request arrives before artifacts loaded.
var ErrNotReady = errors.New("service not ready: artifacts not loaded")

// Parts are the already-constructed collaborators of an Application. Tests
// build these directly with doubles; production uses Load.
type Parts struct {
	Dictionary  *lang.Dictionary
	Symptoms    *validate.SymptomSet
	DiseaseRisk risk.Table
	SymptomRisk risk.Table
	Predictor   *predictor.Service
	History     *history.Store // optional
}

// Application is the process-wide runtime state container. All fields are
// read-only after construction; concurrency safety follows from immutability.
type Application struct {
	cfg    *Config
	parts  Parts
	logger logging.Logger
}

// New constructs an Application from pre-built parts. Keep the constructor
// simple so it is easy to test and does not touch the filesystem.
func New(cfg *Config, parts Parts, logger logging.Logger) *Application {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewStdoutLogger("App")
	}
	return &Application{cfg: cfg, parts: parts, logger: logger}
}

// Load reads every startup artifact named by cfg and assembles the
// Application. Any failure is fatal: the service must not come up partially.
func Load(cfg *Config, logger logging.Logger) (*Application, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewStdoutLogger("App")
	}

	dict, err := lang.LoadDictionary(cfg.artifactPath(cfg.DictionaryFile))
	if err != nil {
		return nil, err
	}
	symptoms, err := validate.LoadSymptomSet(cfg.artifactPath(cfg.SymptomsFile))
	if err != nil {
		return nil, err
	}
	diseaseRisk, symptomRisk, err := risk.LoadTables(
		cfg.artifactPath(cfg.DiseaseRiskFile), cfg.artifactPath(cfg.SymptomRiskFile))
	if err != nil {
		return nil, err
	}

	pcfg := cfg.PredictorCfg
	if pcfg.ArtifactsDir == "" {
		pcfg.ArtifactsDir = cfg.ArtifactsDir
	}
	pred, err := predictor.Load(pcfg, logger)
	if err != nil {
		return nil, err
	}

	var store *history.Store
	if cfg.HistoryPath != "" {
		store, err = history.Open(cfg.HistoryPath, logger)
		if err != nil {
			pred.Close()
			return nil, err
		}
	}

	logger.Info("artifacts loaded",
		logging.Field{Key: "symptoms", Value: symptoms.Len()},
		logging.Field{Key: "disease_risk_entries", Value: len(diseaseRisk)},
		logging.Field{Key: "symptom_risk_entries", Value: len(symptomRisk)})

	return New(cfg, Parts{
		Dictionary:  dict,
		Symptoms:    symptoms,
		DiseaseRisk: diseaseRisk,
		SymptomRisk: symptomRisk,
		Predictor:   pred,
		History:     store,
	}, logger), nil
}

// Ready reports whether every required collaborator is present.
func (a *Application) Ready() bool {
	return a.parts.Dictionary != nil && !a.parts.Dictionary.Empty() &&
		a.parts.Symptoms != nil && a.parts.Symptoms.Len() > 0 &&
		a.parts.Predictor != nil
}

// Status is the health snapshot served by /health.
type Status struct {
	Status           string `json:"status"`
	SymptomsCount    int    `json:"symptoms_count"`
	DictionaryLoaded bool   `json:"i18n_loaded"`
	PredictorLoaded  bool   `json:"predictor_loaded"`
	HistoryEnabled   bool   `json:"history_enabled"`
}

// Health reports readiness of each loaded collaborator.
func (a *Application) Health() Status {
	st := Status{
		DictionaryLoaded: a.parts.Dictionary != nil && !a.parts.Dictionary.Empty(),
		PredictorLoaded:  a.parts.Predictor != nil,
		HistoryEnabled:   a.parts.History != nil,
	}
	if a.parts.Symptoms != nil {
		st.SymptomsCount = a.parts.Symptoms.Len()
	}
	st.Status = "not_ready"
	if a.Ready() {
		st.Status = "ok"
	}
	return st
}

// Preprocess validates and canonicalizes one raw request.
func (a *Application) Preprocess(animal string, symptoms []string) validate.Result {
	return validate.Validate(animal, symptoms, a.parts.Symptoms, a.parts.Dictionary, a.cfg.Validation)
}

// PredictTopK runs the classifier on the canonical request once.
func (a *Application) PredictTopK(animal, symptomText string, k int) ([]predictor.Candidate, error) {
	return a.parts.Predictor.PredictTopK(animal, symptomText, k)
}

// ScoreRisk blends disease severity, worst symptom severity and confidence.
func (a *Application) ScoreRisk(disease string, symptoms []string, confidence float64) risk.Result {
	return risk.Score(disease, symptoms, confidence, a.parts.DiseaseRisk, a.parts.SymptomRisk)
}

// PredictionView is one ranked candidate in a diagnosis response.
type PredictionView struct {
	Disease            lang.Bilingual `json:"disease"`
	Probability        float64        `json:"probability"`
	ProbabilityPercent float64        `json:"probability_percent"`
}

// RiskView is the localized risk block of a diagnosis response.
type RiskView struct {
	Overall     lang.Bilingual `json:"overall"`
	Explanation string         `json:"explanation"`
}

// Diagnosis is a complete, localized prediction result.
type Diagnosis struct {
	Animal      lang.Bilingual   `json:"animal"`
	Symptoms    []lang.Bilingual `json:"symptoms"`
	Predictions []PredictionView `json:"predictions"`
	Risk        RiskView         `json:"risk"`
	Prevention  *lang.Bilingual  `json:"prevention,omitempty"`
	Precautions *lang.Bilingual  `json:"precautions,omitempty"`
}

// Diagnose runs the full pipeline: validation, feature assembly, one
// classifier invocation, risk scoring and response localization. On
// validation failure the Result carries the messages and the Diagnosis is
// nil; an error means the inference itself failed.
func (a *Application) Diagnose(ctx context.Context, animal string, symptoms []string, topK int) (*Diagnosis, validate.Result, error) {
	if !a.Ready() {
		return nil, validate.Result{}, ErrNotReady
	}

	prep := a.Preprocess(animal, symptoms)
	if !prep.OK {
		return nil, prep, nil
	}

	preds, err := a.PredictTopK(prep.Animal, prep.SymptomsText, topK)
	if err != nil {
		return nil, prep, err
	}
	top := preds[0]

	riskRes := a.ScoreRisk(top.Disease, prep.Symptoms, top.Probability)

	dict := a.parts.Dictionary
	diag := &Diagnosis{
		Animal: dict.Entry(lang.SectionAnimals, prep.Animal),
		Risk: RiskView{
			Overall:     dict.RiskPhrase(string(riskRes.Overall)),
			Explanation: riskRes.Explanation,
		},
	}
	for _, s := range prep.Symptoms {
		diag.Symptoms = append(diag.Symptoms, dict.Entry(lang.SectionSymptoms, s))
	}
	for _, p := range preds {
		diag.Predictions = append(diag.Predictions, PredictionView{
			Disease:            dict.Entry(lang.SectionDiseases, p.Disease),
			Probability:        p.Probability,
			ProbabilityPercent: math.Round(p.Probability*10000) / 100,
		})
	}
	diag.Prevention, diag.Precautions = a.Advice(top.Disease)

	if a.parts.History != nil {
		entry := history.Entry{
			Animal:      prep.Animal,
			Symptoms:    prep.SymptomsCSV,
			Disease:     top.Disease,
			Probability: top.Probability,
			RiskLevel:   string(riskRes.Overall),
		}
		if err := a.parts.History.Record(ctx, entry); err != nil {
			// History is an audit trail; never fail the prediction over it.
			a.logger.Warn("recording prediction history", logging.Field{Key: "error", Value: err.Error()})
		}
	}

	return diag, prep, nil
}

// Advice returns the localized prevention and precaution texts for a
// disease. Both are nil when the dictionary carries no advisory for it.
func (a *Application) Advice(disease string) (prevention, precautions *lang.Bilingual) {
	adv, ok := a.parts.Dictionary.Advisory(disease)
	if !ok {
		return nil, nil
	}
	p := lang.Bilingual{
		EN: adv.PreventionEN, TE: adv.PreventionTE,
		Display: adv.PreventionEN + " / " + adv.PreventionTE,
	}
	q := lang.Bilingual{
		EN: adv.PrecautionEN, TE: adv.PrecautionTE,
		Display: adv.PrecautionEN + " / " + adv.PrecautionTE,
	}
	return &p, &q
}

// SymptomList returns the allowed vocabulary as bilingual envelopes.
func (a *Application) SymptomList() []lang.Bilingual {
	list := a.parts.Symptoms.List()
	out := make([]lang.Bilingual, 0, len(list))
	for _, s := range list {
		out = append(out, a.parts.Dictionary.Entry(lang.SectionSymptoms, s))
	}
	return out
}

// RecentPredictions lists the newest history entries, if history is enabled.
func (a *Application) RecentPredictions(ctx context.Context, limit int) ([]history.Entry, error) {
	if a.parts.History == nil {
		return nil, nil
	}
	return a.parts.History.Recent(ctx, limit)
}

// Close releases the model runtime and history store.
func (a *Application) Close() {
	if a.parts.Predictor != nil {
		if err := a.parts.Predictor.Close(); err != nil {
			a.logger.Warn("closing predictor", logging.Field{Key: "error", Value: err.Error()})
		}
	}
	if a.parts.History != nil {
		if err := a.parts.History.Close(); err != nil {
			a.logger.Warn("closing history store", logging.Field{Key: "error", Value: err.Error()})
		}
	}
}

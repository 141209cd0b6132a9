// Package predictor assembles the numeric feature row for a validated
// request and ranks the classifier's probability output into top-k disease
// candidates.
package predictor

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/agrovet/pashumitra/internal/interfaces"
	"github.com/agrovet/pashumitra/internal/logging"
)

// Config locates the serialized model artifacts.
type Config struct {
	// ArtifactsDir is the directory all artifact file names are relative to.
	ArtifactsDir string

	// ModelFile is the exported classifier (ONNX).
	ModelFile string

	// VectorizerFile is the exported TF-IDF vocabulary and idf weights.
	VectorizerFile string

	// AnimalEncoderFile and DiseaseEncoderFile are the exported class lists
	// of the two categorical encoders.
	AnimalEncoderFile  string
	DiseaseEncoderFile string

	// ORTSharedLibrary optionally points at the onnxruntime shared library.
	ORTSharedLibrary string

	// InputName and OutputName are the model's graph tensor names.
	InputName  string
	OutputName string
}

// DefaultConfig returns the artifact layout the training pipeline exports.
func DefaultConfig() Config {
	return Config{
		ArtifactsDir:       "artifacts",
		ModelFile:          "model.onnx",
		VectorizerFile:     "tfidf.json",
		AnimalEncoderFile:  "animal_encoder.json",
		DiseaseEncoderFile: "disease_encoder.json",
		InputName:          "float_input",
		OutputName:         "probabilities",
	}
}

// Candidate is one (disease, probability) pair from a ranked prediction.
type Candidate struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
}

// Service turns (animal, symptom text) into ranked disease candidates. All
// state is read-only after construction; safe for concurrent use.
type Service struct {
	vectorizer interfaces.TextVectorizer
	animals    interfaces.CategoryEncoder
	diseases   interfaces.LabelDecoder
	model      interfaces.ProbabilityEstimator
	logger     logging.Logger
}

// NewService wires already-constructed parts. Tests use this with doubles to
// avoid loading real artifacts.
func NewService(vectorizer interfaces.TextVectorizer, animals interfaces.CategoryEncoder, diseases interfaces.LabelDecoder, model interfaces.ProbabilityEstimator, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewStdoutLogger("Predictor")
	}
	return &Service{
		vectorizer: vectorizer,
		animals:    animals,
		diseases:   diseases,
		model:      model,
		logger:     logger,
	}
}

// Load reads every artifact named by cfg and wires a Service over them.
// Any missing or malformed artifact is a startup-fatal error.
func Load(cfg Config, logger logging.Logger) (*Service, error) {
	path := func(name string) string { return filepath.Join(cfg.ArtifactsDir, name) }

	vectorizer, err := LoadTFIDF(path(cfg.VectorizerFile))
	if err != nil {
		return nil, err
	}
	animals, err := LoadLabelEncoder(path(cfg.AnimalEncoderFile))
	if err != nil {
		return nil, err
	}
	diseases, err := LoadLabelEncoder(path(cfg.DiseaseEncoderFile))
	if err != nil {
		return nil, err
	}
	model, err := NewONNXModel(path(cfg.ModelFile), cfg.ORTSharedLibrary, cfg.InputName, cfg.OutputName, diseases.NumClasses())
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("model artifacts loaded",
			logging.Field{Key: "vector_dim", Value: vectorizer.Dim()},
			logging.Field{Key: "animal_classes", Value: animals.NumClasses()},
			logging.Field{Key: "disease_classes", Value: diseases.NumClasses()})
	}
	return NewService(vectorizer, animals, diseases, model, logger), nil
}

// BuildFeatures produces the feature row for one request: the text vector
// with the animal's categorical code appended. The row is a fresh, writable
// allocation; concurrent requests never share buffers.
func (s *Service) BuildFeatures(animal, symptomText string) ([]float32, error) {
	vec := s.vectorizer.Transform(symptomText)

	code, err := s.animals.Encode(animal)
	if err != nil {
		return nil, fmt.Errorf("encoding animal feature: %w", err)
	}

	row := make([]float32, 0, len(vec)+1)
	row = append(row, vec...)
	row = append(row, float32(code))
	return row, nil
}

// PredictTopK runs the classifier once and returns the k most probable
// diseases, sorted descending by probability. Ties keep the classifier's
// native class order. k is raised to 1 and clamped to the number of known
// classes.
func (s *Service) PredictTopK(animal, symptomText string, k int) ([]Candidate, error) {
	if k < 1 {
		k = 1
	}

	features, err := s.BuildFeatures(animal, symptomText)
	if err != nil {
		return nil, err
	}

	proba, err := s.model.PredictProba(features)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}
	if len(proba) == 0 {
		return nil, fmt.Errorf("prediction failed: model returned no probabilities")
	}

	if k > len(proba) {
		k = len(proba)
	}

	idx := make([]int, len(proba))
	for i := range idx {
		idx[i] = i
	}
	// Stable sort keeps native index order for equal probabilities.
	sort.SliceStable(idx, func(a, b int) bool {
		return proba[idx[a]] > proba[idx[b]]
	})

	out := make([]Candidate, 0, k)
	for _, i := range idx[:k] {
		disease, err := s.diseases.Decode(i)
		if err != nil {
			return nil, fmt.Errorf("decoding disease label: %w", err)
		}
		out = append(out, Candidate{Disease: disease, Probability: float64(proba[i])})
	}
	return out, nil
}

// Close releases the underlying model runtime.
func (s *Service) Close() error {
	if s.model == nil {
		return nil
	}
	return s.model.Close()
}

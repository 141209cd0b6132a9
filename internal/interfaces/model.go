package interfaces

// The interfaces below describe the capability set of the trained model
// artifacts. The prediction pipeline only talks to these, so tests can inject
// doubles instead of loading real serialized artifacts.

// TextVectorizer turns free text into the numeric vector the classifier was
// trained on. Implementations are read-only after load and safe for
// concurrent use.
type TextVectorizer interface {
	// Transform vectorizes a single document. The returned slice is a fresh
	// allocation owned by the caller.
	Transform(text string) []float32

	// Dim returns the width of vectors produced by Transform.
	Dim() int
}

// CategoryEncoder maps a categorical value (the animal species) to the
// integer code assigned at training time.
type CategoryEncoder interface {
	// Encode returns the code for value, or an error if value was not among
	// the classes seen during training.
	Encode(value string) (int, error)
}

// LabelDecoder maps a class index from the classifier's probability output
// back to its human-readable label (the disease name).
type LabelDecoder interface {
	// Decode returns the label for the given class index.
	Decode(index int) (string, error)

	// NumClasses returns how many labels the decoder knows.
	NumClasses() int
}

// ProbabilityEstimator is the classifier itself: one feature row in, one
// probability per known class out, indices aligned with the LabelDecoder.
type ProbabilityEstimator interface {
	// PredictProba runs the model on a single feature row.
	PredictProba(features []float32) ([]float32, error)

	// Close releases any native resources held by the model runtime.
	Close() error
}

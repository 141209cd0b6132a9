package predictor

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ortInit guards one-time initialization of the ONNX Runtime environment;
// the runtime rejects a second InitializeEnvironment call in-process.
var ortInit sync.Once

// ONNXModel runs the exported classifier through ONNX Runtime. It implements
// interfaces.ProbabilityEstimator. Sessions are safe for concurrent Run
// calls; each request gets its own input and output tensors.
type ONNXModel struct {
	session    *ort.DynamicAdvancedSession
	numClasses int
}

// NewONNXModel loads the classifier session. sharedLibrary optionally points
// at the onnxruntime shared library; when empty the platform default lookup
// applies. A load failure here is fatal at startup: missing file, runtime
// version mismatch, or an unreadable model.
func NewONNXModel(modelPath, sharedLibrary, inputName, outputName string, numClasses int) (*ONNXModel, error) {
	var initErr error
	ortInit.Do(func() {
		if sharedLibrary != "" {
			ort.SetSharedLibraryPath(sharedLibrary)
		}
		initErr = ort.InitializeEnvironment()
	})
	if initErr != nil {
		return nil, fmt.Errorf("initializing onnxruntime: %w", initErr)
	}
	if numClasses < 1 {
		return nil, fmt.Errorf("model needs at least one output class, got %d", numClasses)
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath, []string{inputName}, []string{outputName}, nil)
	if err != nil {
		return nil, fmt.Errorf("loading model %s: %w", modelPath, err)
	}
	return &ONNXModel{session: session, numClasses: numClasses}, nil
}

// PredictProba runs the model on a single feature row and returns one
// probability per class, in the classifier's native class order.
func (m *ONNXModel) PredictProba(features []float32) ([]float32, error) {
	input, err := ort.NewTensor(ort.NewShape(1, int64(len(features))), features)
	if err != nil {
		return nil, fmt.Errorf("creating input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(m.numClasses)))
	if err != nil {
		return nil, fmt.Errorf("creating output tensor: %w", err)
	}
	defer output.Destroy()

	if err := m.session.Run([]ort.Value{input}, []ort.Value{output}); err != nil {
		return nil, fmt.Errorf("running model: %w", err)
	}

	// Copy out before the tensor is destroyed.
	data := output.GetData()
	proba := make([]float32, len(data))
	copy(proba, data)
	return proba, nil
}

// Close releases the session.
func (m *ONNXModel) Close() error {
	if m.session == nil {
		return nil
	}
	err := m.session.Destroy()
	m.session = nil
	return err
}

package predictor

import (
	"encoding/json"
	"fmt"
	"os"
)

// LabelEncoder is the categorical encoder exported from training: an ordered
// class list where a value's code is its position. It implements both
// interfaces.CategoryEncoder and interfaces.LabelDecoder.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

// NewLabelEncoder builds an encoder over the given class order.
func NewLabelEncoder(classes []string) (*LabelEncoder, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("label encoder needs at least one class")
	}
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("duplicate class %q in label encoder", c)
		}
		index[c] = i
	}
	return &LabelEncoder{classes: classes, index: index}, nil
}

// LoadLabelEncoder reads an exported class list JSON artifact.
func LoadLabelEncoder(path string) (*LabelEncoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading label encoder %s: %w", path, err)
	}
	var raw struct {
		Classes []string `json:"classes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing label encoder %s: %w", path, err)
	}
	enc, err := NewLabelEncoder(raw.Classes)
	if err != nil {
		return nil, fmt.Errorf("label encoder %s: %w", path, err)
	}
	return enc, nil
}

// Encode returns the code for value. Values outside the training classes are
// an error; validation upstream is expected to have gated them already.
func (e *LabelEncoder) Encode(value string) (int, error) {
	idx, ok := e.index[value]
	if !ok {
		return 0, fmt.Errorf("value %q is not among the encoder's classes", value)
	}
	return idx, nil
}

// Decode returns the label for a class index.
func (e *LabelEncoder) Decode(index int) (string, error) {
	if index < 0 || index >= len(e.classes) {
		return "", fmt.Errorf("class index %d out of range [0, %d)", index, len(e.classes))
	}
	return e.classes[index], nil
}

// NumClasses returns how many labels the encoder knows.
func (e *LabelEncoder) NumClasses() int {
	return len(e.classes)
}

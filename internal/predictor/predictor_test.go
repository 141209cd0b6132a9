package predictor_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/agrovet/pashumitra/internal/predictor"
	"github.com/agrovet/pashumitra/internal/testutil"
)

var diseaseClasses = []string{"Anthrax", "Black Quarter", "Foot and Mouth Disease"}

func newService(t *testing.T, stub *testutil.StubEstimator) *predictor.Service {
	t.Helper()

	vectorizer, err := predictor.NewTFIDF(
		map[string]int{"fever": 0, "cough": 1},
		[]float64{1.0, 1.0},
	)
	if err != nil {
		t.Fatalf("NewTFIDF: %v", err)
	}
	animals, err := predictor.NewLabelEncoder([]string{"Buffalo", "Cow", "Goat", "Sheep"})
	if err != nil {
		t.Fatalf("NewLabelEncoder(animals): %v", err)
	}
	diseases, err := predictor.NewLabelEncoder(diseaseClasses)
	if err != nil {
		t.Fatalf("NewLabelEncoder(diseases): %v", err)
	}
	return predictor.NewService(vectorizer, animals, diseases, stub, &testutil.DummyLogger{})
}

func TestService_BuildFeatures(t *testing.T) {
	t.Parallel()
	s := newService(t, &testutil.StubEstimator{})

	row, err := s.BuildFeatures("Cow", "fever")
	if err != nil {
		t.Fatalf("BuildFeatures: %v", err)
	}
	if len(row) != 3 {
		t.Fatalf("len = %d, want vectorizer dim + 1", len(row))
	}
	// "Cow" is class index 1 in the animal encoder.
	if row[2] != 1 {
		t.Errorf("animal code = %v, want 1", row[2])
	}
}

func TestService_BuildFeatures_UnknownAnimal(t *testing.T) {
	t.Parallel()
	s := newService(t, &testutil.StubEstimator{})

	if _, err := s.BuildFeatures("Horse", "fever"); err == nil {
		t.Fatal("expected error for animal outside encoder classes")
	}
}

func TestService_PredictTopK_SortedDescending(t *testing.T) {
	t.Parallel()
	stub := &testutil.StubEstimator{Proba: []float32{0.1, 0.7, 0.2}}
	s := newService(t, stub)

	got, err := s.PredictTopK("Cow", "fever cough", 3)
	if err != nil {
		t.Fatalf("PredictTopK: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []string{"Black Quarter", "Foot and Mouth Disease", "Anthrax"}
	for i, c := range got {
		if c.Disease != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, c.Disease, want[i])
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Probability > got[i-1].Probability {
			t.Errorf("not sorted descending at %d: %v", i, got)
		}
	}
}

func TestService_PredictTopK_ClampsToKnownClasses(t *testing.T) {
	t.Parallel()
	stub := &testutil.StubEstimator{Proba: []float32{0.5, 0.3, 0.2}}
	s := newService(t, stub)

	got, err := s.PredictTopK("Cow", "fever", 5)
	if err != nil {
		t.Fatalf("PredictTopK: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3 (clamped)", len(got))
	}
}

func TestService_PredictTopK_RaisesKToOne(t *testing.T) {
	t.Parallel()
	stub := &testutil.StubEstimator{Proba: []float32{0.5, 0.3, 0.2}}
	s := newService(t, stub)

	got, err := s.PredictTopK("Cow", "fever", 0)
	if err != nil {
		t.Fatalf("PredictTopK: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
	if got[0].Disease != "Anthrax" {
		t.Errorf("top = %q", got[0].Disease)
	}
}

func TestService_PredictTopK_TiesKeepNativeOrder(t *testing.T) {
	t.Parallel()
	stub := &testutil.StubEstimator{Proba: []float32{0.4, 0.4, 0.2}}
	s := newService(t, stub)

	got, err := s.PredictTopK("Cow", "fever", 2)
	if err != nil {
		t.Fatalf("PredictTopK: %v", err)
	}
	// Equal probabilities resolve by class index, not by name.
	if got[0].Disease != "Anthrax" || got[1].Disease != "Black Quarter" {
		t.Errorf("tie order = %v", got)
	}
}

func TestService_PredictTopK_WrapsModelError(t *testing.T) {
	t.Parallel()
	modelErr := errors.New("native runtime missing")
	s := newService(t, &testutil.StubEstimator{Err: modelErr})

	_, err := s.PredictTopK("Cow", "fever", 3)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, modelErr) {
		t.Errorf("error should wrap the model error: %v", err)
	}
	if !strings.Contains(err.Error(), "prediction failed") {
		t.Errorf("error should identify prediction failure: %v", err)
	}
}

func TestService_PredictTopK_FeatureRowIsolation(t *testing.T) {
	t.Parallel()
	stub := &testutil.StubEstimator{Proba: []float32{0.5, 0.3, 0.2}}
	s := newService(t, stub)

	if _, err := s.PredictTopK("Cow", "fever", 1); err != nil {
		t.Fatalf("PredictTopK: %v", err)
	}
	if _, err := s.PredictTopK("Goat", "cough", 1); err != nil {
		t.Fatalf("PredictTopK: %v", err)
	}
	if len(stub.Calls) != 2 {
		t.Fatalf("calls = %d", len(stub.Calls))
	}
	// Each request got its own feature row with its own animal code.
	if stub.Calls[0][2] == stub.Calls[1][2] {
		t.Error("feature rows aliased between requests")
	}
}

func TestLabelEncoder(t *testing.T) {
	t.Parallel()

	enc, err := predictor.NewLabelEncoder([]string{"Buffalo", "Cow"})
	if err != nil {
		t.Fatalf("NewLabelEncoder: %v", err)
	}
	if code, err := enc.Encode("Cow"); err != nil || code != 1 {
		t.Errorf("Encode(Cow) = %d, %v", code, err)
	}
	if _, err := enc.Encode("Horse"); err == nil {
		t.Error("expected error for unknown class")
	}
	if label, err := enc.Decode(0); err != nil || label != "Buffalo" {
		t.Errorf("Decode(0) = %q, %v", label, err)
	}
	if _, err := enc.Decode(2); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if enc.NumClasses() != 2 {
		t.Errorf("NumClasses = %d", enc.NumClasses())
	}
}

func TestNewLabelEncoder_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	if _, err := predictor.NewLabelEncoder([]string{"Cow", "Cow"}); err == nil {
		t.Fatal("expected error for duplicate class")
	}
}

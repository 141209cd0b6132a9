// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or native
// model runtimes.
package testutil

import (
	"sync"

	"github.com/agrovet/pashumitra/internal/logging"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(fields ...logging.Field) logging.Logger {
	return l
}

// ─── Probability estimator ─────────────────────────────────────────────

// StubEstimator implements interfaces.ProbabilityEstimator with a canned
// distribution (or error). It records the feature rows it was called with.
type StubEstimator struct {
	Proba []float32
	Err   error

	mu    sync.Mutex
	Calls [][]float32
}

func (s *StubEstimator) PredictProba(features []float32) ([]float32, error) {
	s.mu.Lock()
	row := make([]float32, len(features))
	copy(row, features)
	s.Calls = append(s.Calls, row)
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]float32, len(s.Proba))
	copy(out, s.Proba)
	return out, nil
}

func (s *StubEstimator) Close() error { return nil }

// LastCall returns the most recent feature row, or nil if never called.
func (s *StubEstimator) LastCall() []float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Calls) == 0 {
		return nil
	}
	return s.Calls[len(s.Calls)-1]
}

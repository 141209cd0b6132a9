// Command predict runs one diagnosis against the loaded artifacts without
// starting the HTTP server. Useful for smoke-testing a new artifact export.
// Usage: go run ./cmd/predict -artifacts ./artifacts -animal Cow -symptoms "High fever, Cough, Nasal discharge"
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/agrovet/pashumitra/internal/app"
	"github.com/agrovet/pashumitra/internal/logging"
	"github.com/agrovet/pashumitra/internal/validate"
)

func main() {
	cfg := app.DefaultConfig()
	cfg.HistoryPath = "" // one-shot runs leave no audit trail

	artifacts := flag.String("artifacts", cfg.ArtifactsDir, "Directory holding the model artifacts")
	animal := flag.String("animal", "", "Animal species (English or Telugu)")
	symptoms := flag.String("symptoms", "", "Comma-separated symptoms (English or Telugu)")
	topK := flag.Int("k", 3, "How many candidates to return")
	ortLib := flag.String("ort", "", "Path to the onnxruntime shared library (optional)")
	flag.Parse()

	if *animal == "" || *symptoms == "" {
		fmt.Fprintln(os.Stderr, "both -animal and -symptoms are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg.ArtifactsDir = *artifacts
	cfg.PredictorCfg.ArtifactsDir = *artifacts
	cfg.PredictorCfg.ORTSharedLibrary = *ortLib

	logger := logging.NewStdoutLogger("predict")

	application, err := app.Load(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading artifacts: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	diag, prep, err := application.Diagnose(context.Background(), *animal, validate.SplitSymptoms(*symptoms), *topK)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prediction failed: %v\n", err)
		os.Exit(1)
	}
	if diag == nil {
		for _, msg := range prep.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(diag); err != nil {
		fmt.Fprintf(os.Stderr, "encoding result: %v\n", err)
		os.Exit(1)
	}
}

// Command pashumitra serves the farm animal disease prediction API.
// All model artifacts are loaded once at startup; a missing or malformed
// artifact aborts the process before the listener opens.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrovet/pashumitra/internal/app"
	"github.com/agrovet/pashumitra/internal/logging"
	"github.com/agrovet/pashumitra/internal/server"
)

func main() {
	cfg := app.DefaultConfig()

	addr := flag.String("addr", cfg.ListenAddr, "HTTP listen address")
	artifacts := flag.String("artifacts", cfg.ArtifactsDir, "Directory holding the model artifacts")
	historyPath := flag.String("history", cfg.HistoryPath, "SQLite file for the prediction history (empty disables)")
	ortLib := flag.String("ort", "", "Path to the onnxruntime shared library (optional)")
	flag.Parse()

	cfg.ListenAddr = *addr
	cfg.ArtifactsDir = *artifacts
	cfg.HistoryPath = *historyPath
	cfg.PredictorCfg.ArtifactsDir = *artifacts
	cfg.PredictorCfg.ORTSharedLibrary = *ortLib

	logger := logging.NewStdoutLogger("Pashumitra")

	application, err := app.Load(cfg, logger)
	if err != nil {
		logger.Error("loading artifacts", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}

	srv, err := server.NewServer(server.Config{
		ListenAddr: cfg.ListenAddr,
		App:        application,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("creating server", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
	defer srv.Close()

	httpServer := srv.HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", logging.Field{Key: "addr", Value: cfg.ListenAddr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", logging.Field{Key: "error", Value: err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", logging.Field{Key: "error", Value: err.Error()})
	}
	logger.Info("stopped")
}

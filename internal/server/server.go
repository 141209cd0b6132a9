package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/agrovet/pashumitra/docs" // swagger spec registration

	"github.com/agrovet/pashumitra/internal/app"
	"github.com/agrovet/pashumitra/internal/history"
	"github.com/agrovet/pashumitra/internal/logging"
)

// Server is the HTTP API surface for Pashumitra.
type Server struct {
	cfg    Config
	app    *app.Application
	router chi.Router
	logger logging.Logger
}

// NewServer wires the router over an already-loaded application context.
func NewServer(cfg Config) (*Server, error) {
	if cfg.App == nil {
		return nil, errors.New("server: App is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	s := &Server{
		cfg:    cfg,
		app:    cfg.App,
		router: chi.NewRouter(),
		logger: logger,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/predict", s.optionsHandler("POST"))
	r.Options("/symptoms", s.optionsHandler("GET"))
	r.Options("/predictions", s.optionsHandler("GET"))
	r.Options("/health", s.optionsHandler("GET"))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/symptoms", s.handleSymptoms)
	r.Post("/predict", s.handlePredict)
	r.Get("/predictions", s.handleListPredictions)

	r.Get("/docs/*", httpSwagger.Handler())
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler with per-request structured logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "request_id", Value: uuid.New().String()},
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}

	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}

	if r.Body != nil && r.Method == http.MethodPost {
		if bodyBytes, err := io.ReadAll(r.Body); err == nil {
			fields = append(fields, logging.Field{Key: "body", Value: string(bodyBytes)})
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Close releases the application context.
func (s *Server) Close() {
	if s.app != nil {
		s.app.Close()
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ensureReady returns false and writes a 503 if artifacts are not loaded.
func (s *Server) ensureReady(w http.ResponseWriter) bool {
	if s.app.Ready() {
		return true
	}
	writeError(w, http.StatusServiceUnavailable, "Service not ready (artifacts not loaded). Check /health for details.")
	return false
}

// --- HTTP handlers ---

// handleRoot godoc
// @Summary Service entry point
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Status: "ok",
		Docs:   "/docs/index.html",
		Health: "/health",
	})
}

// handleHealth godoc
// @Summary Artifact and predictor readiness
// @Produce json
// @Success 200 {object} app.Status
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Health())
}

// handleSymptoms godoc
// @Summary List the allowed symptom vocabulary, bilingually
// @Produce json
// @Success 200 {object} map[string][]lang.Bilingual
// @Failure 503 {object} ErrorResponse
// @Router /symptoms [get]
func (s *Server) handleSymptoms(w http.ResponseWriter, r *http.Request) {
	if !s.ensureReady(w) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"symptoms": s.app.SymptomList()})
}

// handlePredict godoc
// @Summary Predict the most likely diseases for observed symptoms
// @Accept json
// @Produce json
// @Param request body PredictRequest true "Animal species and symptoms (English or Telugu)"
// @Success 200 {object} app.Diagnosis
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /predict [post]
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if !s.ensureReady(w) {
		return
	}

	var body PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if body.TopK <= 0 {
		body.TopK = 3
	}

	diag, prep, err := s.app.Diagnose(r.Context(), body.Animal, body.Symptoms, body.TopK)
	if err != nil {
		// Opaque message: internal diagnostics go to the log, not the caller.
		s.logger.Error("diagnosis failed", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, "prediction failed")
		return
	}
	if diag == nil {
		s.logger.Warn("rejected prediction request", logging.Field{Key: "errors", Value: prep.Errors})
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: prep.Errors})
		return
	}

	s.logger.Info("served prediction",
		logging.Field{Key: "animal", Value: prep.Animal},
		logging.Field{Key: "symptom_count", Value: len(prep.Symptoms)},
		logging.Field{Key: "top_disease", Value: diag.Predictions[0].Disease.EN})
	writeJSON(w, http.StatusOK, diag)
}

// handleListPredictions godoc
// @Summary List recently served predictions
// @Produce json
// @Param limit query int false "Maximum entries to return" default(50)
// @Success 200 {object} map[string][]history.Entry
// @Failure 500 {object} ErrorResponse
// @Router /predictions [get]
func (s *Server) handleListPredictions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if ls := r.URL.Query().Get("limit"); ls != "" {
		if v, err := strconv.Atoi(ls); err == nil && v > 0 {
			limit = v
		}
	}

	entries, err := s.app.RecentPredictions(r.Context(), limit)
	if err != nil {
		s.logger.Warn("listing predictions", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"predictions": entries})
}

// Package httpserver is the thin HTTP layer: routing, request decoding and
// validation, upload handling. All scoring lives in internal/analysis.
package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"interview-insights-go/internal/analysis"
	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/questionbank"
	"interview-insights-go/internal/types"
)

const maxUploadBytes = 32 << 20

type Router struct {
	analyzer *analysis.Analyzer
	bank     *questionbank.Bank
	validate *validator.Validate
}

func New(analyzer *analysis.Analyzer, bank *questionbank.Bank) http.Handler {
	rt := &Router{
		analyzer: analyzer,
		bank:     bank,
		validate: validator.New(),
	}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})
	mux.Get("/questions", rt.handleQuestions)
	mux.Post("/analyse", rt.handleAnalyse)
	mux.Post("/transcribe", rt.handleTranscribe)
	return mux
}

func (rt *Router) handleQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.bank.All())
}

func (rt *Router) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "analyse")

	var req types.AnalyseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reqLog.WithError(err).Warn("bad request body")
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := rt.validate.Struct(req); err != nil {
		reqLog.WithError(err).Warn("validation failed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// A question_id fills in prompt and keywords the request left out.
	if req.QuestionID != "" {
		q, ok := rt.bank.Get(req.QuestionID)
		if !ok {
			http.Error(w, "unknown question_id", http.StatusBadRequest)
			return
		}
		if req.Prompt == "" {
			req.Prompt = q.Prompt
		}
		if len(req.RequiredKeywords) == 0 {
			req.RequiredKeywords = q.Keywords
		}
	}

	report, err := rt.analyzer.Analyse(r.Context(), analysis.Input{
		Transcription:    req.Transcription,
		RequiredKeywords: req.RequiredKeywords,
		DurationSeconds:  req.DurationSeconds,
		Prompt:           req.Prompt,
	})
	if err != nil {
		reqLog.WithError(err).Warn("analysis failed")
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	reqLog.WithField("duration_ms", report.DurationMs).Info("analysis complete")
	writeJSON(w, http.StatusOK, report)
}

func (rt *Router) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "transcribe")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "missing audio file", http.StatusBadRequest)
		return
	}
	defer file.Close()
	audio, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read audio", http.StatusBadRequest)
		return
	}

	text, err := rt.analyzer.Transcribe(r.Context(), audio, header.Filename)
	if err != nil {
		reqLog.WithError(err).Warn("transcription failed")
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"transcription": text})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrModelTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, types.ErrModelFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New().WithError(err).Error("failed to write response")
	}
}

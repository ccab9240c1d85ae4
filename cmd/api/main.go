package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"interview-insights-go/internal/analysis"
	"interview-insights-go/internal/config"
	"interview-insights-go/internal/httpserver"
	"interview-insights-go/internal/inference"
	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/questionbank"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "interview-insights-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	// question bank is optional; the service runs without one
	bank := questionbank.Empty()
	if cfg.QuestionBankPath != "" {
		loaded, err := questionbank.Load(cfg.QuestionBankPath)
		if err != nil {
			log.WithError(err).WithField("path", cfg.QuestionBankPath).Warn("question bank unavailable, continuing without it")
		} else {
			bank = loaded
			log.WithField("questions", bank.Len()).Info("question bank loaded")
		}
	}

	models := buildModels(cfg)
	analyzer := analysis.New(models)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpserver.New(analyzer, bank),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

// buildModels wires the process-wide model handles once at startup.
func buildModels(cfg config.Config) analysis.ModelRegistry {
	if cfg.UseMockModels {
		m := inference.Mock{}
		return analysis.ModelRegistry{
			Corrector:   m,
			Embedder:    m,
			Classifier:  m,
			Transcriber: m,
			Coach:       m,
		}
	}
	hf := inference.NewClient(inference.Options{
		BaseURL:        cfg.HFAPIBase,
		APIKey:         cfg.HFAPIKey,
		GrammarModel:   cfg.GrammarModel,
		EmbeddingModel: cfg.EmbeddingModel,
		ZeroShotModel:  cfg.ZeroShotModel,
		ASRModel:       cfg.ASRModel,
		Timeout:        cfg.ModelTimeout,
	})
	return analysis.ModelRegistry{
		Corrector:   hf,
		Embedder:    hf,
		Classifier:  hf,
		Transcriber: hf,
		Coach:       inference.NewCoach(cfg.CoachAPIBase, cfg.CoachAPIKey, cfg.CoachModel),
	}
}

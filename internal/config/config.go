package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries everything the service reads from the environment.
// Model IDs default to the same checkpoints the reference pipelines use.
type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"local"`

	HFAPIBase string `env:"HF_API_BASE" env-default:"https://api-inference.huggingface.co"`
	HFAPIKey  string `env:"HF_API_KEY"`

	GrammarModel   string `env:"GRAMMAR_MODEL" env-default:"vennify/t5-base-grammar-correction"`
	EmbeddingModel string `env:"EMBEDDING_MODEL" env-default:"sentence-transformers/all-MiniLM-L6-v2"`
	ZeroShotModel  string `env:"ZERO_SHOT_MODEL" env-default:"facebook/bart-large-mnli"`
	ASRModel       string `env:"ASR_MODEL" env-default:"openai/whisper-large-v3"`

	CoachAPIBase string `env:"COACH_API_BASE" env-default:"https://api.openai.com/v1"`
	CoachAPIKey  string `env:"COACH_API_KEY"`
	CoachModel   string `env:"COACH_MODEL" env-default:"meta-llama/Meta-Llama-3-8B-Instruct"`

	QuestionBankPath string `env:"QUESTION_BANK_PATH"`

	ModelTimeout  time.Duration `env:"MODEL_TIMEOUT" env-default:"30s"`
	UseMockModels bool          `env:"USE_MOCK_MODELS" env-default:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is loaded from the environment. The Gemini key is only ever read
// here; with no key set the companion runs in fallback-only mode.
type Config struct {
	DBPath       string `env:"SQ_DB_PATH"`
	UserName     string `env:"SQ_USER_NAME"`
	GeminiAPIKey string `env:"SQ_GEMINI_API_KEY"`
	GeminiModel  string `env:"SQ_GEMINI_MODEL"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

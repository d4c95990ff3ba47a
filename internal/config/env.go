package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Env — настройки процесса: где лежит config.json, логирование, адреса источников.
type Env struct {
	ConfigPath     string `env:"NPBOT_CONFIG" default:"config.json"`
	LogLevel       string `env:"LOG_LEVEL" default:"info"`
	LogFormat      string `env:"LOG_FORMAT" default:"text"`
	TosuWSURL      string `env:"TOSU_WS_URL" default:"ws://localhost:24050/ws"`
	TosuAPIURL     string `env:"TOSU_API_URL" default:"http://localhost:24050"`
	CompanionWSURL string `env:"COMPANION_WS_URL" default:"ws://localhost:20727/tokens"`
	// пусто — /metrics не поднимаем
	MetricsAddr string `env:"METRICS_ADDR"`
}

func LoadEnv() (*Env, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var e Env
	if err := env.Load(&e, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return &e, nil
}

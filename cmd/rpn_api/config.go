package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/polish-calc/internal/calc"
	"github.com/DjordjeVuckovic/polish-calc/internal/priority"
	"github.com/DjordjeVuckovic/polish-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/polish-calc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ApiConfig struct {
	StorageConfig factory.StorageConfig
	Priorities    *priority.Table
	Strict        bool
}

func (as *AppConfig) Load() (*ApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/rpn_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	priorities := priority.Default()
	if path := os.Getenv("PRIORITIES_FILE"); path != "" {
		priorities, err = priority.LoadFromFile(path)
		if err != nil {
			slog.Error("Failed to load priority table", "path", path, "error", err)
			return nil, err
		}
		slog.Info("Loaded priority table", "path", path)
	}

	return &ApiConfig{
		StorageConfig: *storageCfg,
		Priorities:    priorities,
		Strict:        env.Bool("STRICT_SYNTAX", false),
	}, nil
}

func (c *ApiConfig) Converter() *calc.Converter {
	return calc.NewConverter(calc.WithPriorities(c.Priorities), calc.WithStrict(c.Strict))
}

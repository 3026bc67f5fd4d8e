// Package main Polish Calc API
// @title Polish Calc API
// @version 1.0
// @description Converts infix arithmetic expressions to Reverse Polish Notation
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/polish-calc/docs"
	"github.com/DjordjeVuckovic/polish-calc/internal/router"
	"github.com/DjordjeVuckovic/polish-calc/internal/server"
	"github.com/DjordjeVuckovic/polish-calc/internal/storage/factory"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	store, err := factory.NewStorage(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create history storage", "type", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	s := server.New(sCfg, store.HealthChecker).
		SetupMiddlewares().
		SetupHealthChecks().
		SetupOpenApi()

	router.NewConvertRouter(s.Echo, cfg.Converter(), store.Storer).Bind()

	slog.Info("Starting API", "port", sCfg.Port, "storage", cfg.StorageConfig.Type, "strict", cfg.Strict)
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		store.Close()
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/polish-calc/internal/calc"
	"github.com/DjordjeVuckovic/polish-calc/internal/dto"
	"github.com/DjordjeVuckovic/polish-calc/internal/input"
	"github.com/DjordjeVuckovic/polish-calc/internal/priority"
	"github.com/DjordjeVuckovic/polish-calc/internal/suite"
)

func main() {
	cfg := parseFlags()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cfg.validate(); err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(2)
	}

	if cfg.SuitePath != "" {
		runSuite(cfg)
		return
	}
	runSingle(cfg)
}

func runSingle(cfg cliConfig) {
	priorities, err := loadPriorities(cfg.PrioritiesPath)
	if err != nil {
		slog.Error("Failed to load priority table", "path", cfg.PrioritiesPath, "error", err)
		os.Exit(1)
	}

	expr, err := input.Acquire(flag.Args(), os.Stdin)
	if err != nil {
		slog.Error("Failed to read expression", "error", err)
		os.Exit(1)
	}

	converter := calc.NewConverter(calc.WithPriorities(priorities), calc.WithStrict(cfg.Strict))
	res, err := converter.Convert(expr)
	if err != nil {
		slog.Error("Conversion failed", "input", expr, "error", err)
		os.Exit(1)
	}

	if cfg.Format == "json" {
		data, err := json.MarshalIndent(dto.NewConvertResponse(res, cfg.Strict), "", "  ")
		if err != nil {
			slog.Error("Failed to encode result", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}
	fmt.Println(res.Postfix.String())
}

func runSuite(cfg cliConfig) {
	loaded, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	// The suite's own table wins over -priorities.
	path := cfg.PrioritiesPath
	if p := loaded.PrioritiesPath(); p != "" {
		path = p
	}
	priorities, err := loadPriorities(path)
	if err != nil {
		slog.Error("Failed to load priority table", "path", path, "error", err)
		os.Exit(1)
	}

	report := suite.Run(loaded.Suite, calc.NewConverter(calc.WithPriorities(priorities), calc.WithStrict(cfg.Strict)))
	suite.WriteTable(report, os.Stdout)

	if cfg.Output != "" {
		if err := suite.WriteJSON(report, cfg.Output); err != nil {
			slog.Error("Failed to write report", "path", cfg.Output, "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if !report.OK() {
		os.Exit(1)
	}
}

func loadPriorities(path string) (*priority.Table, error) {
	if path == "" {
		return priority.Default(), nil
	}
	return priority.LoadFromFile(path)
}

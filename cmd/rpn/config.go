package main

import (
	"flag"
	"fmt"

	"github.com/DjordjeVuckovic/polish-calc/pkg/config/env"
)

type cliConfig struct {
	PrioritiesPath string
	Strict         bool
	SuitePath      string
	Output         string
	Format         string
	Verbose        bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.PrioritiesPath, "priorities", env.String("PRIORITIES_FILE", ""), "Path to priority table YAML")
	flag.BoolVar(&cfg.Strict, "strict", env.Bool("STRICT_SYNTAX", false), "Reject misplaced signs before conversion; in suite mode, the default for suites that leave strict unset")
	flag.StringVar(&cfg.SuitePath, "suite", "", "Path to scenario suite YAML; expressions from args/stdin are ignored")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the suite report (JSON)")
	flag.StringVar(&cfg.Format, "format", "text", "Output format for a single conversion: text or json")
	flag.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	flag.Parse()
	return cfg
}

func (c cliConfig) validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q, expected text or json", c.Format)
	}
	if c.Output != "" && c.SuitePath == "" {
		return fmt.Errorf("-output requires -suite")
	}
	return nil
}

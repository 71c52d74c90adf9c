package main

import (
	"flag"
)

type cliConfig struct {
	SuitePath     string
	Runs          int
	Output        string
	AllowTrailing bool
	MaxDepth      int
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "configs/suites/basics.yaml", "Path to case suite YAML")
	flag.IntVar(&cfg.Runs, "runs", 1, "Number of evaluations per case (latency is aggregated)")
	flag.StringVar(&cfg.Output, "output", "", "Optional path for a JSON report")
	flag.BoolVar(&cfg.AllowTrailing, "allow-trailing", false, "Ignore tokens after a complete expression")
	flag.IntVar(&cfg.MaxDepth, "max-depth", 0, "Maximum parenthesis nesting, 0 for unlimited")

	flag.Parse()
	return cfg
}

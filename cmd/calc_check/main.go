package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/arith-hunter/internal/calc"
	"github.com/DjordjeVuckovic/arith-hunter/internal/suite"
)

func main() {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	res, err := suite.Run(ctx, s, suite.RunConfig{
		Runs: cfg.Runs,
		Engine: calc.Config{
			AllowTrailing: cfg.AllowTrailing,
			MaxDepth:      cfg.MaxDepth,
		},
	})
	if err != nil {
		slog.Error("Suite run failed", "error", err)
		os.Exit(1)
	}

	suite.WriteTable(res, os.Stdout)

	if cfg.Output != "" {
		if err := suite.WriteJSON(res, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if !res.OK() {
		os.Exit(3)
	}
}

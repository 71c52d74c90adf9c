// Package main Arith Hunter API
// @title Arith Hunter API
// @version 1.0
// @description Evaluates integer arithmetic expressions with + - * / and parentheses
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/arith-hunter/docs"
	"github.com/DjordjeVuckovic/arith-hunter/internal/calc"
	"github.com/DjordjeVuckovic/arith-hunter/internal/router"
	"github.com/DjordjeVuckovic/arith-hunter/internal/server"
	pkgserver "github.com/DjordjeVuckovic/arith-hunter/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	engine := calc.New(calc.Config{
		AllowTrailing: sCfg.AllowTrailing,
		MaxDepth:      sCfg.MaxNestingDepth,
	})

	healthChecker := pkgserver.NewProbeHealthChecker(func(ctx context.Context) error {
		v, err := engine.Evaluate("(1+2)*3/2")
		if err != nil {
			return err
		}
		if v != 4.5 {
			return fmt.Errorf("self-check returned %v", v)
		}
		return nil
	})

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Arith Hunter API is running")
	})

	evalRouter := router.NewEvalRouter(s.Echo, engine,
		router.WithMaxExpressionLength(sCfg.MaxExpressionLength),
		router.WithMaxBatchSize(sCfg.MaxBatchSize),
		router.WithBatchConcurrency(sCfg.BatchConcurrency),
	)
	evalRouter.Bind()

	slog.Info("Evaluator configured",
		"max_depth", sCfg.MaxNestingDepth,
		"allow_trailing", sCfg.AllowTrailing,
		"max_expression_length", sCfg.MaxExpressionLength,
		"batch_concurrency", sCfg.BatchConcurrency,
	)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, draining in-flight requests...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/arith-hunter/pkg/config/env"
	"github.com/DjordjeVuckovic/arith-hunter/pkg/utils"
)

const (
	DefaultMaxExpressionLength = 4096
	DefaultMaxNestingDepth     = 256
	DefaultBatchConcurrency    = 8
	DefaultMaxBatchSize        = 100
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string

	MaxExpressionLength int
	MaxNestingDepth     int
	BatchConcurrency    int
	MaxBatchSize        int
	AllowTrailing       bool
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the current process environment.
func FromEnv() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitCSV(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxLen, err := positiveIntEnv("MAX_EXPRESSION_LENGTH", DefaultMaxExpressionLength)
	if err != nil {
		return nil, err
	}
	maxDepth, err := positiveIntEnv("MAX_NESTING_DEPTH", DefaultMaxNestingDepth)
	if err != nil {
		return nil, err
	}
	concurrency, err := positiveIntEnv("BATCH_CONCURRENCY", DefaultBatchConcurrency)
	if err != nil {
		return nil, err
	}
	maxBatch, err := positiveIntEnv("MAX_BATCH_SIZE", DefaultMaxBatchSize)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:                port,
		UseHttp2:            useHttp2,
		CorsOrigins:         origins,
		MaxExpressionLength: maxLen,
		MaxNestingDepth:     maxDepth,
		BatchConcurrency:    concurrency,
		MaxBatchSize:        maxBatch,
		AllowTrailing:       os.Getenv("ALLOW_TRAILING") == "true",
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

func positiveIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be a number", key)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", key, v)
	}
	return v, nil
}

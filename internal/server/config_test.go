package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "USE_HTTP2", "CORS_ORIGINS", "MAX_EXPRESSION_LENGTH",
		"MAX_NESTING_DEPTH", "BATCH_CONCURRENCY", "MAX_BATCH_SIZE", "ALLOW_TRAILING",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.UseHttp2)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	assert.Equal(t, DefaultMaxExpressionLength, cfg.MaxExpressionLength)
	assert.Equal(t, DefaultMaxNestingDepth, cfg.MaxNestingDepth)
	assert.Equal(t, DefaultBatchConcurrency, cfg.BatchConcurrency)
	assert.Equal(t, DefaultMaxBatchSize, cfg.MaxBatchSize)
	assert.False(t, cfg.AllowTrailing)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("USE_HTTP2", "true")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("MAX_NESTING_DEPTH", "16")
	t.Setenv("ALLOW_TRAILING", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	assert.Equal(t, 16, cfg.MaxNestingDepth)
	assert.True(t, cfg.AllowTrailing)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port not a number", key: "PORT", value: "http"},
		{name: "port out of range", key: "PORT", value: "70000"},
		{name: "negative depth", key: "MAX_NESTING_DEPTH", value: "-1"},
		{name: "zero batch size", key: "MAX_BATCH_SIZE", value: "0"},
		{name: "length not a number", key: "MAX_EXPRESSION_LENGTH", value: "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

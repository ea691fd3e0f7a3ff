package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "REQUEST_TIMEOUT", "CORS_ORIGINS", "LOG_LEVEL",
		"SAUNA_BASE_URL", "FETCH_TIMEOUT", "OUTBOUND_RPS", "USER_AGENT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, "https://sauna-ikitai.com", cfg.SaunaBaseURL)
	require.Equal(t, 10*time.Second, cfg.FetchTimeout)
	require.Zero(t, cfg.OutboundRPS)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FETCH_TIMEOUT", "2s")
	t.Setenv("OUTBOUND_RPS", "0.5")
	t.Setenv("SAUNA_BASE_URL", "http://localhost:3000")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.ServerPort)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, 2*time.Second, cfg.FetchTimeout)
	require.Equal(t, 0.5, cfg.OutboundRPS)
	require.Equal(t, "http://localhost:3000", cfg.SaunaBaseURL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("LOG_LEVEL", "loud")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			ServerPort:     "8080",
			RequestTimeout: time.Second,
			SaunaBaseURL:   "https://sauna-ikitai.com",
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.ServerPort = "http"
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.SaunaBaseURL = "sauna-ikitai.com"
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.OutboundRPS = -1
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.RequestTimeout = 0
	require.Error(t, cfg.Validate())
}

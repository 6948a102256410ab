package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "REQUEST_TIMEOUT_SEC", "GEMINI_API_KEY", "SET_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Equal(t, "8000", cfg.Server.Port)
	require.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	require.Equal(t, "SET,mai", cfg.SET.Market)
	require.Equal(t,
		"You are a financial assistant specializing in the Thai stock market.",
		cfg.Chat.SystemInstruction)
	require.Empty(t, cfg.Gemini.APIKey)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server": {"port": "9090", "request_timeout_sec": 5},
		"gemini": {"model": "gemini-1.5-pro"}
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, 5, cfg.Server.RequestTimeoutSec)
	require.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
	// untouched sections keep their defaults
	require.Equal(t, "PTT,AOT,EGCO", cfg.SET.StockSymbol)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server": {"port": "9090"}}`), 0o600))

	t.Setenv("PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "gem-secret")
	t.Setenv("SET_API_KEY", "set-secret")
	t.Setenv("REQUEST_TIMEOUT_SEC", "12")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Server.Port)
	require.Equal(t, "gem-secret", cfg.Gemini.APIKey)
	require.Equal(t, "set-secret", cfg.SET.APIKey)
	require.Equal(t, 12, cfg.Server.RequestTimeoutSec)
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

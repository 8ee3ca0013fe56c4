package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port default: got %d", cfg.Server.Port)
	}
	if cfg.Fetch.MaxAttempts != 3 {
		t.Errorf("max attempts default: got %d", cfg.Fetch.MaxAttempts)
	}
	if cfg.Analysis.Jitter != 0.01 {
		t.Errorf("jitter default: got %v", cfg.Analysis.Jitter)
	}
	if cfg.Provider.BaseURL == "" {
		t.Errorf("provider base url default missing")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing environment", "server:\n  port: 8080\n"},
		{"bad port", "environment: test\nserver:\n  port: 70000\n"},
		{"jitter out of range", "environment: test\nanalysis:\n  jitter: 0.5\n"},
		{"watchlist without symbols", "environment: test\nwatchlist:\n  enabled: true\n"},
		{"telegram token without chat", "environment: test\ntelegram:\n  bot_token: abc\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	t.Setenv("PORT", "9090")
	t.Setenv("API_KEY", "secret")
	t.Setenv("WATCHLIST_SYMBOLS", "AAPL,MSFT")

	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port override: got %d", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "secret" {
		t.Errorf("api key override: got %q", cfg.Auth.APIKey)
	}
	if len(cfg.Watchlist.Symbols) != 2 || cfg.Watchlist.Symbols[0] != "AAPL" {
		t.Errorf("symbols override: got %v", cfg.Watchlist.Symbols)
	}
}

func TestMinPointsFor(t *testing.T) {
	path := writeConfig(t, "environment: test\nanalysis:\n  min_points:\n    1d: 25\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.MinPointsFor("1d"); got != 25 {
		t.Errorf("configured interval: got %d", got)
	}
	if got := cfg.MinPointsFor("1wk"); got != 10 {
		t.Errorf("fallback: got %d", got)
	}
}

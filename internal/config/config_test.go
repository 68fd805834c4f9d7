package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Redis.Host != "localhost" {
		t.Errorf("default redis host = %q, want localhost", cfg.Redis.Host)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("default gemini model = %q", cfg.Gemini.Model)
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("POSTGRES_USER", "dashboard")
	defer os.Unsetenv("SERVER_PORT")
	defer os.Unsetenv("POSTGRES_USER")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Postgres.User != "dashboard" {
		t.Errorf("postgres user = %q, want dashboard", cfg.Postgres.User)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: -1},
		Postgres: PostgresConfig{User: "planner", Database: "planner"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative port")
	}
}

func TestParseTrendSources(t *testing.T) {
	sources := parseTrendSources("instagram=https://example.com/ig, TikTok=https://example.com/tt")

	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}
	if sources["instagram"] != "https://example.com/ig" {
		t.Errorf("instagram source = %q", sources["instagram"])
	}
	if sources["tiktok"] != "https://example.com/tt" {
		t.Errorf("tiktok source = %q (keys are lowercased)", sources["tiktok"])
	}

	if got := parseTrendSources(""); len(got) != 0 {
		t.Errorf("empty input produced %v", got)
	}
	if got := parseTrendSources("broken,=x,y="); len(got) != 0 {
		t.Errorf("malformed pairs produced %v", got)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.RequestTimeout != defaultTimeout {
		t.Fatalf("RequestTimeout = %v, want default", cfg.RequestTimeout)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want default", cfg.PageSize)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
api_url = "https://api.school.example.com"
request_timeout_seconds = 30
page_size = 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://api.school.example.com" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.PageSize != 50 {
		t.Fatalf("PageSize = %d, want 50", cfg.PageSize)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `api_url = "http://10.0.0.5:9000"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://10.0.0.5:9000" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.RequestTimeout != defaultTimeout || cfg.PageSize != defaultPageSize {
		t.Fatalf("cfg = %+v, want defaults for unset fields", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `api_url = [broken`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
api_url = "http://from-file:8080"
page_size = 10
`)
	t.Setenv("CHALK_API_URL", "http://from-env:8080")
	t.Setenv("CHALK_TIMEOUT_SECONDS", "7")
	t.Setenv("CHALK_PAGE_SIZE", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://from-env:8080" {
		t.Fatalf("APIURL = %q, want env override", cfg.APIURL)
	}
	if cfg.RequestTimeout != 7*time.Second {
		t.Fatalf("RequestTimeout = %v, want 7s", cfg.RequestTimeout)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("PageSize = %d, want file value when env is blank", cfg.PageSize)
	}
}

func TestEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("CHALK_TIMEOUT_SECONDS", "soon")
	t.Setenv("CHALK_PAGE_SIZE", "-5")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RequestTimeout != defaultTimeout || cfg.PageSize != defaultPageSize {
		t.Fatalf("cfg = %+v, want defaults when env values are unusable", cfg)
	}
}

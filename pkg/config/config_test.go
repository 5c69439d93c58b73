package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
mb:
  base_url: "http://localhost:5000/ws/2"
  user_agent: "my-app/1.0 (me@example.com)"
  max_retries: 3
  timeout: "10s"
  disable_rate_limit: true
image_processing:
  max_width: 800
  quality: 90
app:
  debug: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MB.BaseURL != "http://localhost:5000/ws/2" {
		t.Errorf("unexpected base_url: %s", cfg.MB.BaseURL)
	}
	if cfg.MB.MaxRetries != 3 {
		t.Errorf("unexpected max_retries: %d", cfg.MB.MaxRetries)
	}
	if !cfg.MB.DisableRateLimit {
		t.Error("disable_rate_limit not parsed")
	}
	if cfg.ImageProcessing.MaxWidth != 800 {
		t.Errorf("unexpected max_width: %d", cfg.ImageProcessing.MaxWidth)
	}
	if !cfg.App.Debug {
		t.Error("app.debug not parsed")
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("MB_TEST_UA", "env-app/2.0")

	path := writeConfig(t, `
mb:
  user_agent: "${MB_TEST_UA}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MB.UserAgent != "env-app/2.0" {
		t.Errorf("env var not expanded: %s", cfg.MB.UserAgent)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	path := writeConfig(t, `
mb:
  timeout: "not-a-duration"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for bad timeout")
	}
}

func TestLoadRejectsBadQuality(t *testing.T) {
	path := writeConfig(t, `
image_processing:
  quality: 150
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for quality > 100")
	}
}

func TestMBConfigDefaults(t *testing.T) {
	base := MBConfig{}
	cfg := base.GetDefaults()

	if cfg.BaseURL != "http://musicbrainz.org/ws/2" {
		t.Errorf("unexpected default base_url: %s", cfg.BaseURL)
	}
	if cfg.MaxRetries != 10 {
		t.Errorf("unexpected default max_retries: %d", cfg.MaxRetries)
	}
	if cfg.DisableRateLimit {
		t.Error("rate limiter must be enabled by default")
	}

	timeout, err := cfg.ParseTimeout()
	if err != nil {
		t.Fatalf("ParseTimeout failed: %v", err)
	}
	if timeout != 30*time.Second {
		t.Errorf("unexpected default timeout: %v", timeout)
	}
}

func TestMBConfigDefaultsKeepExplicitValues(t *testing.T) {
	base := MBConfig{MaxRetries: 2, UserAgent: "custom/1.0"}
	cfg := base.GetDefaults()

	if cfg.MaxRetries != 2 {
		t.Errorf("explicit max_retries overwritten: %d", cfg.MaxRetries)
	}
	if cfg.UserAgent != "custom/1.0" {
		t.Errorf("explicit user_agent overwritten: %s", cfg.UserAgent)
	}
}

func TestImageProcDefaults(t *testing.T) {
	base := ImageProcConfig{}
	cfg := base.GetDefaults()

	if cfg.MaxWidth != 500 || cfg.Quality != 85 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

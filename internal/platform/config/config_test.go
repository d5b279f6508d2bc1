package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	env := map[string]string{
		"STORE_BASE_URL": "https://store.example.com/db",
		"SESSION_SECRET": "test-secret",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Store.Timeout != defaultStoreTimeout {
		t.Errorf("unexpected store timeout: %s", cfg.Store.Timeout)
	}
	if cfg.Store.MaxRetries != defaultStoreRetries {
		t.Errorf("unexpected store retries: %d", cfg.Store.MaxRetries)
	}
	if cfg.Prefs.Path != defaultPrefsPath {
		t.Errorf("unexpected prefs path: %s", cfg.Prefs.Path)
	}
	if cfg.Security.SessionTTL != defaultSessionTTL {
		t.Errorf("unexpected session ttl: %s", cfg.Security.SessionTTL)
	}
	if cfg.Security.BannerDismissal != defaultBannerDismissal {
		t.Errorf("unexpected banner dismissal window: %s", cfg.Security.BannerDismissal)
	}
	if !cfg.Features.EnableEvents {
		t.Error("expected events enabled by default")
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"PORT":                 "9090",
		"SERVER_READ_TIMEOUT":  "20s",
		"SERVER_WRITE_TIMEOUT": "25s",
		"SERVER_IDLE_TIMEOUT":  "2m",
		"STORE_BASE_URL":       "https://store.example.com/db/",
		"STORE_TIMEOUT":        "3s",
		"STORE_MAX_RETRIES":    "5",
		"PREFS_DB_PATH":        "/tmp/prefs.db",
		"SESSION_SECRET":       "override-secret",
		"SESSION_TTL":          "1h",
		"BANNER_DISMISSAL":     "10m",
		"FEATURE_EVENTS":       "false",
		"FEATURE_PREF_CACHE":   "off",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("unexpected port: %s", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeout != 25*time.Second {
		t.Errorf("unexpected write timeout: %s", cfg.Server.WriteTimeout)
	}
	if cfg.Store.BaseURL != "https://store.example.com/db" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Store.BaseURL)
	}
	if cfg.Store.Timeout != 3*time.Second {
		t.Errorf("unexpected store timeout: %s", cfg.Store.Timeout)
	}
	if cfg.Store.MaxRetries != 5 {
		t.Errorf("unexpected store retries: %d", cfg.Store.MaxRetries)
	}
	if cfg.Prefs.Path != "/tmp/prefs.db" {
		t.Errorf("unexpected prefs path: %s", cfg.Prefs.Path)
	}
	if cfg.Security.SessionTTL != time.Hour {
		t.Errorf("unexpected session ttl: %s", cfg.Security.SessionTTL)
	}
	if cfg.Features.EnableEvents {
		t.Error("expected events disabled")
	}
	if cfg.Features.EnablePrefCache {
		t.Error("expected pref cache disabled")
	}
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	fields := verr.Fields()
	want := map[string]bool{"Store.BaseURL": false, "Security.SessionSecret": false}
	for _, field := range fields {
		if _, ok := want[field]; ok {
			want[field] = true
		}
	}
	for field, seen := range want {
		if !seen {
			t.Errorf("expected %s in validation fields %v", field, fields)
		}
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	contents := "# local overrides\nexport STORE_BASE_URL=https://dotenv.example.com/db\nSESSION_SECRET=\"dotenv-secret\"\nPORT=7070\n"
	if err := os.WriteFile(envPath, []byte(contents), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Store.BaseURL != "https://dotenv.example.com/db" {
		t.Errorf("unexpected base url: %s", cfg.Store.BaseURL)
	}
	if cfg.Security.SessionSecret != "dotenv-secret" {
		t.Errorf("expected quotes stripped, got %q", cfg.Security.SessionSecret)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("unexpected port: %s", cfg.Server.Port)
	}

	// Explicit env map wins over the file.
	cfg, err = Load(WithoutSystemEnv(), WithEnvFile(envPath), WithEnvMap(map[string]string{"PORT": "6060"}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "6060" {
		t.Errorf("expected env map to win, got %s", cfg.Server.Port)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "config.yaml")
	contents := "STORE_BASE_URL: https://file.example.com/db\nSESSION_SECRET: file-secret\nPORT: \"5050\"\n"
	if err := os.WriteFile(filePath, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	env := map[string]string{
		"CONFIG_FILE": filePath,
		"PORT":        "9091",
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Store.BaseURL != "https://file.example.com/db" {
		t.Errorf("unexpected base url: %s", cfg.Store.BaseURL)
	}
	if cfg.Security.SessionSecret != "file-secret" {
		t.Errorf("unexpected session secret: %s", cfg.Security.SessionSecret)
	}
	if cfg.Server.Port != "9091" {
		t.Errorf("expected env to win over file, got %s", cfg.Server.Port)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.DatabaseName != "academicos" {
		t.Fatalf("expected default database academicos, got %s", cfg.DatabaseName)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.Timeout)
	}
	if len(cfg.Origins) != 1 || cfg.Origins[0] != "*" {
		t.Fatalf("expected wildcard origin, got %v", cfg.Origins)
	}
	if cfg.StoreBackend != "mongo" {
		t.Fatalf("expected mongo backend, got %s", cfg.StoreBackend)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("STORE_BACKEND", "postgres")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected unknown backend to be rejected")
	}

	t.Setenv("STORE_BACKEND", "MEMORY")
	cfg, err := LoadConfig()
	if err != nil || cfg.StoreBackend != "memory" {
		t.Fatalf("expected memory backend, got %q err=%v", cfg.StoreBackend, err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlBody := "port: \"4000\"\ndatabase_name: fromfile\nmongodb_uri: mongodb://file:27017\nlog_level: warn\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "5000")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("CORS_ORIGINS", "http://a.local, http://b.local")
	t.Setenv("LOG_PRETTY", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected PORT override, got %s", cfg.Port)
	}
	if cfg.DatabaseName != "fromfile" {
		t.Fatalf("expected database from file, got %s", cfg.DatabaseName)
	}
	if cfg.MongoURI != "mongodb://file:27017" {
		t.Fatalf("expected uri from file, got %s", cfg.MongoURI)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected log level from file, got %s", cfg.LogLevel)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("expected REQUEST_TIMEOUT 3s, got %s", cfg.Timeout)
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "http://b.local" {
		t.Fatalf("expected two origins, got %v", cfg.Origins)
	}
	if cfg.LogPretty {
		t.Fatalf("expected LOG_PRETTY=false")
	}
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

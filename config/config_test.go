package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithEnv_YamlWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	pwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	rel, err := filepath.Rel(pwd, dir)
	if err != nil {
		t.Fatal(err)
	}

	yamlContent := `
env:
  env: test
  serviceName: tracker
http:
  port: 8080
auth:
  secret: from-file
  tokenTTL: 24h
realtime:
  scoreThreshold: 100
  replayInterval: 100ms
`
	if err := os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlContent), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("AUTH_SECRET", "from-env")

	cfg, err := LoadWithEnv[Config]("test", rel)
	if err != nil {
		t.Fatalf("LoadWithEnv failed: %v", err)
	}

	if cfg.Env.ServiceName != "tracker" {
		t.Errorf("serviceName = %q, want %q", cfg.Env.ServiceName, "tracker")
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("http.port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.Auth.Secret != "from-env" {
		t.Errorf("auth.secret = %q, want env override %q", cfg.Auth.Secret, "from-env")
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("auth.tokenTTL = %v, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Realtime == nil || cfg.Realtime.ReplayInterval != 100*time.Millisecond {
		t.Errorf("realtime.replayInterval not decoded: %+v", cfg.Realtime)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	if _, err := LoadWithEnv[Config]("no-such-env"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

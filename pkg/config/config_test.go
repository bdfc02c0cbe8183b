package config

import (
	"os"
	"path/filepath"
	"testing"
)

const minimalYAML = `
environment: test
server:
  port: 8080
clickhouse:
  host: localhost
model:
  store: file
  path: data/models/artifact.json
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMinimal(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "test" || cfg.Server.Port != 8080 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestValidateRejectsBadModelStore(t *testing.T) {
	bad := `
environment: test
clickhouse:
  host: localhost
model:
  store: s3
`
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatalf("model.store s3 must be rejected")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, minimalYAML)
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("CLICKHOUSE_HOST", "ch.internal")

	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("load with env: %v", err)
	}
	if cfg.Server.Port != 9091 {
		t.Fatalf("SERVER_PORT must override port, got %d", cfg.Server.Port)
	}
	if cfg.ClickHouse.Host != "ch.internal" {
		t.Fatalf("CLICKHOUSE_HOST must override host, got %q", cfg.ClickHouse.Host)
	}
}

func TestLoadWithEnvInvalidPortKeepsFile(t *testing.T) {
	path := writeConfig(t, minimalYAML)
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("load with env: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("unparsable SERVER_PORT must keep the file value, got %d", cfg.Server.Port)
	}
}

package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaultsUnderDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GYM_DATA_DIR", dir)
	t.Setenv("APP_PORT", "")
	t.Setenv("GYM_DB_PATH", "")
	t.Setenv("GYM_EXPORT_DIR", "")

	cfg, err := Load(filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.DBPath != filepath.Join(dir, "gym.db") {
		t.Fatalf("unexpected db path %q", cfg.Storage.DBPath)
	}
	if cfg.Storage.ExportDir != filepath.Join(dir, "exports") {
		t.Fatalf("unexpected export dir %q", cfg.Storage.ExportDir)
	}
	if cfg.Server.Addr() != "127.0.0.1:8765" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr())
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("GYM_DATA_DIR", t.TempDir())
	t.Setenv("APP_PORT", "not-a-port")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for invalid port")
	}
}

func TestValidateSchedulerNeedsCron(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Host: "127.0.0.1", Port: "8765"},
		Storage:   StorageConfig{DBPath: "gym.db", ExportDir: "exports"},
		Scheduler: SchedulerConfig{Enabled: true},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error when cron expressions are missing")
	}
	cfg.Scheduler.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

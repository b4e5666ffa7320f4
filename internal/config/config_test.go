package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/taskmaster/internal/config"
	"github.com/amonks/taskmaster/internal/testsupport"
	"github.com/amonks/taskmaster/session"
)

func writeGlobalConfig(t *testing.T, home, content string) {
	t.Helper()

	dir := filepath.Join(home, ".config", "taskmaster")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write global config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	home := testsupport.SetupTestHome(t)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != "file" {
		t.Errorf("expected file backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Dir != filepath.Join(home, ".local", "state", "taskmaster") {
		t.Errorf("unexpected state dir %q", cfg.Storage.Dir)
	}
	if cfg.Session.Logout != session.LogoutPreserve {
		t.Errorf("expected preserve logout, got %q", cfg.Session.Logout)
	}
	if !cfg.Tasks.Seed {
		t.Error("expected seeding to default on")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected warn level, got %q", cfg.Log.Level)
	}
}

func TestLoad_Global(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, home, `
[storage]
backend = "SQLite"
sqlite-path = "/tmp/tm.db"

[session]
logout = "wipe"

[tasks]
seed = false

[log]
level = "debug"
`)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("expected sqlite backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.SQLitePath != "/tmp/tm.db" {
		t.Errorf("unexpected sqlite path %q", cfg.Storage.SQLitePath)
	}
	if cfg.Session.Logout != session.LogoutWipe {
		t.Errorf("expected wipe logout, got %q", cfg.Session.Logout)
	}
	if cfg.Tasks.Seed {
		t.Error("expected seeding to be disabled")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
}

func TestLoad_ExplicitOverridesGlobal(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, home, `
[storage]
backend = "redis"
redis-addr = "localhost:6379"
redis-db = 2

[log]
level = "info"
`)

	explicit := filepath.Join(t.TempDir(), "taskmaster.toml")
	if err := os.WriteFile(explicit, []byte(`
[storage]
redis-db = 0
redis-prefix = "dev:"
`), 0644); err != nil {
		t.Fatalf("write explicit config: %v", err)
	}

	cfg, err := config.Load(explicit)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != "redis" {
		t.Errorf("expected global backend to survive, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.RedisDB != 0 {
		t.Errorf("expected explicit redis-db 0 to override, got %d", cfg.Storage.RedisDB)
	}
	if cfg.Storage.RedisPrefix != "dev:" {
		t.Errorf("expected dev: prefix, got %q", cfg.Storage.RedisPrefix)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected global log level, got %q", cfg.Log.Level)
	}

	opts := cfg.StoreOptions()
	if opts.Redis.Addr != "localhost:6379" || opts.Redis.Prefix != "dev:" {
		t.Errorf("unexpected store options %+v", opts)
	}
}

func TestLoad_ExplicitMissing(t *testing.T) {
	testsupport.SetupTestHome(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "syntax", content: "[storage\nbackend = 1"},
		{name: "backend", content: "[storage]\nbackend = \"etcd\""},
		{name: "logout", content: "[session]\nlogout = \"shred\""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			home := testsupport.SetupTestHome(t)
			writeGlobalConfig(t, home, tc.content)

			if _, err := config.Load(""); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	testsupport.SetupTestHome(t)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	env := map[string]string{
		"TASKMASTER_BACKEND":   "Memory",
		"TASKMASTER_STATE_DIR": "/var/tm",
		"TASKMASTER_SEED":      "false",
	}
	if err := cfg.ApplyEnv(func(key string) string { return env[key] }); err != nil {
		t.Fatalf("apply env: %v", err)
	}

	if cfg.Storage.Backend != "memory" {
		t.Errorf("expected memory backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Dir != "/var/tm" {
		t.Errorf("expected /var/tm, got %q", cfg.Storage.Dir)
	}
	if cfg.Tasks.Seed {
		t.Error("expected seeding disabled from env")
	}
}

func TestApplyEnv_BadSeed(t *testing.T) {
	testsupport.SetupTestHome(t)

	cfg := config.Default()
	err := cfg.ApplyEnv(func(key string) string {
		if key == "TASKMASTER_SEED" {
			return "sometimes"
		}
		return ""
	})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestApply(t *testing.T) {
	testsupport.SetupTestHome(t)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := cfg.Apply(config.Overrides{LogLevel: "DEBUG"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("empty override changed backend to %q", cfg.Storage.Backend)
	}

	if err := cfg.Apply(config.Overrides{Backend: "etcd"}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

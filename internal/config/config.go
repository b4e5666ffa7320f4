// Package config handles loading taskmaster.toml configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/taskmaster/internal/kv"
	"github.com/amonks/taskmaster/internal/paths"
	"github.com/amonks/taskmaster/session"
)

// ErrInvalidConfig is returned when a config value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the taskmaster configuration.
type Config struct {
	Storage Storage `toml:"storage"`
	Session Session `toml:"session"`
	Tasks   Tasks   `toml:"tasks"`
	Log     Log     `toml:"log"`
}

// Storage selects and configures the key-value store.
type Storage struct {
	// Backend is one of file, sqlite, redis, memory.
	Backend string `toml:"backend"`

	// Dir is the state directory. Defaults to ~/.local/state/taskmaster.
	Dir string `toml:"dir"`

	// SQLitePath overrides the sqlite database location.
	SQLitePath string `toml:"sqlite-path"`

	RedisAddr     string `toml:"redis-addr"`
	RedisPassword string `toml:"redis-password"`
	RedisDB       int    `toml:"redis-db"`
	RedisPrefix   string `toml:"redis-prefix"`
}

// Session contains session-related configuration.
type Session struct {
	// Logout is "preserve" (default) or "wipe".
	Logout session.LogoutPolicy `toml:"logout"`
}

// Tasks contains task-list configuration.
type Tasks struct {
	// Seed installs sample tasks the first time a user's list is empty.
	Seed bool `toml:"seed"`
}

// Log contains logging configuration.
type Log struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the configuration used when no files set a value.
func Default() *Config {
	return &Config{
		Storage: Storage{Backend: string(kv.BackendFile)},
		Session: Session{Logout: session.LogoutPreserve},
		Tasks:   Tasks{Seed: true},
		Log:     Log{Level: "warn"},
	}
}

// Load loads the global config file and, if explicitPath is set, merges that
// file over it. A missing global file is not an error; a missing explicit
// file is.
func Load(explicitPath string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := mergeFile(cfg, globalPath, false); err != nil {
		return nil, err
	}
	if explicitPath != "" {
		if err := mergeFile(cfg, explicitPath, true); err != nil {
			return nil, err
		}
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overrides are command-line or environment values applied on top of the
// config files. Empty fields leave the config unchanged.
type Overrides struct {
	Backend   string
	StateDir  string
	RedisAddr string
	LogLevel  string
	Seed      *bool
}

// Apply applies o and revalidates the config.
func (cfg *Config) Apply(o Overrides) error {
	if o.Backend != "" {
		cfg.Storage.Backend = o.Backend
	}
	if o.StateDir != "" {
		cfg.Storage.Dir = o.StateDir
	}
	if o.RedisAddr != "" {
		cfg.Storage.RedisAddr = o.RedisAddr
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.Seed != nil {
		cfg.Tasks.Seed = *o.Seed
	}
	return cfg.finish()
}

// ApplyEnv overrides config values from TASKMASTER_* environment variables.
func (cfg *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	o := Overrides{
		Backend:   getenv("TASKMASTER_BACKEND"),
		StateDir:  getenv("TASKMASTER_STATE_DIR"),
		RedisAddr: getenv("TASKMASTER_REDIS_ADDR"),
		LogLevel:  getenv("TASKMASTER_LOG_LEVEL"),
	}
	if value := getenv("TASKMASTER_SEED"); value != "" {
		seed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: TASKMASTER_SEED=%q", ErrInvalidConfig, value)
		}
		o.Seed = &seed
	}
	return cfg.Apply(o)
}

// StoreOptions converts the storage section to kv options.
func (cfg *Config) StoreOptions() kv.Options {
	return kv.Options{
		Backend:    kv.Backend(cfg.Storage.Backend),
		Dir:        cfg.Storage.Dir,
		SQLitePath: cfg.Storage.SQLitePath,
		Redis: kv.RedisOptions{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
			Prefix:   cfg.Storage.RedisPrefix,
		},
	}
}

func (cfg *Config) finish() error {
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = string(kv.BackendFile)
	}
	if !kv.Backend(cfg.Storage.Backend).IsValid() {
		return fmt.Errorf("%w: storage.backend %q", ErrInvalidConfig, cfg.Storage.Backend)
	}

	if cfg.Storage.Dir == "" {
		dir, err := paths.DefaultStateDir()
		if err != nil {
			return err
		}
		cfg.Storage.Dir = dir
	}

	policy, err := session.ParseLogoutPolicy(string(cfg.Session.Logout))
	if err != nil {
		return fmt.Errorf("%w: session.logout: %w", ErrInvalidConfig, err)
	}
	cfg.Session.Logout = policy

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	return nil
}

func mergeFile(cfg *Config, path string, required bool) error {
	fileCfg, meta, err := loadConfigFile(path)
	if err != nil {
		return err
	}
	if fileCfg == nil {
		if required {
			return fmt.Errorf("config file %s does not exist", path)
		}
		return nil
	}

	mergeString(&cfg.Storage.Backend, meta.IsDefined("storage", "backend"), fileCfg.Storage.Backend)
	mergeString(&cfg.Storage.Dir, meta.IsDefined("storage", "dir"), fileCfg.Storage.Dir)
	mergeString(&cfg.Storage.SQLitePath, meta.IsDefined("storage", "sqlite-path"), fileCfg.Storage.SQLitePath)
	mergeString(&cfg.Storage.RedisAddr, meta.IsDefined("storage", "redis-addr"), fileCfg.Storage.RedisAddr)
	mergeString(&cfg.Storage.RedisPassword, meta.IsDefined("storage", "redis-password"), fileCfg.Storage.RedisPassword)
	mergeString(&cfg.Storage.RedisPrefix, meta.IsDefined("storage", "redis-prefix"), fileCfg.Storage.RedisPrefix)
	if meta.IsDefined("storage", "redis-db") {
		cfg.Storage.RedisDB = fileCfg.Storage.RedisDB
	}

	if meta.IsDefined("session", "logout") {
		cfg.Session.Logout = fileCfg.Session.Logout
	}
	if meta.IsDefined("tasks", "seed") {
		cfg.Tasks.Seed = fileCfg.Tasks.Seed
	}
	mergeString(&cfg.Log.Level, meta.IsDefined("log", "level"), fileCfg.Log.Level)
	return nil
}

// loadConfigFile returns a nil config when the file doesn't exist.
func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeString(target *string, defined bool, value string) {
	if defined {
		*target = strings.TrimSpace(value)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/amonks/taskmaster/internal/config"
	"github.com/amonks/taskmaster/internal/kv"
	"github.com/amonks/taskmaster/internal/logging"
	"github.com/amonks/taskmaster/session"
	"github.com/amonks/taskmaster/task"
	"github.com/amonks/taskmaster/user"
	"go.uber.org/zap"
)

// app holds everything a command needs, opened from the effective config.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   kv.Store
	users   *user.Directory
	session *session.Manager
	tasks   *task.Repository
	drafts  task.Editor
}

// loadConfig merges config files, environment and global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(rootConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Apply(config.Overrides{
		Backend:  rootBackend,
		StateDir: rootStateDir,
		LogLevel: rootLogLevel,
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openApp opens the store and the services built on it. configure, if set,
// may adjust the config before anything is opened.
func openApp(ctx context.Context, configure func(*config.Config)) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if configure != nil {
		configure(cfg)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	store, err := kv.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", zap.String("backend", cfg.Storage.Backend), zap.String("dir", cfg.Storage.Dir))

	sess, err := session.Open(ctx, store, session.OpenOptions{
		Logout: cfg.Session.Logout,
		Logger: logger,
	})
	if err != nil {
		store.Close()
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		users:   user.NewDirectory(store, user.Options{Logger: logger}),
		session: sess,
		tasks:   task.NewRepository(store, task.Options{Logger: logger, NoSeed: !cfg.Tasks.Seed}),
		drafts:  task.Editor{Location: time.Local},
	}, nil
}

// Close flushes the logger and closes the store.
func (a *app) Close() error {
	_ = a.logger.Sync()
	return a.store.Close()
}

// requireUser returns the signed-in user with a hint when there is none.
func (a *app) requireUser() (user.User, error) {
	current, err := a.session.RequireUser()
	if errors.Is(err, session.ErrNotAuthenticated) {
		return user.User{}, fmt.Errorf("%w (run 'taskmaster login' or 'taskmaster signup' first)", err)
	}
	return current, err
}

// loadTasks loads the signed-in user's task list.
func (a *app) loadTasks(ctx context.Context) ([]task.Task, error) {
	current, err := a.requireUser()
	if err != nil {
		return nil, err
	}
	return a.tasks.Load(ctx, current.ID)
}

// resolveTaskIDs maps ID prefixes to full task IDs.
func (a *app) resolveTaskIDs(prefixes []string) ([]string, error) {
	resolved := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		id, err := a.tasks.Resolve(prefix)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, id)
	}
	return resolved, nil
}

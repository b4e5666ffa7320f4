// Package session tracks which user is signed in.
//
// A Manager is either anonymous or authenticated as exactly one user. The
// signed-in user is persisted under kv.SessionKey so later invocations
// resume the session.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/amonks/taskmaster/internal/kv"
	"github.com/amonks/taskmaster/user"
	"go.uber.org/zap"
)

// OpenOptions configures how the manager is opened.
type OpenOptions struct {
	// Logout selects what Logout does to the user's tasks.
	// Defaults to LogoutPreserve.
	Logout LogoutPolicy

	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Manager holds the current session state.
type Manager struct {
	store   kv.Store
	logout  LogoutPolicy
	logger  *zap.Logger
	current *user.User
}

// Open restores the session persisted in store. A missing, unreadable or
// id-less session record starts the manager anonymous.
func Open(ctx context.Context, store kv.Store, opts OpenOptions) (*Manager, error) {
	if opts.Logout == "" {
		opts.Logout = LogoutPreserve
	}
	if !opts.Logout.IsValid() {
		return nil, formatInvalidLogoutPolicyError(string(opts.Logout))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	m := &Manager{
		store:  store,
		logout: opts.Logout,
		logger: opts.Logger,
	}

	saved, ok, err := kv.GetJSON[user.User](ctx, store, kv.SessionKey)
	switch {
	case errors.Is(err, kv.ErrCorrupt):
		m.logger.Warn("ignoring unreadable session record", zap.Error(err))
	case err != nil:
		return nil, fmt.Errorf("read session: %w", err)
	case !ok:
	case !saved.Valid():
		m.logger.Warn("ignoring session record without user id")
	default:
		m.current = &saved
		m.logger.Debug("session restored", zap.String("user", saved.ID))
	}
	return m, nil
}

// Current returns the signed-in user, if any.
func (m *Manager) Current() (user.User, bool) {
	if m.current == nil {
		return user.User{}, false
	}
	return *m.current, true
}

// Authenticated reports whether a user is signed in.
func (m *Manager) Authenticated() bool {
	return m.current != nil
}

// RequireUser returns the signed-in user or ErrNotAuthenticated.
func (m *Manager) RequireUser() (user.User, error) {
	current, ok := m.Current()
	if !ok {
		return user.User{}, ErrNotAuthenticated
	}
	return current, nil
}

// Policy returns the configured logout policy.
func (m *Manager) Policy() LogoutPolicy {
	return m.logout
}

// Login signs in u, replacing any current session. The password hash is
// never persisted.
func (m *Manager) Login(ctx context.Context, u user.User) error {
	if !u.Valid() {
		return ErrInvalidUser
	}
	record := u.Public()
	if err := kv.SetJSON(ctx, m.store, kv.SessionKey, record); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if m.current != nil && m.current.ID != record.ID {
		m.logger.Info("session replaced", zap.String("previous", m.current.ID))
	}
	m.current = &record
	m.logger.Info("logged in", zap.String("user", record.ID))
	return nil
}

// Logout ends the session and returns the user that was signed in. Under
// LogoutWipe the user's task list is removed too.
func (m *Manager) Logout(ctx context.Context) (user.User, error) {
	if m.current == nil {
		return user.User{}, ErrNotAuthenticated
	}
	previous := *m.current

	if err := m.store.Remove(ctx, kv.SessionKey); err != nil {
		return user.User{}, fmt.Errorf("remove session: %w", err)
	}
	m.current = nil

	if m.logout == LogoutWipe {
		if err := m.store.Remove(ctx, kv.TasksKey(previous.ID)); err != nil {
			return previous, fmt.Errorf("remove tasks: %w", err)
		}
		m.logger.Info("task list wiped", zap.String("user", previous.ID))
	}
	m.logger.Info("logged out", zap.String("user", previous.ID))
	return previous, nil
}

package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/taskmaster/internal/ids"
	"github.com/amonks/taskmaster/internal/kv"
	"go.uber.org/zap"
)

// Options configures a Repository.
type Options struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// NewID generates task ids. Defaults to ids.New.
	NewID func() string

	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger

	// NoSeed skips installing sample tasks for users with no saved list.
	NoSeed bool
}

// Repository owns the task list of one user at a time. Every mutation
// persists the whole list before it returns; when the write fails the
// in-memory list is left as it was.
type Repository struct {
	store  kv.Store
	now    func() time.Time
	newID  func() string
	logger *zap.Logger
	seed   bool

	userID string
	tasks  []Task
	loaded bool
}

// NewRepository returns a repository backed by store.
func NewRepository(store kv.Store, opts Options) *Repository {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = ids.New
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Repository{
		store:  store,
		now:    opts.Now,
		newID:  opts.NewID,
		logger: opts.Logger,
		seed:   !opts.NoSeed,
	}
}

// Load makes userID the active user and reads their list. A user with no
// saved list gets the sample tasks, persisted immediately. An unreadable
// list is logged and treated as empty; it is not overwritten until the next
// mutation. Loading the active user again returns the cached list.
func (r *Repository) Load(ctx context.Context, userID string) ([]Task, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrNoUser
	}
	if r.loaded && r.userID == userID {
		return r.Tasks(), nil
	}

	key := kv.TasksKey(userID)
	saved, ok, err := kv.GetJSON[[]Task](ctx, r.store, key)
	switch {
	case errors.Is(err, kv.ErrCorrupt):
		r.logger.Warn("ignoring unreadable task list", zap.String("user", userID), zap.Error(err))
		saved = nil
	case err != nil:
		return nil, fmt.Errorf("read tasks: %w", err)
	case !ok && r.seed:
		saved = SeedTasks(userID, r.newID, r.now().Location())
		if err := kv.SetJSON(ctx, r.store, key, saved); err != nil {
			return nil, fmt.Errorf("write tasks: %w", err)
		}
		r.logger.Info("seeded sample tasks", zap.String("user", userID), zap.Int("count", len(saved)))
	}

	if saved == nil {
		saved = []Task{}
	}
	r.userID = userID
	r.tasks = saved
	r.loaded = true
	r.logger.Debug("tasks loaded", zap.String("user", userID), zap.Int("count", len(saved)))
	return r.Tasks(), nil
}

// UserID returns the active user, or "" before Load.
func (r *Repository) UserID() string {
	return r.userID
}

// Tasks returns a copy of the active list in stored order.
func (r *Repository) Tasks() []Task {
	return cloneTasks(r.tasks)
}

// Get returns the task with the exact id.
func (r *Repository) Get(id string) (Task, bool) {
	index := indexOf(r.tasks, id)
	if index < 0 {
		return Task{}, false
	}
	return cloneTasks(r.tasks[index : index+1])[0], true
}

// Resolve returns the full id of the task matching prefix.
func (r *Repository) Resolve(prefix string) (string, error) {
	if err := r.requireLoaded(); err != nil {
		return "", err
	}
	return NewIDIndex(r.tasks).Resolve(prefix)
}

// IDIndex returns an index of the active list's ids.
func (r *Repository) IDIndex() IDIndex {
	return NewIDIndex(r.tasks)
}

// Create appends a new task owned by the active user.
func (r *Repository) Create(ctx context.Context, p Payload) (Task, error) {
	if err := r.requireLoaded(); err != nil {
		return Task{}, err
	}
	p, err := r.normalizePayload(p)
	if err != nil {
		return Task{}, err
	}

	created := Task{
		ID:           r.newID(),
		UserID:       r.userID,
		Text:         p.Text,
		Status:       p.Status,
		Deadline:     p.Deadline,
		FinishedTime: p.FinishedTime,
	}
	if err := r.commit(ctx, appendTask(r.tasks, created)); err != nil {
		return Task{}, err
	}
	r.logger.Info("task created", zap.String("id", created.ID))
	return created, nil
}

// Update replaces the editable fields of the task with id.
func (r *Repository) Update(ctx context.Context, id string, p Payload) (Task, error) {
	if err := r.requireLoaded(); err != nil {
		return Task{}, err
	}
	p, err := r.normalizePayload(p)
	if err != nil {
		return Task{}, err
	}

	next, updated, ok := replaceTask(r.tasks, id, p)
	if !ok {
		return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if err := r.commit(ctx, next); err != nil {
		return Task{}, err
	}
	r.logger.Info("task updated", zap.String("id", id))
	return updated, nil
}

// ToggleStatus flips the task between pending and done. Marking it done
// records the current time as its finished time; reopening clears it.
func (r *Repository) ToggleStatus(ctx context.Context, id string) (Task, error) {
	if err := r.requireLoaded(); err != nil {
		return Task{}, err
	}

	next, toggled, ok := toggleTask(r.tasks, id, r.now())
	if !ok {
		return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if err := r.commit(ctx, next); err != nil {
		return Task{}, err
	}
	r.logger.Info("task toggled", zap.String("id", id), zap.String("status", string(toggled.Status)))
	return toggled, nil
}

// Delete removes the task with id. Deleting a missing id is a no-op and
// reports false.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	if err := r.requireLoaded(); err != nil {
		return false, err
	}

	next, removed := removeTask(r.tasks, id)
	if !removed {
		return false, nil
	}
	if err := r.commit(ctx, next); err != nil {
		return false, err
	}
	r.logger.Info("task deleted", zap.String("id", id))
	return true, nil
}

func (r *Repository) commit(ctx context.Context, next []Task) error {
	if err := kv.SetJSON(ctx, r.store, kv.TasksKey(r.userID), next); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	r.tasks = next
	return nil
}

func (r *Repository) requireLoaded() error {
	if !r.loaded {
		return ErrNoUser
	}
	return nil
}

// normalizePayload trims and validates p, and makes the finished time agree
// with the status.
func (r *Repository) normalizePayload(p Payload) (Payload, error) {
	p.Text = strings.TrimSpace(p.Text)
	p.Status = normalizeStatus(p.Status)
	if p.Status == "" {
		p.Status = StatusPending
	}
	if err := ValidatePayload(p); err != nil {
		return Payload{}, err
	}

	switch {
	case p.Status == StatusPending:
		p.FinishedTime = nil
	case p.FinishedTime == nil:
		now := r.now()
		p.FinishedTime = &now
	default:
		p.FinishedTime = cloneTime(p.FinishedTime)
	}
	return p, nil
}

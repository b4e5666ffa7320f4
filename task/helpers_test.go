package task

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amonks/taskmaster/internal/kv"
)

var errWriteFailed = errors.New("disk full")

// flakyStore fails writes while failWrites is set.
type flakyStore struct {
	kv.Store
	failWrites bool
	writes     int
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failWrites {
		return errWriteFailed
	}
	s.writes++
	return s.Store.Set(ctx, key, value)
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, time.December, 12, 10, 0, 0, 0, time.UTC)}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("task-%02d", n)
	}
}

func openTestRepository(t *testing.T, opts Options) (*Repository, *flakyStore, *testClock) {
	t.Helper()

	store := &flakyStore{Store: kv.NewMemory()}
	t.Cleanup(func() { store.Close() })

	clock := newTestClock()
	if opts.Now == nil {
		opts.Now = clock.Now
	}
	if opts.NewID == nil {
		opts.NewID = sequentialIDs()
	}
	return NewRepository(store, opts), store, clock
}

func loadTestRepository(t *testing.T, userID string) (*Repository, *flakyStore, *testClock) {
	t.Helper()

	repo, store, clock := openTestRepository(t, Options{})
	if _, err := repo.Load(context.Background(), userID); err != nil {
		t.Fatalf("load: %v", err)
	}
	return repo, store, clock
}

func assertFinishedInvariant(t *testing.T, tasks []Task) {
	t.Helper()

	for _, item := range tasks {
		if item.Status == StatusDone && item.FinishedTime == nil {
			t.Errorf("done task %s has no finished time", item.ID)
		}
		if item.Status == StatusPending && item.FinishedTime != nil {
			t.Errorf("pending task %s has finished time %v", item.ID, *item.FinishedTime)
		}
	}
}

func findByText(tasks []Task, text string) (Task, bool) {
	for _, item := range tasks {
		if item.Text == text {
			return item, true
		}
	}
	return Task{}, false
}

package task

import (
	"errors"
	"testing"
	"time"
)

func viewFixture() []Task {
	base := time.Date(2025, time.December, 10, 9, 0, 0, 0, time.UTC)
	finished := base.Add(-time.Hour)
	return []Task{
		{ID: "a", Text: "Buy milk", Status: StatusPending, Deadline: base.Add(72 * time.Hour)},
		{ID: "b", Text: "Ship release", Status: StatusDone, Deadline: base.Add(24 * time.Hour), FinishedTime: &finished},
		{ID: "c", Text: "Call mom", Status: StatusPending, Deadline: base},
		{ID: "d", Text: "Buy MILK again", Status: StatusDone, Deadline: base.Add(24 * time.Hour), FinishedTime: &finished},
		{ID: "e", Text: "Water plants", Status: StatusPending, Deadline: base.Add(24 * time.Hour)},
	}
}

func viewIDs(v View) []string {
	out := make([]string, 0, len(v.Tasks))
	for _, item := range v.Tasks {
		out = append(out, item.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProject(t *testing.T) {
	cases := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "default sorts by deadline", query: Query{}, want: []string{"c", "b", "d", "e", "a"}},
		{name: "status sort is stable", query: Query{Sort: SortStatus}, want: []string{"a", "c", "e", "b", "d"}},
		{name: "search ignores case", query: Query{Search: "milk"}, want: []string{"d", "a"}},
		{name: "pending", query: Query{Status: FilterPending}, want: []string{"c", "e", "a"}},
		{name: "done", query: Query{Status: FilterDone}, want: []string{"b", "d"}},
		{name: "search and filter", query: Query{Search: "MILK", Status: FilterPending}, want: []string{"a"}},
		{name: "no match", query: Query{Search: "taxes"}, want: []string{}},
		{name: "case-insensitive names", query: Query{Status: "Done", Sort: "STATUS"}, want: []string{"b", "d"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := Project(viewFixture(), tc.query)
			if err != nil {
				t.Fatalf("project: %v", err)
			}
			if got := viewIDs(view); !equalIDs(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProject_StatsIgnoreQuery(t *testing.T) {
	view, err := Project(viewFixture(), Query{Search: "milk", Status: FilterDone})
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if view.Stats != (Stats{Total: 5, Pending: 3, Done: 2}) {
		t.Errorf("unexpected stats %+v", view.Stats)
	}
}

func TestProject_FiltersPartitionList(t *testing.T) {
	tasks := viewFixture()
	pending, err := Project(tasks, Query{Status: FilterPending})
	if err != nil {
		t.Fatalf("project pending: %v", err)
	}
	done, err := Project(tasks, Query{Status: FilterDone})
	if err != nil {
		t.Fatalf("project done: %v", err)
	}

	seen := make(map[string]int)
	for _, item := range append(pending.Tasks, done.Tasks...) {
		seen[item.ID]++
	}
	if len(seen) != len(tasks) {
		t.Fatalf("expected %d distinct tasks, got %d", len(tasks), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("task %s appears %d times", id, count)
		}
	}
}

func TestProject_DeadlineSortNonDecreasing(t *testing.T) {
	view, err := Project(viewFixture(), Query{Sort: SortDeadline})
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	for i := 1; i < len(view.Tasks); i++ {
		if view.Tasks[i].Deadline.Before(view.Tasks[i-1].Deadline) {
			t.Fatalf("deadline order broken at %d: %v", i, viewIDs(view))
		}
	}
}

func TestProject_DoesNotModifyInput(t *testing.T) {
	tasks := viewFixture()
	if _, err := Project(tasks, Query{Sort: SortStatus}); err != nil {
		t.Fatalf("project: %v", err)
	}
	if tasks[0].ID != "a" || tasks[4].ID != "e" {
		t.Error("Project reordered its input")
	}
}

func TestProject_InvalidQuery(t *testing.T) {
	if _, err := Project(nil, Query{Status: "overdue"}); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
	if _, err := Project(nil, Query{Sort: "priority"}); !errors.Is(err, ErrInvalidSort) {
		t.Errorf("expected ErrInvalidSort, got %v", err)
	}
}

func TestView_EmptyMessage(t *testing.T) {
	empty, err := Project(nil, Query{})
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if !empty.Empty() || empty.FiltersActive {
		t.Fatalf("expected empty unfiltered view, got %+v", empty)
	}
	if empty.EmptyMessage() != "No tasks yet" {
		t.Errorf("unexpected message %q", empty.EmptyMessage())
	}

	filtered, err := Project(viewFixture(), Query{Search: "taxes"})
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if !filtered.FiltersActive {
		t.Fatal("expected filters active")
	}
	if filtered.EmptyMessage() != "No matching tasks" {
		t.Errorf("unexpected message %q", filtered.EmptyMessage())
	}
	if filtered.EmptyHint() == empty.EmptyHint() {
		t.Error("expected distinct hints")
	}
}

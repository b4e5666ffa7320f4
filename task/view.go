package task

import (
	"slices"

	internalstrings "github.com/amonks/taskmaster/internal/strings"
)

// Query selects and orders tasks for display.
type Query struct {
	// Search keeps tasks whose text contains it, ignoring case.
	Search string

	// Status filters by status. Empty means FilterAll.
	Status Filter

	// Sort orders the result. Empty means SortDeadline.
	Sort SortKey
}

// Stats tallies a whole task list, ignoring any query.
type Stats struct {
	Total   int `json:"total" yaml:"total"`
	Pending int `json:"pending" yaml:"pending"`
	Done    int `json:"done" yaml:"done"`
}

// View is a projected task list.
type View struct {
	Tasks []Task
	Stats Stats

	// FiltersActive is set when a search or status filter narrowed the list.
	FiltersActive bool
}

// Project filters, sorts and summarizes tasks. Both sorts are stable, so
// ties keep their stored order. tasks is not modified.
func Project(tasks []Task, query Query) (View, error) {
	filter, err := ParseFilter(string(query.Status))
	if err != nil {
		return View{}, err
	}
	sortKey, err := ParseSortKey(string(query.Sort))
	if err != nil {
		return View{}, err
	}

	result := make([]Task, 0, len(tasks))
	for _, item := range tasks {
		if !matchesSearch(item, query.Search) {
			continue
		}
		if filter != FilterAll && string(item.Status) != string(filter) {
			continue
		}
		result = append(result, item)
	}

	switch sortKey {
	case SortDeadline:
		slices.SortStableFunc(result, func(a, b Task) int {
			return a.Deadline.Compare(b.Deadline)
		})
	case SortStatus:
		slices.SortStableFunc(result, func(a, b Task) int {
			return a.Status.rank() - b.Status.rank()
		})
	}

	return View{
		Tasks:         result,
		Stats:         ComputeStats(tasks),
		FiltersActive: query.Search != "" || filter != FilterAll,
	}, nil
}

// ComputeStats tallies tasks by status.
func ComputeStats(tasks []Task) Stats {
	stats := Stats{Total: len(tasks)}
	for _, item := range tasks {
		switch item.Status {
		case StatusPending:
			stats.Pending++
		case StatusDone:
			stats.Done++
		}
	}
	return stats
}

// Empty reports whether the view has no tasks to show.
func (v View) Empty() bool {
	return len(v.Tasks) == 0
}

// EmptyMessage explains an empty view.
func (v View) EmptyMessage() string {
	if v.FiltersActive {
		return "No matching tasks"
	}
	return "No tasks yet"
}

// EmptyHint suggests what to do about an empty view.
func (v View) EmptyHint() string {
	if v.FiltersActive {
		return "Try a different filter or search term"
	}
	return "Add a task to get started"
}

func matchesSearch(item Task, search string) bool {
	return internalstrings.ContainsFold(item.Text, search)
}

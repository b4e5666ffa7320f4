// Package task implements a personal to-do list.
//
// Tasks belong to a single user and are persisted as one JSON array per user
// in a kv.Store. The package has three parts:
//   - Repository owns the authoritative list and persists every mutation
//   - Project derives a filtered, sorted View with summary Stats
//   - Editor validates form input and applies the completion-time policy
package task

import internalstrings "github.com/amonks/taskmaster/internal/strings"

// Status represents the state of a task.
type Status string

const (
	// StatusPending indicates the task still needs doing.
	StatusPending Status = "pending"

	// StatusDone indicates the task has been completed.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusDone {
		return StatusPending
	}
	return StatusDone
}

// rank orders pending before done.
func (s Status) rank() int {
	if s == StatusDone {
		return 1
	}
	return 0
}

// Filter selects tasks by status in a view.
type Filter string

const (
	// FilterAll shows every task.
	FilterAll Filter = "all"

	// FilterPending shows pending tasks.
	FilterPending Filter = "pending"

	// FilterDone shows done tasks.
	FilterDone Filter = "done"
)

// ValidFilters returns all valid filter values.
func ValidFilters() []Filter {
	return []Filter{FilterAll, FilterPending, FilterDone}
}

// IsValid returns true if the filter is a known valid value.
func (f Filter) IsValid() bool {
	for _, valid := range ValidFilters() {
		if f == valid {
			return true
		}
	}
	return false
}

// SortKey orders tasks in a view.
type SortKey string

const (
	// SortDeadline orders by deadline, earliest first.
	SortDeadline SortKey = "deadline"

	// SortStatus orders pending tasks before done tasks.
	SortStatus SortKey = "status"
)

// ValidSortKeys returns all valid sort keys.
func ValidSortKeys() []SortKey {
	return []SortKey{SortDeadline, SortStatus}
}

// IsValid returns true if the sort key is a known valid value.
func (k SortKey) IsValid() bool {
	for _, valid := range ValidSortKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

func normalizeStatus(status Status) Status {
	return Status(internalstrings.NormalizeLowerTrimSpace(string(status)))
}

func normalizeFilter(filter Filter) Filter {
	return Filter(internalstrings.NormalizeLowerTrimSpace(string(filter)))
}

func normalizeSortKey(key SortKey) SortKey {
	return SortKey(internalstrings.NormalizeLowerTrimSpace(string(key)))
}

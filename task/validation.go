package task

import (
	"errors"
	"strings"

	"github.com/amonks/taskmaster/internal/validation"
)

var (
	// ErrTextRequired is returned when a task's text is empty.
	ErrTextRequired = errors.New("task text required")

	// ErrDeadlineRequired is returned when a task has no deadline.
	ErrDeadlineRequired = errors.New("deadline required")

	// ErrInvalidDeadline is returned when a deadline cannot be parsed.
	ErrInvalidDeadline = errors.New("invalid deadline")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidFilter is returned when an invalid status filter is provided.
	ErrInvalidFilter = errors.New("invalid status filter")

	// ErrInvalidSort is returned when an invalid sort key is provided.
	ErrInvalidSort = errors.New("invalid sort")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousTaskIDPrefix is returned when an ID prefix matches multiple tasks.
	ErrAmbiguousTaskIDPrefix = errors.New("ambiguous task ID prefix")

	// ErrNoUser is returned when the repository is used before Load.
	ErrNoUser = errors.New("no user loaded")
)

// ParseStatus normalizes and validates a status name.
func ParseStatus(input string) (Status, error) {
	status := normalizeStatus(Status(input))
	if !status.IsValid() {
		return "", formatInvalidStatusError(Status(input))
	}
	return status, nil
}

// ParseFilter normalizes and validates a filter name. Empty means FilterAll.
func ParseFilter(input string) (Filter, error) {
	filter := normalizeFilter(Filter(input))
	if filter == "" {
		return FilterAll, nil
	}
	if !filter.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidFilter, Filter(input), ValidFilters())
	}
	return filter, nil
}

// ParseSortKey normalizes and validates a sort key. Empty means SortDeadline.
func ParseSortKey(input string) (SortKey, error) {
	key := normalizeSortKey(SortKey(input))
	if key == "" {
		return SortDeadline, nil
	}
	if !key.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidSort, SortKey(input), ValidSortKeys())
	}
	return key, nil
}

// ValidatePayload checks the fields every stored task must carry.
func ValidatePayload(p Payload) error {
	if strings.TrimSpace(p.Text) == "" {
		return ErrTextRequired
	}
	if p.Deadline.IsZero() {
		return ErrDeadlineRequired
	}
	if !p.Status.IsValid() {
		return formatInvalidStatusError(p.Status)
	}
	return nil
}

func formatInvalidStatusError(status Status) error {
	return validation.FormatInvalidValueError(ErrInvalidStatus, status, ValidStatuses())
}

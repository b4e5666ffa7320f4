package task

import (
	"fmt"

	"github.com/amonks/taskmaster/internal/ids"
)

// IDIndex indexes task IDs for prefix matching and display.
type IDIndex struct {
	ids []string
}

// NewIDIndex builds an IDIndex from a slice of tasks.
func NewIDIndex(tasks []Task) IDIndex {
	taskIDs := make([]string, 0, len(tasks))
	for _, item := range tasks {
		taskIDs = append(taskIDs, item.ID)
	}
	return IDIndex{ids: taskIDs}
}

// Resolve returns the full task ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	match, found, ambiguous := ids.MatchPrefix(index.ids, prefix)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousTaskIDPrefix, prefix)
	}
	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengths(index.ids)
}

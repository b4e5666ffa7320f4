package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/taskmaster/internal/ui"
	"github.com/amonks/taskmaster/task"
)

const taskDetailLineWidth = 80

// formatTaskDetail renders every field of a task.
func formatTaskDetail(item task.Task, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ID:       %s\n", highlight(item.ID, ui.PrefixLength(prefixLengths, item.ID)))
	fmt.Fprintf(&b, "Status:   %s\n", ui.StatusBadge(string(item.Status)))

	deadline := fmt.Sprintf("%s (%s)", ui.FormatTimestamp(item.Deadline), ui.FormatRelative(item.Deadline, now))
	if item.Overdue(now) {
		deadline = ui.Overdue(deadline)
	}
	fmt.Fprintf(&b, "Deadline: %s\n", deadline)

	if item.FinishedTime != nil {
		finished := ui.FormatTimestamp(*item.FinishedTime)
		if item.FinishedLate() {
			finished += " (late)"
		}
		fmt.Fprintf(&b, "Finished: %s\n", finished)
	}

	fmt.Fprintf(&b, "\n%s\n", formatTaskText(item.Text))
	return b.String()
}

func formatTaskText(value string) string {
	rendered := ui.RenderMarkdown(value, taskDetailLineWidth)
	if rendered == "" {
		return "-"
	}
	return rendered
}

package main

import (
	"fmt"
	"time"

	"github.com/amonks/taskmaster/internal/ui"
	"github.com/amonks/taskmaster/task"
)

func formatTaskTable(tasks []task.Task, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "DEADLINE", "DUE", "TEXT"}, len(tasks))

	if prefixLengths == nil {
		prefixLengths = task.NewIDIndex(tasks).PrefixLengths()
	}

	for _, item := range tasks {
		prefixLen := ui.PrefixLength(prefixLengths, item.ID)
		builder.AddRow(
			highlight(ui.ShortID(item.ID, prefixLen, taskIDMinDisplay), prefixLen),
			ui.StatusBadge(string(item.Status)),
			formatTaskDeadline(item, now),
			formatTaskDue(item, now),
			ui.TruncateTableCell(item.Text),
		)
	}

	return builder.String()
}

// taskIDMinDisplay is the shortest ID prefix shown in tables.
const taskIDMinDisplay = 8

func formatTaskDeadline(item task.Task, now time.Time) string {
	value := ui.FormatTimestamp(item.Deadline)
	if item.Overdue(now) {
		return ui.Overdue(value)
	}
	return value
}

func formatTaskDue(item task.Task, now time.Time) string {
	if item.Status == task.StatusDone {
		if item.FinishedLate() {
			return "late"
		}
		return "-"
	}
	return ui.FormatRelative(item.Deadline, now)
}

func formatStatsLine(stats task.Stats) string {
	return ui.Muted(fmt.Sprintf("%d total, %d pending, %d done", stats.Total, stats.Pending, stats.Done))
}

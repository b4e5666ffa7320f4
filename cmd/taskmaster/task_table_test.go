package main

import (
	"strings"
	"testing"
	"time"

	"github.com/amonks/taskmaster/task"
)

func tableFixture(now time.Time) []task.Task {
	finishedLate := now.Add(-time.Hour)
	return []task.Task{
		{
			ID:       "abc12345-0000",
			Text:     "Due tomorrow",
			Status:   task.StatusPending,
			Deadline: now.Add(24 * time.Hour),
		},
		{
			ID:       "abd45678-0000",
			Text:     "Already late",
			Status:   task.StatusPending,
			Deadline: now.Add(-2 * time.Hour),
		},
		{
			ID:           "ffe99999-0000",
			Text:         "Finished after the deadline",
			Status:       task.StatusDone,
			Deadline:     now.Add(-3 * time.Hour),
			FinishedTime: &finishedLate,
		},
	}
}

func TestFormatTaskTablePreservesAlignmentWithANSI(t *testing.T) {
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	tasks := tableFixture(now)

	prefixLengths := task.NewIDIndex(tasks).PrefixLengths()
	plain := formatTaskTable(tasks, prefixLengths, func(id string, prefix int) string { return id }, now)
	ansi := formatTaskTable(tasks, prefixLengths, func(id string, prefix int) string {
		if prefix <= 0 || prefix > len(id) {
			return id
		}
		return "\x1b[1m\x1b[36m" + id[:prefix] + "\x1b[0m" + id[prefix:]
	}, now)

	if stripANSICodes(ansi) != plain {
		t.Fatalf("expected ANSI output to align with plain output\nplain:\n%s\nansi:\n%s", plain, ansi)
	}
}

func TestFormatTaskTableColumns(t *testing.T) {
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	plain := formatTaskTable(tableFixture(now), nil, func(id string, prefix int) string { return id }, now)
	lines := strings.Split(strings.TrimSuffix(plain, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d lines:\n%s", len(lines), plain)
	}

	if !strings.HasPrefix(lines[0], "ID") || !strings.HasSuffix(lines[0], "TEXT") {
		t.Fatalf("unexpected header %q", lines[0])
	}

	cases := []struct {
		line int
		want []string
	}{
		{line: 1, want: []string{"abc12345", "pending", "in 1d", "Due tomorrow"}},
		{line: 2, want: []string{"abd45678", " !", "2h ago", "Already late"}},
		{line: 3, want: []string{"ffe99999", "done", "late", "Finished after the deadline"}},
	}
	for _, tc := range cases {
		for _, want := range tc.want {
			if !strings.Contains(lines[tc.line], want) {
				t.Errorf("row %d: expected %q in %q", tc.line, want, lines[tc.line])
			}
		}
	}
	if strings.Contains(lines[1], "!") {
		t.Errorf("future deadline marked overdue: %q", lines[1])
	}
	if strings.Contains(lines[1], "-0000") {
		t.Errorf("expected short ID, got %q", lines[1])
	}
}

func TestFormatTaskDue(t *testing.T) {
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	onTime := now.Add(-4 * time.Hour)
	item := task.Task{Status: task.StatusDone, Deadline: now.Add(-3 * time.Hour), FinishedTime: &onTime}

	if got := formatTaskDue(item, now); got != "-" {
		t.Fatalf("expected - for a task finished on time, got %q", got)
	}
}

func TestFormatStatsLine(t *testing.T) {
	got := formatStatsLine(task.Stats{Total: 4, Pending: 1, Done: 3})
	if got != "4 total, 1 pending, 3 done" {
		t.Fatalf("unexpected stats line %q", got)
	}
}

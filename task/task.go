package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Task is a single to-do item.
type Task struct {
	// ID is unique within the owner's list.
	ID string `json:"id" yaml:"id"`

	// UserID is the id of the owning user.
	UserID string `json:"userId" yaml:"userId"`

	// Text is what needs doing.
	Text string `json:"text" yaml:"text"`

	// Status is pending or done.
	Status Status `json:"status" yaml:"status"`

	// Deadline is when the task is due.
	Deadline time.Time `json:"deadline" yaml:"deadline"`

	// FinishedTime is when the task was last marked done (nil while pending).
	FinishedTime *time.Time `json:"finishedTime,omitempty" yaml:"finishedTime,omitempty"`
}

// Payload is the user-editable part of a task.
type Payload struct {
	Text         string
	Status       Status
	Deadline     time.Time
	FinishedTime *time.Time
}

// Payload returns the editable fields of t.
func (t Task) Payload() Payload {
	return Payload{
		Text:         t.Text,
		Status:       t.Status,
		Deadline:     t.Deadline,
		FinishedTime: cloneTime(t.FinishedTime),
	}
}

// Overdue reports whether the deadline passed while the task is pending.
func (t Task) Overdue(now time.Time) bool {
	return t.Status == StatusPending && t.Deadline.Before(now)
}

// FinishedLate reports whether a done task was finished after its deadline.
func (t Task) FinishedLate() bool {
	return t.Status == StatusDone && t.FinishedTime != nil && t.FinishedTime.After(t.Deadline)
}

// UnmarshalJSON accepts RFC 3339 timestamps as well as the zone-less
// "2006-01-02T15:04:05" form, which is read in local time.
func (t *Task) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID           string `json:"id"`
		UserID       string `json:"userId"`
		Text         string `json:"text"`
		Status       Status `json:"status"`
		Deadline     string `json:"deadline"`
		FinishedTime string `json:"finishedTime"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	status := normalizeStatus(wire.Status)
	if !status.IsValid() {
		return formatInvalidStatusError(wire.Status)
	}
	deadline, err := parseTimestamp(wire.Deadline, time.Local)
	if err != nil {
		return fmt.Errorf("task %s deadline: %w", wire.ID, err)
	}

	var finished *time.Time
	if wire.FinishedTime != "" {
		parsed, err := parseTimestamp(wire.FinishedTime, time.Local)
		if err != nil {
			return fmt.Errorf("task %s finishedTime: %w", wire.ID, err)
		}
		finished = &parsed
	}

	*t = Task{
		ID:           wire.ID,
		UserID:       wire.UserID,
		Text:         wire.Text,
		Status:       status,
		Deadline:     deadline,
		FinishedTime: finished,
	}
	return nil
}

// deadlineLayouts are tried in order; layouts without a zone are read in
// the caller's location.
var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimestamp(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, ErrDeadlineRequired
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range deadlineLayouts {
		if parsed, err := time.ParseInLocation(layout, input, loc); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (use YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339)", ErrInvalidDeadline, input)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := *t
	return &value
}

package task

import (
	"errors"
	"testing"
	"time"
)

func testEditor() (Editor, time.Time) {
	now := time.Date(2025, time.December, 12, 10, 30, 0, 0, time.UTC)
	return Editor{Now: func() time.Time { return now }}, now
}

func TestEditor_NewDraft(t *testing.T) {
	editor, now := testEditor()

	blank := editor.NewDraft(nil)
	if blank.Text != "" || blank.Status != "pending" {
		t.Errorf("unexpected blank draft %+v", blank)
	}
	if blank.Deadline != now.Format(DraftDeadlineLayout) {
		t.Errorf("expected deadline defaulting to now, got %q", blank.Deadline)
	}

	existing := Task{Text: "Ship it", Status: StatusDone, Deadline: time.Date(2025, time.December, 20, 17, 0, 0, 0, time.UTC)}
	draft := editor.NewDraft(&existing)
	if draft.Text != "Ship it" || draft.Status != "done" || draft.Deadline != "2025-12-20T17:00" {
		t.Errorf("unexpected prefilled draft %+v", draft)
	}
}

func TestEditor_SubmitValidation(t *testing.T) {
	editor, _ := testEditor()

	cases := []struct {
		name  string
		draft Draft
		want  error
	}{
		{name: "blank text", draft: Draft{Text: "  \n", Deadline: "2025-12-20"}, want: ErrTextRequired},
		{name: "no deadline", draft: Draft{Text: "x"}, want: ErrDeadlineRequired},
		{name: "bad deadline", draft: Draft{Text: "x", Deadline: "next tuesday"}, want: ErrInvalidDeadline},
		{name: "bad status", draft: Draft{Text: "x", Deadline: "2025-12-20", Status: "blocked"}, want: ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := editor.Submit(tc.draft, nil); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEditor_SubmitDeadlineLayouts(t *testing.T) {
	editor, _ := testEditor()
	want := time.Date(2025, time.December, 20, 17, 5, 0, 0, time.UTC)

	cases := []string{
		"2025-12-20T17:05",
		"2025-12-20 17:05",
		"2025-12-20T17:05:00",
		"2025-12-20T17:05:00Z",
		"2025-12-20T18:05:00+01:00",
	}
	for _, input := range cases {
		p, err := editor.Submit(Draft{Text: "x", Deadline: input}, nil)
		if err != nil {
			t.Errorf("Submit(%q): %v", input, err)
			continue
		}
		if !p.Deadline.Equal(want) {
			t.Errorf("Submit(%q) deadline = %v, want %v", input, p.Deadline, want)
		}
	}

	p, err := editor.Submit(Draft{Text: "x", Deadline: "2025-12-20"}, nil)
	if err != nil {
		t.Fatalf("date only: %v", err)
	}
	if !p.Deadline.Equal(time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date only deadline = %v", p.Deadline)
	}
}

func TestEditor_SubmitCompletionPolicy(t *testing.T) {
	editor, now := testEditor()
	earlier := now.Add(-48 * time.Hour)
	deadline := now.Add(24 * time.Hour)

	doneTask := Task{Text: "x", Status: StatusDone, Deadline: deadline, FinishedTime: &earlier}
	pendingTask := Task{Text: "x", Status: StatusPending, Deadline: deadline}

	cases := []struct {
		name     string
		status   string
		existing *Task
		want     *time.Time
	}{
		{name: "new pending", status: "pending", want: nil},
		{name: "new done", status: "done", want: &now},
		{name: "pending to done", status: "done", existing: &pendingTask, want: &now},
		{name: "done stays done", status: "done", existing: &doneTask, want: &earlier},
		{name: "done to pending", status: "pending", existing: &doneTask, want: nil},
		{name: "status defaults to pending", status: "", existing: &doneTask, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := editor.Submit(Draft{Text: " x ", Status: tc.status, Deadline: "2025-12-13T10:30"}, tc.existing)
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if p.Text != "x" {
				t.Errorf("expected trimmed text, got %q", p.Text)
			}
			switch {
			case tc.want == nil && p.FinishedTime != nil:
				t.Errorf("expected no finished time, got %v", *p.FinishedTime)
			case tc.want != nil && (p.FinishedTime == nil || !p.FinishedTime.Equal(*tc.want)):
				t.Errorf("expected finished time %v, got %v", *tc.want, p.FinishedTime)
			}
		})
	}
}

func TestEditor_SubmitDoesNotAliasExisting(t *testing.T) {
	editor, now := testEditor()
	finished := now.Add(-time.Hour)
	existing := Task{Text: "x", Status: StatusDone, Deadline: now, FinishedTime: &finished}

	p, err := editor.Submit(Draft{Text: "x", Status: "done", Deadline: "2025-12-13"}, &existing)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	*p.FinishedTime = p.FinishedTime.Add(time.Hour)
	if !existing.FinishedTime.Equal(finished) {
		t.Error("payload shares finished time with existing task")
	}
}

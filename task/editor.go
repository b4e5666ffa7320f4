package task

import (
	"strings"
	"time"
)

// DraftDeadlineLayout is how NewDraft formats deadlines for editing.
const DraftDeadlineLayout = "2006-01-02T15:04"

// Draft is unvalidated form input for a task.
type Draft struct {
	Text     string
	Status   string
	Deadline string
}

// Editor turns drafts into payloads.
type Editor struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Location interprets deadlines that carry no zone. Defaults to the
	// location of Now.
	Location *time.Location
}

// NewDraft returns a form prefilled from existing, or a blank pending draft
// due now when existing is nil.
func (e Editor) NewDraft(existing *Task) Draft {
	if existing == nil {
		return Draft{
			Status:   string(StatusPending),
			Deadline: e.now().In(e.location()).Format(DraftDeadlineLayout),
		}
	}
	return Draft{
		Text:     existing.Text,
		Status:   string(existing.Status),
		Deadline: existing.Deadline.In(e.location()).Format(DraftDeadlineLayout),
	}
}

// Submit validates d. When the draft is done it sets the finished time to
// now if existing was not already done, and otherwise keeps existing's
// finished time.
func (e Editor) Submit(d Draft, existing *Task) (Payload, error) {
	text := strings.TrimSpace(d.Text)
	if text == "" {
		return Payload{}, ErrTextRequired
	}

	if strings.TrimSpace(d.Deadline) == "" {
		return Payload{}, ErrDeadlineRequired
	}
	deadline, err := ParseDeadline(d.Deadline, e.location())
	if err != nil {
		return Payload{}, err
	}

	status := StatusPending
	if strings.TrimSpace(d.Status) != "" {
		status, err = ParseStatus(d.Status)
		if err != nil {
			return Payload{}, err
		}
	}

	p := Payload{
		Text:     text,
		Status:   status,
		Deadline: deadline,
	}
	if status == StatusDone {
		if existing != nil && existing.Status == StatusDone && existing.FinishedTime != nil {
			p.FinishedTime = cloneTime(existing.FinishedTime)
		} else {
			now := e.now()
			p.FinishedTime = &now
		}
	}
	return p, nil
}

// ParseDeadline parses a deadline in one of the accepted layouts. Layouts
// without a zone are read in loc.
func ParseDeadline(input string, loc *time.Location) (time.Time, error) {
	return parseTimestamp(input, loc)
}

func (e Editor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Editor) location() *time.Location {
	if e.Location != nil {
		return e.Location
	}
	return e.now().Location()
}

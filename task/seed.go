package task

import "time"

// SeedTasks returns the sample list installed for a user with no saved tasks:
// two pending and two done.
func SeedTasks(userID string, newID func() string, loc *time.Location) []Task {
	if loc == nil {
		loc = time.Local
	}
	at := func(day, hour, minute int) time.Time {
		return time.Date(2025, time.December, day, hour, minute, 0, 0, loc)
	}
	finished := func(day, hour, minute int) *time.Time {
		t := at(day, hour, minute)
		return &t
	}

	return []Task{
		{
			ID:       newID(),
			UserID:   userID,
			Text:     "Finish the Q4 project report and present it to the leadership team",
			Status:   StatusPending,
			Deadline: at(15, 9, 0),
		},
		{
			ID:       newID(),
			UserID:   userID,
			Text:     "Weekly team review of this week's work and planning for next week",
			Status:   StatusPending,
			Deadline: at(13, 14, 0),
		},
		{
			ID:           newID(),
			UserID:       userID,
			Text:         "Code review PR #123 for the new authentication feature",
			Status:       StatusDone,
			Deadline:     at(10, 16, 0),
			FinishedTime: finished(10, 15, 30),
		},
		{
			ID:           newID(),
			UserID:       userID,
			Text:         "Prepare documents and slides for the new-hire training session",
			Status:       StatusDone,
			Deadline:     at(8, 10, 0),
			FinishedTime: finished(8, 9, 45),
		},
	}
}

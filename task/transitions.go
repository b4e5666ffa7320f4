package task

import "time"

// The functions below are the only way the repository changes a list. Each
// returns a fresh slice and leaves its input untouched.

func appendTask(tasks []Task, item Task) []Task {
	next := make([]Task, 0, len(tasks)+1)
	next = append(next, tasks...)
	return append(next, item)
}

func replaceTask(tasks []Task, id string, p Payload) ([]Task, Task, bool) {
	index := indexOf(tasks, id)
	if index < 0 {
		return tasks, Task{}, false
	}
	next := cloneTasks(tasks)
	updated := next[index]
	updated.Text = p.Text
	updated.Status = p.Status
	updated.Deadline = p.Deadline
	updated.FinishedTime = cloneTime(p.FinishedTime)
	next[index] = updated
	return next, updated, true
}

func toggleTask(tasks []Task, id string, now time.Time) ([]Task, Task, bool) {
	index := indexOf(tasks, id)
	if index < 0 {
		return tasks, Task{}, false
	}
	next := cloneTasks(tasks)
	toggled := next[index]
	toggled.Status = toggled.Status.Toggled()
	if toggled.Status == StatusDone {
		toggled.FinishedTime = &now
	} else {
		toggled.FinishedTime = nil
	}
	next[index] = toggled
	return next, toggled, true
}

func removeTask(tasks []Task, id string) ([]Task, bool) {
	index := indexOf(tasks, id)
	if index < 0 {
		return tasks, false
	}
	next := make([]Task, 0, len(tasks)-1)
	next = append(next, tasks[:index]...)
	next = append(next, tasks[index+1:]...)
	return next, true
}

func indexOf(tasks []Task, id string) int {
	for i, item := range tasks {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []Task) []Task {
	next := make([]Task, len(tasks))
	for i, item := range tasks {
		item.FinishedTime = cloneTime(item.FinishedTime)
		next[i] = item
	}
	return next
}

package kv

const (
	// SessionKey holds the JSON user record of the signed-in user.
	SessionKey = "taskmaster_user"

	// UsersKey holds the JSON user directory, keyed by email.
	UsersKey = "taskmaster_users"

	tasksKeyPrefix = "taskmaster_todos_"
)

// TasksKey returns the key holding the task list owned by userID.
func TasksKey(userID string) string {
	return tasksKeyPrefix + userID
}

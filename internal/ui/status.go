package ui

import "github.com/charmbracelet/lipgloss"

var (
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
)

// StatusBadge labels a task status, like "pending" or "done".
func StatusBadge(status string) string {
	switch status {
	case "pending":
		return styled(pendingStyle, "pending")
	case "done":
		return styled(doneStyle, "done")
	default:
		return status
	}
}

// Overdue marks a deadline that passed while its task was pending.
func Overdue(value string) string {
	return styled(overdueStyle, value+" !")
}

// Muted renders secondary text.
func Muted(value string) string {
	return styled(mutedStyle, value)
}

// Header renders a section heading.
func Header(value string) string {
	return styled(headerStyle, value)
}

func styled(style lipgloss.Style, value string) string {
	if !ansiEnabled() {
		return value
	}
	return style.Render(value)
}

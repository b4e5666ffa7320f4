package main

import "github.com/spf13/cobra"

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks", "t"},
	Short:   "Manage the logged-in user's tasks",
}

// task add
var taskAddCmd = &cobra.Command{
	Use:   "add [text]...",
	Short: "Add a task",
	Long: `Add a task.

The deadline defaults to now. Deadlines are read in local time and accept
forms like 2025-12-15, "2025-12-15 09:00", 2025-12-15T09:00 and RFC 3339.

With no text, opens $EDITOR on a TOML form when running interactively.
Use --edit to force the editor, or --no-edit to skip it.`,
	Aliases: []string{"create"},
	Args:    cobra.ArbitraryArgs,
	RunE:    runTaskAdd,
}

var (
	taskAddDeadline string
	taskAddStatus   string
	taskAddJSON     bool
	taskAddEdit     bool
	taskAddNoEdit   bool
)

// task edit
var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Edit a task.

Without --text, --deadline or --status, opens $EDITOR on a TOML form when
running interactively. Use --edit to force the editor.`,
	Aliases: []string{"update"},
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskEdit,
}

var (
	taskEditText     string
	taskEditDeadline string
	taskEditStatus   string
	taskEditJSON     bool
	taskEditEdit     bool
	taskEditNoEdit   bool
)

// task toggle
var taskToggleCmd = &cobra.Command{
	Use:   "toggle <id>...",
	Short: "Flip tasks between pending and done",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskToggle,
}

// task rm
var taskRemoveCmd = &cobra.Command{
	Use:     "rm <id>...",
	Short:   "Delete tasks",
	Aliases: []string{"delete", "remove"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runTaskRemove,
}

// task list
var taskListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tasks",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runTaskList,
}

var (
	taskListSearch string
	taskListStatus string
	taskListSort   string
	taskListJSON   bool
	taskListYAML   bool
)

// task show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show task details",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskShow,
}

var (
	taskShowJSON bool
	taskShowYAML bool
)

// task stats
var taskStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count tasks by status",
	Args:  cobra.NoArgs,
	RunE:  runTaskStats,
}

var (
	taskStatsJSON bool
	taskStatsYAML bool
)

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskEditCmd, taskToggleCmd, taskRemoveCmd, taskListCmd, taskShowCmd, taskStatsCmd)

	taskAddCmd.Flags().StringVarP(&taskAddDeadline, "deadline", "d", "", "Deadline (default now)")
	taskAddCmd.Flags().StringVar(&taskAddStatus, "status", "", "Status (pending, done)")
	taskAddCmd.Flags().BoolVar(&taskAddJSON, "json", false, "Output as JSON")
	taskAddCmd.Flags().BoolVarP(&taskAddEdit, "edit", "e", false, "Open $EDITOR")
	taskAddCmd.Flags().BoolVar(&taskAddNoEdit, "no-edit", false, "Never open $EDITOR")

	taskEditCmd.Flags().StringVar(&taskEditText, "text", "", "New text")
	taskEditCmd.Flags().StringVarP(&taskEditDeadline, "deadline", "d", "", "New deadline")
	taskEditCmd.Flags().StringVar(&taskEditStatus, "status", "", "New status (pending, done)")
	taskEditCmd.Flags().BoolVar(&taskEditJSON, "json", false, "Output as JSON")
	taskEditCmd.Flags().BoolVarP(&taskEditEdit, "edit", "e", false, "Open $EDITOR")
	taskEditCmd.Flags().BoolVar(&taskEditNoEdit, "no-edit", false, "Never open $EDITOR")

	taskListCmd.Flags().StringVarP(&taskListSearch, "search", "s", "", "Only tasks whose text contains this, ignoring case")
	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status (all, pending, done)")
	taskListCmd.Flags().StringVar(&taskListSort, "sort", "", "Sort by deadline or status")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")
	taskListCmd.Flags().BoolVar(&taskListYAML, "yaml", false, "Output as YAML")

	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")
	taskShowCmd.Flags().BoolVar(&taskShowYAML, "yaml", false, "Output as YAML")

	taskStatsCmd.Flags().BoolVar(&taskStatsJSON, "json", false, "Output as JSON")
	taskStatsCmd.Flags().BoolVar(&taskStatsYAML, "yaml", false, "Output as YAML")

	addFlagAliases(taskEditFlagAliases, taskAddCmd, taskEditCmd)
	addFlagAliases(taskListFlagAliases, taskListCmd)
}

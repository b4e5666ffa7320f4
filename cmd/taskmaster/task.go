package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/taskmaster/internal/editor"
	"github.com/amonks/taskmaster/internal/ui"
	"github.com/amonks/taskmaster/task"
	"github.com/spf13/cobra"
)

func runTaskAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.loadTasks(ctx); err != nil {
		return err
	}

	draft := a.drafts.NewDraft(nil)
	draft.Text = strings.Join(args, " ")
	if cmd.Flags().Changed("deadline") {
		draft.Deadline = taskAddDeadline
	}
	if cmd.Flags().Changed("status") {
		draft.Status = taskAddStatus
	}

	useEditor, err := shouldUseEditor(taskAddEdit, taskAddNoEdit, len(args) == 0)
	if err != nil {
		return err
	}
	if useEditor {
		draft, err = editor.EditTask(ctx, draft, "")
		if err != nil {
			return err
		}
	}

	payload, err := a.drafts.Submit(draft, nil)
	if err != nil {
		return err
	}
	created, err := a.tasks.Create(ctx, payload)
	if err != nil {
		return err
	}

	if taskAddJSON {
		return encodeJSONToStdout(created)
	}
	fmt.Printf("Created task %s: %s\n", highlightTaskID(a.tasks.IDIndex(), created.ID), created.Text)
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	hasFieldFlags := hasChangedFlags(cmd, "text", "deadline", "status")
	useEditor, err := shouldUseEditor(taskEditEdit, taskEditNoEdit, !hasFieldFlags)
	if err != nil {
		return err
	}
	if !useEditor && !hasFieldFlags {
		return fmt.Errorf("nothing to change (use --text, --deadline, --status or --edit)")
	}

	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.loadTasks(ctx); err != nil {
		return err
	}
	id, err := a.tasks.Resolve(args[0])
	if err != nil {
		return err
	}
	existing, ok := a.tasks.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
	}

	draft := a.drafts.NewDraft(&existing)
	if cmd.Flags().Changed("text") {
		draft.Text = taskEditText
	}
	if cmd.Flags().Changed("deadline") {
		draft.Deadline = taskEditDeadline
	}
	if cmd.Flags().Changed("status") {
		draft.Status = taskEditStatus
	}
	if useEditor {
		draft, err = editor.EditTask(ctx, draft, existing.ID)
		if err != nil {
			return err
		}
	}

	payload, err := a.drafts.Submit(draft, &existing)
	if err != nil {
		return err
	}
	updated, err := a.tasks.Update(ctx, id, payload)
	if err != nil {
		return err
	}

	if taskEditJSON {
		return encodeJSONToStdout(updated)
	}
	fmt.Printf("Updated task %s: %s\n", highlightTaskID(a.tasks.IDIndex(), updated.ID), updated.Text)
	return nil
}

func runTaskToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.loadTasks(ctx); err != nil {
		return err
	}
	ids, err := a.resolveTaskIDs(args)
	if err != nil {
		return err
	}

	index := a.tasks.IDIndex()
	for _, id := range ids {
		toggled, err := a.tasks.ToggleStatus(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("Marked %s %s: %s\n", highlightTaskID(index, toggled.ID), toggled.Status, toggled.Text)
	}
	return nil
}

func runTaskRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.loadTasks(ctx); err != nil {
		return err
	}

	for _, prefix := range args {
		id, err := a.tasks.Resolve(prefix)
		if errors.Is(err, task.ErrTaskNotFound) {
			fmt.Printf("No task matches %s.\n", prefix)
			continue
		}
		if err != nil {
			return err
		}
		removed, err := a.tasks.Delete(ctx, id)
		if err != nil {
			return err
		}
		if removed {
			fmt.Printf("Deleted task %s\n", id)
		}
	}
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	tasks, err := a.loadTasks(ctx)
	if err != nil {
		return err
	}

	view, err := task.Project(tasks, task.Query{
		Search: taskListSearch,
		Status: task.Filter(taskListStatus),
		Sort:   task.SortKey(taskListSort),
	})
	if err != nil {
		return err
	}

	if ok, err := encodeStructured(nonNilTasks(view.Tasks), taskListJSON, taskListYAML); ok {
		return err
	}

	if view.Empty() {
		fmt.Println(view.EmptyMessage() + ".")
		fmt.Println(ui.Muted(view.EmptyHint()))
		return nil
	}

	fmt.Print(formatTaskTable(view.Tasks, a.tasks.IDIndex().PrefixLengths(), ui.HighlightID, time.Now()))
	fmt.Println(formatStatsLine(view.Stats))
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.loadTasks(ctx); err != nil {
		return err
	}
	ids, err := a.resolveTaskIDs(args)
	if err != nil {
		return err
	}

	items := make([]task.Task, 0, len(ids))
	for _, id := range ids {
		item, ok := a.tasks.Get(id)
		if !ok {
			return fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
		}
		items = append(items, item)
	}

	if ok, err := encodeStructured(items, taskShowJSON, taskShowYAML); ok {
		return err
	}

	lengths := a.tasks.IDIndex().PrefixLengths()
	now := time.Now()
	for i, item := range items {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(formatTaskDetail(item, lengths, ui.HighlightID, now))
	}
	return nil
}

func runTaskStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	tasks, err := a.loadTasks(ctx)
	if err != nil {
		return err
	}

	stats := task.ComputeStats(tasks)
	if ok, err := encodeStructured(stats, taskStatsJSON, taskStatsYAML); ok {
		return err
	}

	fmt.Printf("Total:   %d\n", stats.Total)
	fmt.Printf("Pending: %d\n", stats.Pending)
	fmt.Printf("Done:    %d\n", stats.Done)
	return nil
}

// shouldUseEditor decides whether to open $EDITOR. Without either flag the
// editor opens only when the command line is incomplete and stdin is a
// terminal.
func shouldUseEditor(edit, noEdit, incomplete bool) (bool, error) {
	if edit && noEdit {
		return false, fmt.Errorf("--edit and --no-edit are mutually exclusive")
	}
	if edit {
		return true, nil
	}
	if noEdit {
		return false, nil
	}
	return incomplete && editor.IsInteractive(), nil
}

func highlightTaskID(index task.IDIndex, id string) string {
	return ui.HighlightID(id, ui.PrefixLength(index.PrefixLengths(), id))
}

func nonNilTasks(tasks []task.Task) []task.Task {
	if tasks == nil {
		return []task.Task{}
	}
	return tasks
}

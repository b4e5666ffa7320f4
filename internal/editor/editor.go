// Package editor edits task drafts in $EDITOR.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// IsInteractive returns true if stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Edit opens path in $EDITOR (or vi) and waits for it to exit. EDITOR may
// carry arguments, as in "code --wait".
func Edit(ctx context.Context, path string) error {
	command := strings.Fields(os.Getenv("EDITOR"))
	if len(command) == 0 {
		command = []string{"vi"}
	}

	cmd := exec.CommandContext(ctx, command[0], append(command[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}

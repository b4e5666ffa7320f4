// Package main implements the taskmaster CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "taskmaster",
	Short:        "Taskmaster - a personal task tracker",
	SilenceUsage: true,
}

var (
	rootConfigPath string
	rootStateDir   string
	rootBackend    string
	rootLogLevel   string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfigPath, "config", "", "Config file merged over ~/.config/taskmaster/config.toml")
	flags.StringVar(&rootStateDir, "state-dir", "", "State directory (default ~/.local/state/taskmaster)")
	flags.StringVar(&rootBackend, "backend", "", "Storage backend (file, sqlite, redis, memory)")
	flags.StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

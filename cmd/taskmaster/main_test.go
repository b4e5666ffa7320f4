package main

import "testing"

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "taskmaster" {
		t.Fatalf("expected root command name taskmaster, got %q", rootCmd.Use)
	}
}

func TestVersionString(t *testing.T) {
	if got := versionString(); got != "taskmaster dev (unknown)" {
		t.Fatalf("unexpected version %q", got)
	}
}

package listflags

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestAddSectionFlags(t *testing.T) {
	var pending, completed bool
	cmd := &cobra.Command{Use: "list", RunE: func(*cobra.Command, []string) error { return nil }}
	AddSectionFlags(cmd, &pending, &completed)

	cmd.SetArgs([]string{"--pending"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !pending || completed {
		t.Fatalf("expected only pending set, got pending=%v completed=%v", pending, completed)
	}
}

func TestAddSectionFlagsMutuallyExclusive(t *testing.T) {
	var pending, completed bool
	cmd := &cobra.Command{Use: "list", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	AddSectionFlags(cmd, &pending, &completed)

	cmd.SetArgs([]string{"--pending", "--completed"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when both flags are set")
	}
}

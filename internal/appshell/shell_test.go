package appshell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newCmd(code *int, set int) *cobra.Command {
	return &cobra.Command{
		Use:           "tool",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			*code = set
			return nil
		},
	}
}

func TestExecutePassesRunCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := 0
	if got := Execute(context.Background(), newCmd(&code, 3), nil, &out, &errBuf, &code); got != 3 {
		t.Fatalf("exit = %d, want 3", got)
	}
}

func TestExecuteUnknownFlagIsUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := 0
	got := Execute(context.Background(), newCmd(&code, 0), []string{"--nope"}, &out, &errBuf, &code)
	if got != 2 {
		t.Fatalf("exit = %d, want 2", got)
	}
	if !strings.Contains(errBuf.String(), "--help") {
		t.Fatalf("stderr = %q", errBuf.String())
	}
}

func TestExecuteHelp(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := 0
	if got := Execute(context.Background(), newCmd(&code, 9), []string{"-h"}, &out, &errBuf, &code); got != 0 {
		t.Fatalf("exit = %d, want 0", got)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("help not printed: %q", out.String())
	}
}

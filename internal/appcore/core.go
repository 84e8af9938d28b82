// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"mitocheck/internal/cmdutil"
	"mitocheck/internal/output"
	"mitocheck/internal/writers"
)

// Exit codes shared by all tools.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

type Options struct {
	OutFile string // "" or "-" for stdout
	Output  string // text | json | jsonl
	Header  bool
	BufSize int
}

// ProduceFunc pushes result rows through send until done or ctx ends.
type ProduceFunc[T any] func(ctx context.Context, send func(T) error) error

// Threads resolves the 0 = all CPUs convention.
func Threads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// Run opens the destination, starts the writer for table t, drives produce
// and maps the outcome to an exit code. Broken pipes count as success.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	t output.Table[T],
	produce ProduceFunc[T],
) int {
	dst, closeDst, err := writers.OpenOutput(o.OutFile, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}
	outw := bufio.NewWriter(dst)

	inCh, writeErr := writers.Start(outw, o.Output, o.Header, t, o.BufSize)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	perr := produce(ctx, cmdutil.ChanSender[T](ctx, inCh))

	close(inCh)

	werr := <-writeErr
	if werr == nil {
		werr = outw.Flush()
	}
	if cerr := closeDst(); werr == nil {
		werr = cerr
	}
	if writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, "error:", werr)
		return ExitRuntime
	}

	return ExitCode(stderr, perr)
}

// ExitCode reports err on stderr and maps it to an exit code.
func ExitCode(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	default:
		fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}
}

// internal/writers/writer.go
package writers

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"syscall"

	"mitocheck/internal/output"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a writer goroutine for rows of type T in the given format
// (text | json | jsonl). The error channel yields exactly one value once the
// input channel is closed and everything has been written.
func Start[T any](out io.Writer, format string, header bool, t output.Table[T], bufSize int) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []T
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteJSON(out, buf, t)

		case "jsonl":
			err = streamJSONL(out, in, t)

		case "text":
			err = output.StreamText(out, in, t, header)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Keep the producer from blocking after a failed write.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

func streamJSONL[T any](out io.Writer, in <-chan T, t output.Table[T]) error {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for r := range in {
		if err := enc.Encode(t.API(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

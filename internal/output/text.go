// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// StreamText writes one TSV line per row as rows arrive.
func StreamText[T any](w io.Writer, in <-chan T, t Table[T], header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, t.Header); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, t.TSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes a slice of rows as TSV.
func WriteText[T any](w io.Writer, list []T, t Table[T], header bool) error {
	ch := make(chan T, len(list))
	for _, r := range list {
		ch <- r
	}
	close(ch)
	return StreamText(w, ch, t, header)
}

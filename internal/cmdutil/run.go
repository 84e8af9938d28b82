package cmdutil

import (
	"context"

	"mitocheck-core/fasta"
)

// RunStream visits records in order and streams every produced item via send.
// It returns the number of items sent and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	recs []fasta.Record,
	visit func(fasta.Record) ([]T, error),
	send func(T) error,
) (int, error) {
	total := 0
	for _, r := range recs {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		outs, err := visit(r)
		if err != nil {
			return total, err
		}
		for _, o := range outs {
			if err := send(o); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

// ChanSender returns a send func that blocks on ch until ctx is done.
func ChanSender[T any](ctx context.Context, ch chan<- T) func(T) error {
	return func(x T) error {
		select {
		case ch <- x:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// core/fasta/reader.go
package fasta

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

func init() {
	// Ambiguity codes and gaps are passed through untouched.
	seq.ValidateSeq = false
}

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// Stream parses path (plain, gzip-compressed or "-" for stdin) and calls
// emit once per record in file order. Returning an error from emit stops early.
func Stream(ctx context.Context, path string, emit func(Record) error) error {
	r, err := fastx.NewDefaultReader(path)
	if errors.Is(err, xopen.ErrNoContent) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, path)
	}
	defer r.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, path)
		}
		// fastx may reuse its buffers between reads.
		out := Record{
			ID:  string(rec.ID),
			Seq: append([]byte(nil), rec.Seq.Seq...),
		}
		if err := emit(out); err != nil {
			return err
		}
	}
}

// ReadFile loads every record of path into memory.
func ReadFile(ctx context.Context, path string) ([]Record, error) {
	var recs []Record
	err := Stream(ctx, path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	return recs, err
}

// ReadAll concatenates the records of all paths, preserving order.
func ReadAll(ctx context.Context, paths []string) ([]Record, error) {
	var all []Record
	for _, p := range paths {
		recs, err := ReadFile(ctx, p)
		if err != nil {
			return nil, err
		}
		all = append(all, recs...)
	}
	return all, nil
}

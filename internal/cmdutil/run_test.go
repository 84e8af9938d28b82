package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"mitocheck-core/fasta"
)

func TestRunStreamOrderAndCount(t *testing.T) {
	recs := []fasta.Record{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	var got []string
	n, err := RunStream(context.Background(), recs,
		func(r fasta.Record) ([]string, error) {
			if r.ID == "b" {
				return nil, nil
			}
			return []string{r.ID + "1", r.ID + "2"}, nil
		},
		func(s string) error { got = append(got, s); return nil },
	)
	if err != nil {
		t.Fatalf("RunStream: %v", err)
	}
	if n != 4 || len(got) != 4 || got[0] != "a1" || got[3] != "c2" {
		t.Fatalf("n=%d got=%v", n, got)
	}
}

func TestRunStreamStopsOnSendError(t *testing.T) {
	boom := errors.New("boom")
	n, err := RunStream(context.Background(), []fasta.Record{{ID: "a"}, {ID: "b"}},
		func(r fasta.Record) ([]int, error) { return []int{1}, nil },
		func(int) error { return boom },
	)
	if !errors.Is(err, boom) || n != 0 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestRunStreamCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunStream(ctx, []fasta.Record{{ID: "a"}},
		func(fasta.Record) ([]int, error) { return []int{1}, nil },
		func(int) error { return nil },
	)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestChanSenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	send := ChanSender[int](ctx, make(chan int))
	if err := send(1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestWarnfInfof(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, true, "hidden %d", 1)
	Infof(&buf, false, "hidden %d", 2)
	if buf.Len() != 0 {
		t.Fatalf("expected silence, got %q", buf.String())
	}
	Warnf(&buf, false, "k=%d", 33)
	Infof(&buf, true, "done")
	if got := buf.String(); got != "WARN: k=33\nINFO: done\n" {
		t.Fatalf("got %q", got)
	}
}

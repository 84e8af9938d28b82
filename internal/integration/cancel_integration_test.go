package integration

import (
	"context"
	"io"
	"testing"

	"mitocheck/internal/annotateapp"
	"mitocheck/internal/countapp"
)

func TestCanceledRunsExit130(t *testing.T) {
	fa := write(t, "g.fa", ">s1\nACGTACGTACGT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := countapp.RunContext(ctx, []string{fa}, io.Discard, io.Discard); code != 130 {
		t.Fatalf("count-kmers: expected exit 130 on cancel, got %d", code)
	}
	if code := annotateapp.RunContext(ctx, []string{fa}, io.Discard, io.Discard); code != 130 {
		t.Fatalf("annotate-repetitive-kmers: expected exit 130 on cancel, got %d", code)
	}
}

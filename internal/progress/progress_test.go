package progress

import (
	"bytes"
	"testing"
)

func TestDisabledIsNoop(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, false, 10, "records: ")
	b.Increment()
	b.Wait()
	if buf.Len() != 0 {
		t.Fatalf("disabled bar wrote %q", buf.String())
	}
	New(&buf, true, 0, "records: ").Wait()
}

func TestCompletesAndAborts(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, true, 3, "records: ")
	for i := 0; i < 3; i++ {
		b.Increment()
	}
	b.Wait()

	// Must not hang when the run stops early.
	b = New(&bytes.Buffer{}, true, 5, "records: ")
	b.Increment()
	b.Wait()
}

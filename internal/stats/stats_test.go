package stats

import (
	"math"
	"testing"

	"mitocheck-core/kmer"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]kmer.Bin{{Occ: 1, NumKmers: 1}, {Occ: 5, NumKmers: 3}})
	if s.Distinct != 4 || s.Total != 16 || s.MaxOcc != 5 {
		t.Fatalf("counts: %+v", s)
	}
	if math.Abs(s.Mean-4) > 1e-9 {
		t.Fatalf("mean = %v, want 4", s.Mean)
	}
	// Weighted sample variance: (9 + 3*1) / 3 = 4.
	if math.Abs(s.StdDev-2) > 1e-9 {
		t.Fatalf("sd = %v, want 2", s.StdDev)
	}
	if s.Median != 5 {
		t.Fatalf("median = %v, want 5", s.Median)
	}
}

func TestSummarizeSingleKmer(t *testing.T) {
	s := Summarize([]kmer.Bin{{Occ: 7, NumKmers: 1}})
	if s.StdDev != 0 || s.Mean != 7 || s.Median != 7 {
		t.Fatalf("%+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Fatalf("%+v", s)
	}
}

func TestSummaryString(t *testing.T) {
	s := Summary{Distinct: 12345, Total: 1000000, Mean: 1.5, StdDev: 0.25, Median: 1, MaxOcc: 3}
	want := "distinct=12,345 windows=1,000,000 mean=1.50 sd=0.25 median=1 max=3"
	if got := s.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

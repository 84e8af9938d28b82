// Package stats summarizes k-mer occurrence histograms.
package stats

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"

	"mitocheck-core/kmer"
)

// Summary describes the distribution of occurrence counts over distinct k-mers.
type Summary struct {
	Distinct uint64  // distinct canonical k-mers
	Total    uint64  // windows counted
	Mean     float64 // mean occurrences per distinct k-mer
	StdDev   float64
	Median   float64
	MaxOcc   uint32
}

// Summarize expects bins sorted by Occ, as kmer.Histogram returns them.
func Summarize(bins []kmer.Bin) Summary {
	var s Summary
	if len(bins) == 0 {
		return s
	}
	x := make([]float64, len(bins))
	w := make([]float64, len(bins))
	for i, b := range bins {
		x[i], w[i] = float64(b.Occ), float64(b.NumKmers)
		s.Distinct += uint64(b.NumKmers)
		s.Total += uint64(b.Occ) * uint64(b.NumKmers)
		if b.Occ > s.MaxOcc {
			s.MaxOcc = b.Occ
		}
	}
	s.Mean, s.StdDev = stat.MeanStdDev(x, w)
	if s.Distinct < 2 {
		s.StdDev = 0
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, x, w)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("distinct=%s windows=%s mean=%.2f sd=%.2f median=%g max=%s",
		humanize.Comma(int64(s.Distinct)), humanize.Comma(int64(s.Total)),
		s.Mean, s.StdDev, s.Median, humanize.Comma(int64(s.MaxOcc)))
}

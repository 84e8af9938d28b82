// Package repeats finds runs of windows whose k-mer is over-represented
// in a genome set and reports them as intervals.
package repeats

import "mitocheck-core/kmer"

// Interval is a merged run of repetitive windows on one sequence.
// Start is the first window's offset; End is exclusive (last window + k).
type Interval struct {
	SeqID string
	Start int
	End   int
	Count uint32 // truncated mean count over the run's windows
}

// Subseq returns the bases the interval covers.
func (iv Interval) Subseq(seq []byte) []byte { return seq[iv.Start:iv.End] }

// Detect slides k-length windows over seq and merges consecutive windows
// found in repetitive into intervals, in sequence order.
func Detect(id string, seq []byte, k int, repetitive kmer.Counts) []Interval {
	if k <= 0 || len(seq) < k {
		return nil
	}
	n := len(seq) - k + 1
	hits := make([]bool, n)
	counts := make([]uint32, n)
	for i := 0; i < n; i++ {
		c, ok := repetitive[kmer.Index(seq[i:i+k])]
		hits[i], counts[i] = ok, c
	}
	return MergeHits(id, hits, counts, k)
}

// MergeHits collapses runs of true in hits into intervals. counts[i] is the
// count of window i and is only read where hits[i] is set.
func MergeHits(id string, hits []bool, counts []uint32, k int) []Interval {
	var (
		out        []Interval
		open       bool
		start, end int
		total      uint64
	)
	flush := func() {
		if !open {
			return
		}
		out = append(out, Interval{
			SeqID: id,
			Start: start,
			End:   end + k,
			Count: uint32(total / uint64(end-start+1)),
		})
		open = false
	}
	for i, hit := range hits {
		if !hit {
			continue
		}
		if open && end+1 == i {
			end = i
			total += uint64(counts[i])
			continue
		}
		flush()
		open, start, end, total = true, i, i, uint64(counts[i])
	}
	flush()
	return out
}

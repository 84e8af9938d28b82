// core/kmer/count.go
package kmer

import (
	"math"
	"sort"

	"github.com/twotwotwo/sorts/sortutil"

	"mitocheck-core/fasta"
)

// Counts maps a canonical index to its number of occurrences.
type Counts map[uint64]uint32

// Count tallies every k-length window of every record into one table.
// Records shorter than k contribute nothing.
func Count(recs []fasta.Record, k int) (Counts, error) {
	if err := ValidateK(k); err != nil {
		return nil, err
	}
	counts := make(Counts)
	for _, r := range recs {
		CountInto(counts, r.Seq, k)
	}
	return counts, nil
}

// CountInto adds the windows of seq to dst. k must already be validated.
func CountInto(dst Counts, seq []byte, k int) {
	for i := 0; i+k <= len(seq); i++ {
		idx := Index(seq[i : i+k])
		if c := dst[idx]; c < math.MaxUint32 {
			dst[idx] = c + 1
		}
	}
}

// Merge adds src into dst key by key, saturating at MaxUint32.
func Merge(dst, src Counts) {
	for idx, c := range src {
		dst[idx] = satAdd(dst[idx], c)
	}
}

// Retain returns the entries of c whose count is at least threshold.
func Retain(c Counts, threshold uint32) Counts {
	out := make(Counts)
	for idx, n := range c {
		if n >= threshold {
			out[idx] = n
		}
	}
	return out
}

// Bin is one row of an occurrence histogram: NumKmers distinct k-mers
// occur exactly Occ times.
type Bin struct {
	Occ      uint32
	NumKmers uint32
}

// Histogram folds a count table into occurrence bins, ascending by Occ.
func Histogram(c Counts) []Bin {
	freq := make(map[uint32]uint32)
	for _, n := range c {
		freq[n] = satAdd(freq[n], 1)
	}
	bins := make([]Bin, 0, len(freq))
	for occ, num := range freq {
		bins = append(bins, Bin{Occ: occ, NumKmers: num})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Occ < bins[j].Occ })
	return bins
}

// SortedIndexes returns the keys of c in ascending order.
func SortedIndexes(c Counts) []uint64 {
	keys := make([]uint64, 0, len(c))
	for idx := range c {
		keys = append(keys, idx)
	}
	sortutil.Uint64s(keys)
	return keys
}

func satAdd(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxUint32
}

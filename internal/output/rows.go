// internal/output/rows.go
package output

import (
	"fmt"

	"mitocheck-core/kmer"
	"mitocheck-core/repeats"

	"mitocheck/pkg/api"
)

// HistogramRow is one histogram bin tagged with its k.
type HistogramRow struct {
	K int
	kmer.Bin
}

// KmerRow is one entry of a dumped count table.
type KmerRow struct {
	K     int
	Index uint64
	Count uint32
}

// RepeatRow is a repetitive region plus the bases it covers.
type RepeatRow struct {
	repeats.Interval
	Seq string
}

// NewRepeatRow slices the covered bases out of seq.
func NewRepeatRow(iv repeats.Interval, seq []byte) RepeatRow {
	return RepeatRow{Interval: iv, Seq: string(iv.Subseq(seq))}
}

func FormatHistogramTSV(r HistogramRow) string {
	return fmt.Sprintf("%d\t%d\t%d", r.K, r.Occ, r.NumKmers)
}

func FormatKmerTSV(r KmerRow) string {
	return fmt.Sprintf("%d\t%d\t%s\t%d", r.K, r.Index, kmer.Decode(r.Index, r.K), r.Count)
}

func FormatRepeatTSV(r RepeatRow) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%s", r.SeqID, r.Start, r.End, r.Count, r.Seq)
}

// ToAPIHistogram converts a row to the stable wire schema (v1).
func ToAPIHistogram(r HistogramRow) api.HistogramBinV1 {
	return api.HistogramBinV1{K: r.K, OccInGenome: r.Occ, NumOfKmer: r.NumKmers}
}

func ToAPIKmer(r KmerRow) api.KmerCountV1 {
	return api.KmerCountV1{K: r.K, Index: r.Index, Kmer: string(kmer.Decode(r.Index, r.K)), Count: r.Count}
}

func ToAPIRepeat(r RepeatRow) api.RepeatV1 {
	return api.RepeatV1{ID: r.SeqID, Start: r.Start, End: r.End, Count: r.Count, Seq: r.Seq}
}

// Table bundles the presentation of one row type.
type Table[T any] struct {
	Header string
	TSV    func(T) string
	API    func(T) any
}

var (
	HistogramTable = Table[HistogramRow]{
		Header: HistogramHeader,
		TSV:    FormatHistogramTSV,
		API:    func(r HistogramRow) any { return ToAPIHistogram(r) },
	}
	KmerTable = Table[KmerRow]{
		Header: KmerHeader,
		TSV:    FormatKmerTSV,
		API:    func(r KmerRow) any { return ToAPIKmer(r) },
	}
	RepeatTable = Table[RepeatRow]{
		Header: RepeatHeader,
		TSV:    FormatRepeatTSV,
		API:    func(r RepeatRow) any { return ToAPIRepeat(r) },
	}
)

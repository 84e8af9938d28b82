// pkg/api/kmers_v1.go
package api

// HistogramBinV1 is the stable JSON/JSONL schema for one occurrence bin.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HistogramBinV1 struct {
	K           int    `json:"k"`
	OccInGenome uint32 `json:"occ_in_genome"`
	NumOfKmer   uint32 `json:"num_of_kmer"`
}

// KmerCountV1 is the stable schema for one entry of a dumped count table.
type KmerCountV1 struct {
	K     int    `json:"k"`
	Index uint64 `json:"index"`
	Kmer  string `json:"kmer"`
	Count uint32 `json:"count"`
}

// RepeatV1 is the stable schema for a repetitive region.
// End is exclusive.
type RepeatV1 struct {
	ID    string `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Count uint32 `json:"count"`
	Seq   string `json:"seq"`
}

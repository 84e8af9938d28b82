package output

// TSV header rows. Keep these as the single source of truth; all writers use them.
const (
	HistogramHeader = "K\tOccInGenome\tNumOfKmer"
	KmerHeader      = "K\tIndex\tKmer\tCount"
	RepeatHeader    = "ID\tStart\tEnd\tCount\tSeq"
)

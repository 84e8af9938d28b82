// internal/cli/count.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mitocheck/internal/clibase"
	"mitocheck/internal/config"

	"mitocheck-core/kmer"
)

// CountOptions holds count-kmers flags.
type CountOptions struct {
	clibase.Common

	MinK int
	MaxK int
	Dump bool   // per-k-mer table instead of the histogram
	Plot string // histogram image path (.svg, .png, .pdf)
}

// RegisterCount wires count-kmers flags onto fs.
func RegisterCount(fs *pflag.FlagSet, o *CountOptions) *bool {
	noHeader := clibase.Register(fs, &o.Common)
	fs.IntVarP(&o.MinK, "min-k-mer", "m", config.DefaultMinK, "smallest k to count")
	fs.IntVarP(&o.MaxK, "max-k-mer", "M", config.DefaultMaxK, "largest k to count")
	fs.BoolVar(&o.Dump, "dump", false, "emit every canonical k-mer with its count instead of the histogram")
	fs.StringVar(&o.Plot, "plot", "", "also render the histogram to this file (.svg, .png or .pdf)")
	return noHeader
}

// FinishCount applies config defaults and validates o.
func FinishCount(fs *pflag.FlagSet, o *CountOptions, noHeader *bool, posArgs []string) error {
	cfg, err := clibase.AfterParse(fs, &o.Common, noHeader, posArgs)
	if err != nil {
		return err
	}
	if !fs.Changed("min-k-mer") && cfg.Count.MinK != 0 {
		o.MinK = cfg.Count.MinK
	}
	if !fs.Changed("max-k-mer") && cfg.Count.MaxK != 0 {
		o.MaxK = cfg.Count.MaxK
	}
	if err := kmer.ValidateK(o.MinK); err != nil {
		return fmt.Errorf("--min-k-mer: %w", err)
	}
	if err := kmer.ValidateK(o.MaxK); err != nil {
		return fmt.Errorf("--max-k-mer: %w", err)
	}
	if o.MinK > o.MaxK {
		return fmt.Errorf("--min-k-mer (%d) exceeds --max-k-mer (%d)", o.MinK, o.MaxK)
	}
	return nil
}

// ParseCountArgs registers, parses and validates argv on fs.
func ParseCountArgs(fs *pflag.FlagSet, argv []string) (CountOptions, error) {
	var o CountOptions
	noHeader := RegisterCount(fs, &o)
	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	return o, FinishCount(fs, &o, noHeader, fs.Args())
}

// NewCountCommand builds the count-kmers command; run receives validated options.
func NewCountCommand(run func(*cobra.Command, CountOptions) error) *cobra.Command {
	var o CountOptions
	var noHeader *bool
	cmd := newCommand(
		"count-kmers [flags] [genomes.fa ...]",
		"Dump canonical k-mer occurrence histograms in TSV",
		`Dump canonical k-mer occurrence histograms.

For every k in [--min-k-mer, --max-k-mer] all windows of all genomes are
counted in one table (forward and reverse strands merged), then folded into
rows of K, OccInGenome (occurrences of a k-mer) and NumOfKmer (distinct
k-mers with that many occurrences).`,
		`  count-kmers -g genome.fa
  count-kmers -m 13 -M 13 --dump genome.fa.gz > 13mers.tsv
  count-kmers -m 10 -M 16 --plot hist.svg -t 8 contigs/*.fa`,
		func(cmd *cobra.Command, args []string) error {
			if err := FinishCount(cmd.Flags(), &o, noHeader, args); err != nil {
				return err
			}
			return run(cmd, o)
		},
	)
	noHeader = RegisterCount(cmd.Flags(), &o)
	return cmd
}

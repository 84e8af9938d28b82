// internal/cli/annotate.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mitocheck/internal/clibase"
	"mitocheck/internal/config"

	"mitocheck-core/kmer"
)

// AnnotateOptions holds annotate-repetitive-kmers flags.
type AnnotateOptions struct {
	clibase.Common

	K         int
	Threshold uint32
}

// RegisterAnnotate wires annotate-repetitive-kmers flags onto fs.
func RegisterAnnotate(fs *pflag.FlagSet, o *AnnotateOptions) *bool {
	noHeader := clibase.Register(fs, &o.Common)
	fs.IntVarP(&o.K, "kmer", "k", config.DefaultK, "k-mer length")
	fs.Uint32VarP(&o.Threshold, "threshold", "T", config.DefaultThreshold, "minimum occurrences for a k-mer to count as repetitive (inclusive)")
	return noHeader
}

// FinishAnnotate applies config defaults and validates o.
func FinishAnnotate(fs *pflag.FlagSet, o *AnnotateOptions, noHeader *bool, posArgs []string) error {
	cfg, err := clibase.AfterParse(fs, &o.Common, noHeader, posArgs)
	if err != nil {
		return err
	}
	if !fs.Changed("kmer") && cfg.Annotate.K != 0 {
		o.K = cfg.Annotate.K
	}
	if !fs.Changed("threshold") && cfg.Annotate.Threshold != nil {
		o.Threshold = *cfg.Annotate.Threshold
	}
	if err := kmer.ValidateK(o.K); err != nil {
		return fmt.Errorf("--kmer: %w", err)
	}
	return nil
}

// ParseAnnotateArgs registers, parses and validates argv on fs.
func ParseAnnotateArgs(fs *pflag.FlagSet, argv []string) (AnnotateOptions, error) {
	var o AnnotateOptions
	noHeader := RegisterAnnotate(fs, &o)
	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	return o, FinishAnnotate(fs, &o, noHeader, fs.Args())
}

// NewAnnotateCommand builds the annotate-repetitive-kmers command.
func NewAnnotateCommand(run func(*cobra.Command, AnnotateOptions) error) *cobra.Command {
	var o AnnotateOptions
	var noHeader *bool
	cmd := newCommand(
		"annotate-repetitive-kmers [flags] [genomes.fa ...]",
		"Enumerate repetitive k-mer regions of the genomes in TSV",
		`Enumerate repetitive k-mer regions of the genomes.

K-mers are counted over all genomes (strands merged). A k-mer occurring at
least --threshold times is repetitive. Consecutive windows holding
repetitive k-mers are merged into one region per run and reported as
ID, Start, End (0-based, end exclusive), Count (truncated mean count of the
run's windows) and Seq (the covered bases).`,
		`  annotate-repetitive-kmers -g genome.fa
  annotate-repetitive-kmers -k 15 -T 4 -o jsonl genome.fa.gz`,
		func(cmd *cobra.Command, args []string) error {
			if err := FinishAnnotate(cmd.Flags(), &o, noHeader, args); err != nil {
				return err
			}
			return run(cmd, o)
		},
	)
	noHeader = RegisterAnnotate(cmd.Flags(), &o)
	return cmd
}

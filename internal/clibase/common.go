// internal/clibase/common.go
package clibase

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"mitocheck/internal/cliutil"
	"mitocheck/internal/config"
)

// Common holds CLI fields shared by count-kmers and annotate-repetitive-kmers.
type Common struct {
	// Input
	Genomes []string

	// Performance
	Threads int

	// Output
	Output  string // text|json|jsonl
	Header  bool
	OutFile string

	// Misc
	Config   string
	Progress bool
	Quiet    bool
	Verbose  bool
}

// Register wires shared flags onto fs and returns a pointer to the "no-header"
// bool that AfterParse turns into Common.Header.
func Register(fs *pflag.FlagSet, c *Common) *bool {
	fs.StringArrayVarP(&c.Genomes, "genomes", "g", nil, "genome FASTA file(s) (repeatable, gzip ok) or '-' for STDIN")

	fs.IntVarP(&c.Threads, "threads", "t", 0, "worker threads (0=all CPUs)")

	fs.StringVarP(&c.Output, "output", "o", config.DefaultOutput, "output: text | json | jsonl")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output")
	fs.StringVar(&c.OutFile, "out-file", "", `write results to file instead of STDOUT (".gz" compresses)`)

	fs.StringVar(&c.Config, "config", "", "TOML file with default parameters")
	fs.BoolVar(&c.Progress, "progress", false, "show a progress bar on STDERR")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "suppress non-essential warnings")
	fs.BoolVar(&c.Verbose, "verbose", false, "log run parameters and summaries on STDERR")
	return &noHeader
}

// AfterParse finalizes header, expands positionals, overlays config file
// values onto flags the user did not set, and runs shared validation.
// The loaded config is returned for tool-specific overlays.
func AfterParse(fs *pflag.FlagSet, c *Common, noHeader *bool, posArgs []string) (config.File, error) {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return config.File{}, err
		}
		c.Genomes = append(c.Genomes, exp...)
	}
	c.Genomes = cliutil.Dedupe(c.Genomes)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return cfg, err
	}
	if !fs.Changed("threads") && cfg.Threads != 0 {
		c.Threads = cfg.Threads
	}
	if !fs.Changed("output") && cfg.Output != "" {
		c.Output = cfg.Output
	}
	return cfg, Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if len(c.Genomes) == 0 {
		return errors.New("at least one genome file is required (--genomes or positional)")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch c.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

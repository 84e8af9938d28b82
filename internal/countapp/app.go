// internal/countapp/app.go
package countapp

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"mitocheck-core/fasta"
	"mitocheck-core/kmer"

	"mitocheck/internal/appcore"
	"mitocheck/internal/appshell"
	"mitocheck/internal/cli"
	"mitocheck/internal/cmdutil"
	"mitocheck/internal/histplot"
	"mitocheck/internal/output"
	"mitocheck/internal/pipeline"
	"mitocheck/internal/progress"
	"mitocheck/internal/stats"
)

// Run is the non-cancellable entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := appcore.ExitOK
	cmd := cli.NewCountCommand(func(cmd *cobra.Command, o cli.CountOptions) error {
		code = run(cmd.Context(), o, stdout, stderr)
		return nil
	})
	return appshell.Execute(parent, cmd, argv, stdout, stderr, &code)
}

func run(ctx context.Context, o cli.CountOptions, stdout, stderr io.Writer) int {
	recs, err := fasta.ReadAll(ctx, o.Genomes)
	if err != nil {
		return appcore.ExitCode(stderr, err)
	}
	if len(recs) == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no sequences found in %s", strings.Join(o.Genomes, ", "))
	}
	threads := appcore.Threads(o.Threads)
	cmdutil.Infof(stderr, o.Verbose, "%s sequences, %s bases; k=%d..%d; %d threads",
		humanize.Comma(int64(len(recs))), humanize.Comma(totalBases(recs)), o.MinK, o.MaxK, threads)

	ao := appcore.Options{
		OutFile: o.OutFile,
		Output:  o.Output,
		Header:  o.Header,
		BufSize: threads * 64,
	}
	sw := &sweep{o: o, recs: recs, threads: threads, stderr: stderr}

	if o.Dump {
		code := appcore.Run(ctx, stdout, stderr, ao, output.KmerTable,
			func(ctx context.Context, send func(output.KmerRow) error) error {
				return sw.each(ctx, func(k int, c kmer.Counts, _ []kmer.Bin) error {
					for _, idx := range kmer.SortedIndexes(c) {
						if err := send(output.KmerRow{K: k, Index: idx, Count: c[idx]}); err != nil {
							return err
						}
					}
					return nil
				})
			})
		return sw.finish(code)
	}

	code := appcore.Run(ctx, stdout, stderr, ao, output.HistogramTable,
		func(ctx context.Context, send func(output.HistogramRow) error) error {
			return sw.each(ctx, func(k int, _ kmer.Counts, bins []kmer.Bin) error {
				for _, b := range bins {
					if err := send(output.HistogramRow{K: k, Bin: b}); err != nil {
						return err
					}
				}
				return nil
			})
		})
	return sw.finish(code)
}

// sweep counts every k in [MinK, MaxK] in ascending order.
type sweep struct {
	o       cli.CountOptions
	recs    []fasta.Record
	threads int
	stderr  io.Writer

	series []histplot.Series
}

func (s *sweep) each(ctx context.Context, emit func(k int, c kmer.Counts, bins []kmer.Bin) error) error {
	for k := s.o.MinK; k <= s.o.MaxK; k++ {
		bar := progress.New(s.stderr, s.o.Progress, len(s.recs), fmt.Sprintf("k=%d", k))
		counts, err := pipeline.CountKmers(ctx, pipeline.Config{Threads: s.threads}, s.recs, k,
			func(fasta.Record) { bar.Increment() })
		bar.Wait()
		if err != nil {
			return err
		}

		bins := kmer.Histogram(counts)
		cmdutil.Infof(s.stderr, s.o.Verbose, "k=%d: %s", k, stats.Summarize(bins))
		if s.o.Plot != "" {
			s.series = append(s.series, histplot.Series{K: k, Bins: bins})
		}
		if err := emit(k, counts, bins); err != nil {
			return err
		}
	}
	return nil
}

// finish renders the plot once the table has been written successfully.
func (s *sweep) finish(code int) int {
	if code != appcore.ExitOK || s.o.Plot == "" {
		return code
	}
	if err := histplot.Save(s.o.Plot, s.series); err != nil {
		return appcore.ExitCode(s.stderr, errors.Wrap(err, "plot"))
	}
	cmdutil.Infof(s.stderr, s.o.Verbose, "histogram plot written to %s", s.o.Plot)
	return code
}

func totalBases(recs []fasta.Record) int64 {
	var n int64
	for _, r := range recs {
		n += int64(len(r.Seq))
	}
	return n
}

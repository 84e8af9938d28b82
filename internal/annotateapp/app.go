// internal/annotateapp/app.go
package annotateapp

import (
	"context"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"mitocheck-core/fasta"
	"mitocheck-core/kmer"
	"mitocheck-core/repeats"

	"mitocheck/internal/appcore"
	"mitocheck/internal/appshell"
	"mitocheck/internal/cli"
	"mitocheck/internal/cmdutil"
	"mitocheck/internal/output"
	"mitocheck/internal/pipeline"
	"mitocheck/internal/progress"
)

// Run is the non-cancellable entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := appcore.ExitOK
	cmd := cli.NewAnnotateCommand(func(cmd *cobra.Command, o cli.AnnotateOptions) error {
		code = run(cmd.Context(), o, stdout, stderr)
		return nil
	})
	return appshell.Execute(parent, cmd, argv, stdout, stderr, &code)
}

func run(ctx context.Context, o cli.AnnotateOptions, stdout, stderr io.Writer) int {
	recs, err := fasta.ReadAll(ctx, o.Genomes)
	if err != nil {
		return appcore.ExitCode(stderr, err)
	}
	if len(recs) == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no sequences found in %s", strings.Join(o.Genomes, ", "))
	}
	threads := appcore.Threads(o.Threads)

	bar := progress.New(stderr, o.Progress, len(recs), "counting")
	counts, err := pipeline.CountKmers(ctx, pipeline.Config{Threads: threads}, recs, o.K,
		func(fasta.Record) { bar.Increment() })
	bar.Wait()
	if err != nil {
		return appcore.ExitCode(stderr, err)
	}

	repetitive := kmer.Retain(counts, o.Threshold)
	cmdutil.Infof(stderr, o.Verbose, "k=%d: %s of %s canonical k-mers occur at least %d times",
		o.K, humanize.Comma(int64(len(repetitive))), humanize.Comma(int64(len(counts))), o.Threshold)
	if len(repetitive) == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no k-mer reaches threshold %d; nothing to annotate", o.Threshold)
	}

	ao := appcore.Options{
		OutFile: o.OutFile,
		Output:  o.Output,
		Header:  o.Header,
		BufSize: threads * 64,
	}
	return appcore.Run(ctx, stdout, stderr, ao, output.RepeatTable,
		func(ctx context.Context, send func(output.RepeatRow) error) error {
			n, err := cmdutil.RunStream(ctx, recs, func(r fasta.Record) ([]output.RepeatRow, error) {
				ivs := repeats.Detect(r.ID, r.Seq, o.K, repetitive)
				rows := make([]output.RepeatRow, len(ivs))
				for i, iv := range ivs {
					rows[i] = output.NewRepeatRow(iv, r.Seq)
				}
				return rows, nil
			}, send)
			cmdutil.Infof(stderr, o.Verbose, "%s repetitive regions", humanize.Comma(int64(n)))
			return err
		})
}

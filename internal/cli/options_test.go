// internal/cli/options_test.go
package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mitocheck-core/kmer"
)

func newFS() *pflag.FlagSet { return pflag.NewFlagSet("test", pflag.ContinueOnError) }

func mustCount(t *testing.T, args ...string) CountOptions {
	t.Helper()
	o, err := ParseCountArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return o
}

func TestCountDefaults(t *testing.T) {
	o := mustCount(t, "-g", "ref.fa")
	if o.MinK != 10 || o.MaxK != 20 || o.Output != "text" || !o.Header || o.Dump {
		t.Errorf("bad defaults %+v", o)
	}
	if len(o.Genomes) != 1 || o.Genomes[0] != "ref.fa" {
		t.Errorf("genomes = %v", o.Genomes)
	}
}

func TestCountPositionalsAndRepeats(t *testing.T) {
	o := mustCount(t, "--genomes", "a.fa", "-g", "b.fa", "c.fa", "a.fa", "--no-header", "-o", "jsonl")
	if len(o.Genomes) != 3 || o.Header || o.Output != "jsonl" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestCountRejectsLargeK(t *testing.T) {
	_, err := ParseCountArgs(newFS(), []string{"-g", "a.fa", "-M", "33"})
	if !errors.Is(err, kmer.ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestCountRejectsInvertedRange(t *testing.T) {
	if _, err := ParseCountArgs(newFS(), []string{"-g", "a.fa", "-m", "15", "-M", "12"}); err == nil {
		t.Fatal("expected error for min > max")
	}
}

func TestErrorNoGenomes(t *testing.T) {
	if _, err := ParseCountArgs(newFS(), []string{"-m", "12"}); err == nil {
		t.Fatal("expected error when genomes missing")
	}
	if _, err := ParseAnnotateArgs(newFS(), nil); err == nil {
		t.Fatal("expected error when genomes missing")
	}
}

func TestErrorBadOutput(t *testing.T) {
	if _, err := ParseAnnotateArgs(newFS(), []string{"-g", "a.fa", "-o", "fasta"}); err == nil {
		t.Fatal("expected error for --output fasta")
	}
}

func TestAnnotateDefaults(t *testing.T) {
	o, err := ParseAnnotateArgs(newFS(), []string{"a.fa"})
	if err != nil {
		t.Fatal(err)
	}
	if o.K != 13 || o.Threshold != 15 {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestAnnotateRejectsBadK(t *testing.T) {
	_, err := ParseAnnotateArgs(newFS(), []string{"a.fa", "-k", "40"})
	if !errors.Is(err, kmer.ErrInvalidConfiguration) {
		t.Fatalf("err = %v", err)
	}
}

func TestConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mc.toml")
	body := "threads = 3\n[annotate]\nkmer = 9\nthreshold = 2\n[count]\nmin-k-mer = 5\nmax-k-mer = 6\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := ParseAnnotateArgs(newFS(), []string{"a.fa", "--config", path, "-T", "7"})
	if err != nil {
		t.Fatal(err)
	}
	// Flags given explicitly beat the file.
	if a.K != 9 || a.Threshold != 7 || a.Threads != 3 {
		t.Errorf("annotate overlay %+v", a)
	}
	c := mustCount(t, "a.fa", "--config", path)
	if c.MinK != 5 || c.MaxK != 6 {
		t.Errorf("count overlay %+v", c)
	}
}

func TestNewCountCommandRuns(t *testing.T) {
	var got CountOptions
	cmd := NewCountCommand(func(_ *cobra.Command, o CountOptions) error {
		got = o
		return nil
	})
	cmd.SetArgs([]string{"-m", "3", "-M", "4", "x.fa"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.MinK != 3 || got.MaxK != 4 || len(got.Genomes) != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestNewAnnotateCommandValidates(t *testing.T) {
	called := false
	cmd := NewAnnotateCommand(func(*cobra.Command, AnnotateOptions) error {
		called = true
		return nil
	})
	cmd.SetArgs([]string{"-k", "0", "x.fa"})
	if err := cmd.Execute(); err == nil || called {
		t.Fatalf("expected validation error, called=%v err=%v", called, err)
	}
}

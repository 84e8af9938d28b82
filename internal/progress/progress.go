// Package progress draws an optional per-record progress bar.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar is a no-op when disabled, so callers never need to nil-check.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New starts a bar counting to total on w. It is disabled when enabled is
// false or total <= 0.
func New(w io.Writer, enabled bool, total int, name string) *Bar {
	if !enabled || total <= 0 {
		return &Bar{}
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.AverageETA(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Bar{p: p, bar: bar}
}

// Increment advances the bar by one. Safe for concurrent use.
func (b *Bar) Increment() {
	if b.bar != nil {
		b.bar.Increment()
	}
}

// Wait flushes the bar. An unfinished bar (cancelled run) is aborted first.
func (b *Bar) Wait() {
	if b.p == nil {
		return
	}
	if !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.p.Wait()
}

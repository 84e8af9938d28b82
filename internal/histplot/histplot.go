// Package histplot renders k-mer occurrence histograms as images.
package histplot

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"mitocheck-core/kmer"
)

// Series is the histogram of one k.
type Series struct {
	K    int
	Bins []kmer.Bin
}

// Size of the rendered figure in inches.
const (
	Width  = 6
	Height = 4
)

// Save draws one line per series (occurrences vs. number of k-mers) and
// writes it to path; the format follows the extension (.svg, .png, .pdf, ...).
func Save(path string, series []Series) error {
	p := plot.New()
	p.Title.Text = "Canonical k-mer occurrence histogram"
	p.X.Label.Text = "OccInGenome"
	p.Y.Label.Text = "NumOfKmer"

	drawn := 0
	for i, s := range series {
		if len(s.Bins) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Bins))
		for j, b := range s.Bins {
			xys[j].X = float64(b.Occ)
			xys[j].Y = float64(b.NumKmers)
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("k=%d: %w", s.K, err)
		}
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("k=%d", s.K), l)
		drawn++
	}
	if drawn == 0 {
		return errors.New("histplot: nothing to plot")
	}
	return p.Save(Width*vg.Inch, Height*vg.Inch, path)
}

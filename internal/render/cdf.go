package render

import (
	"sort"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/cromulentbanana/sdnctrlsim/internal/table"
)

// CDF renders the empirical distribution of every column over the trailing
// subset [cfg.BoxplotStart, rows).
func CDF(tbl *table.Table, cfg Config, legend Legend, tgt Target) (*Result, error) {
	p, n, err := cdfPlot(tbl, cfg, legend)
	if err != nil {
		return nil, err
	}
	path, err := tgt.Render(p)
	if err != nil {
		return nil, err
	}
	return &Result{Path: path, Rows: n, Series: tbl.Columns()}, nil
}

func cdfPlot(tbl *table.Table, cfg Config, legend Legend) (*plot.Plot, int, error) {
	start, n, err := trailing(tbl, cfg)
	if err != nil {
		return nil, 0, err
	}

	p, err := plot.New()
	if err != nil {
		return nil, 0, err
	}
	p.Title.Text = title("CDF", cfg)
	p.X.Label.Text = "link error metric"
	p.Y.Label.Text = "P(x)"
	p.X.Tick.Marker = hplot.Ticks{N: axisTicks}

	var lines []interface{}
	for c := 0; c < tbl.Columns(); c++ {
		vals := tbl.Column(c)[start:]
		sort.Float64s(vals)
		pts := make(plotter.XYs, len(vals))
		for i, v := range vals {
			pts[i] = plotter.XY{X: v, Y: float64(i+1) / float64(len(vals))}
		}
		lines = append(lines, legend.entry(c).Label, pts)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, 0, err
	}
	return p, n, nil
}

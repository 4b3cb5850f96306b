package render

import (
	"fmt"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cromulentbanana/sdnctrlsim/internal/table"
)

// Boxplot renders one box-and-whisker summary per column over the trailing
// subset [cfg.BoxplotStart, rows).
func Boxplot(tbl *table.Table, cfg Config, legend Legend, tgt Target) (*Result, error) {
	p, n, err := boxplotPlot(tbl, cfg, legend)
	if err != nil {
		return nil, err
	}
	path, err := tgt.Render(p)
	if err != nil {
		return nil, err
	}
	return &Result{Path: path, Rows: n, Series: tbl.Columns()}, nil
}

func boxplotPlot(tbl *table.Table, cfg Config, legend Legend) (*plot.Plot, int, error) {
	start, n, err := trailing(tbl, cfg)
	if err != nil {
		return nil, 0, err
	}

	p, err := plot.New()
	if err != nil {
		return nil, 0, err
	}
	p.Title.Text = title("Distribution", cfg)
	p.X.Label.Text = "sync period"
	p.Y.Label.Text = "link error metric"
	p.Y.Tick.Marker = hplot.Ticks{N: axisTicks}

	// The distribution scale covers only the trailing subset, unlike the
	// time-series path.
	p.Y.Min, p.Y.Max = tableRange(tbl, start)

	names := make([]string, tbl.Columns())
	for c := 0; c < tbl.Columns(); c++ {
		b, err := plotter.NewBoxPlot(vg.Points(40), float64(c), plotter.Values(tbl.Column(c)[start:]))
		if err != nil {
			return nil, 0, err
		}
		p.Add(b)
		names[c] = legend.entry(c).Label
	}
	p.NominalX(names...)
	return p, n, nil
}

// trailing validates cfg and resolves the trailing subset bounds.
func trailing(tbl *table.Table, cfg Config) (start, n int, err error) {
	if err := cfg.Validate(); err != nil {
		return 0, 0, err
	}
	if cfg.BoxplotStart >= tbl.Rows() {
		return 0, 0, fmt.Errorf("render: trailing window starts at row %d but table has %d rows",
			cfg.BoxplotStart, tbl.Rows())
	}
	return cfg.BoxplotStart, tbl.Rows() - cfg.BoxplotStart, nil
}

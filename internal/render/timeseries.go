package render

import (
	"errors"
	"fmt"
	"math"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cromulentbanana/sdnctrlsim/internal/table"
)

const axisTicks = 15

// TimeSeries renders the windowed overlay of every column in tbl to tgt.
func TimeSeries(tbl *table.Table, cfg Config, legend Legend, tgt Target) (*Result, error) {
	p, win, truncated, err := timeSeriesPlot(tbl, cfg, legend)
	if err != nil {
		return nil, err
	}
	path, err := tgt.Render(p)
	if err != nil {
		return nil, err
	}
	return &Result{Path: path, Rows: win.Length, Series: tbl.Columns(), Truncated: truncated}, nil
}

func timeSeriesPlot(tbl *table.Table, cfg Config, legend Legend) (*plot.Plot, table.Window, bool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, table.Window{}, false, err
	}
	if tbl.Rows() == 0 {
		return nil, table.Window{}, false, errors.New("render: table has no rows")
	}
	win, truncated := cfg.Window.Clip(tbl.Rows())
	if win.Length == 0 {
		return nil, win, truncated, fmt.Errorf("render: window %d+%d selects no rows of %d",
			cfg.Window.Start, cfg.Window.Length, tbl.Rows())
	}

	p, err := plot.New()
	if err != nil {
		return nil, win, truncated, err
	}
	p.Title.Text = title("Timeseries", cfg)
	p.X.Label.Text = "Time (ticks)"
	p.X.Tick.Marker = hplot.Ticks{N: axisTicks}
	p.Y.Tick.Marker = hplot.Ticks{N: axisTicks}

	// The vertical scale spans the whole table, not just the window, so
	// repeated renders with different windows stay visually comparable.
	p.Y.Min, p.Y.Max = tableRange(tbl, 0)
	p.X.Min = float64(win.Start)
	p.X.Max = float64(win.Start + win.Length)

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(10)

	for c := 0; c < tbl.Columns(); c++ {
		vals := smooth(tbl.Column(c), cfg.SmoothAlpha)
		line, points, err := plotter.NewLinePoints(windowPoints(vals, win))
		if err != nil {
			return nil, win, truncated, err
		}
		s := legend.entry(c)
		line.Color = plotutil.Color(s.Color)
		points.Color = plotutil.Color(s.Color)
		points.Shape = plotutil.Shape(s.Shape)
		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}

	// Periodic vertical gridlines mark the simulator's sync boundaries.
	for _, x := range gridlineXs(p.X.Min, p.X.Max, cfg.GridPeriod, cfg.GridOffset) {
		p.Add(hplot.VLine(x, nil, nil))
	}
	return p, win, truncated, nil
}

// gridlineXs returns the data-space positions of the periodic vertical
// gridlines inside [min, max]: every x with x = offset + k*period for some
// integer k >= 0. A period of 0 disables the gridlines.
func gridlineXs(min, max float64, period, offset int) []float64 {
	if period <= 0 {
		return nil
	}
	p := float64(period)
	k := math.Ceil((min - float64(offset)) / p)
	if k < 0 {
		k = 0
	}
	var xs []float64
	for x := float64(offset) + k*p; x <= max; x += p {
		xs = append(xs, x)
	}
	return xs
}

// windowPoints extracts the windowed slice of one series, keyed by absolute
// row index so the horizontal axis reads as simulation time.
func windowPoints(vals []float64, win table.Window) plotter.XYs {
	pts := make(plotter.XYs, win.Length)
	for i := range pts {
		pts[i].X = float64(win.Start + i)
		pts[i].Y = vals[win.Start+i]
	}
	return pts
}

// tableRange returns the value range over rows [from, rows) of all columns.
func tableRange(tbl *table.Table, from int) (float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for c := 0; c < tbl.Columns(); c++ {
		col := tbl.Column(c)[from:]
		if len(col) == 0 {
			continue
		}
		lo = floats.Min([]float64{lo, floats.Min(col)})
		hi = floats.Max([]float64{hi, floats.Max(col)})
	}
	return lo, hi
}

// smooth applies an exponential weighted moving average with factor alpha.
// alpha 0 returns the input unchanged.
func smooth(vals []float64, alpha float64) []float64 {
	if alpha == 0 {
		return vals
	}
	out := make([]float64, len(vals))
	prev := 0.0
	for i, v := range vals {
		prev = alpha*prev + (1-alpha)*v
		out[i] = prev
	}
	return out
}

func title(kind string, cfg Config) string {
	if cfg.Title == "" {
		return kind
	}
	return kind + " " + cfg.Title
}

// Package render turns loaded metrics tables into comparative plots: a
// windowed multi-series time-series overlay and distribution summaries
// (boxplot, CDF) over a trailing subset of the run.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/cromulentbanana/sdnctrlsim/internal/table"
)

// Format selects the vector backend for file output.
type Format string

const (
	// PDF is the default vector format.
	PDF Format = "pdf"
	// EPS is the legacy PostScript format.
	EPS Format = "eps"
)

// Config holds every recognized rendering option.
type Config struct {
	TimeSeries bool
	Boxplot    bool
	CDF        bool

	// ToFile selects file output; otherwise plots go to an interactive
	// preview with a blocking pause between them.
	ToFile  bool
	OutDir  string
	OutBase string
	Format  Format

	Columns   int
	SkipLines int

	// Window selects the time-series row range. The vertical scale is
	// always computed over the whole table so renders of different
	// windows stay comparable.
	Window table.Window

	// BoxplotStart is the first row of the trailing subset summarized by
	// the boxplot and CDF paths.
	BoxplotStart int

	// GridPeriod and GridOffset place the periodic vertical gridlines of
	// the time-series plot, matching the simulator's sync period.
	// GridPeriod 0 disables them.
	GridPeriod int
	GridOffset int

	// SmoothAlpha applies EWMA smoothing to time-series values. 0 leaves
	// the values untouched.
	SmoothAlpha float64

	// Title is appended to each plot's caption, normally the source file
	// stem.
	Title string

	Width  vg.Length
	Height vg.Length
}

// Defaults returns the historical invocation defaults.
func Defaults() Config {
	return Config{
		TimeSeries: true,
		OutDir:     os.TempDir(),
		Format:     PDF,
		Columns:    4,
		SkipLines:  1,
		Window:     table.Window{Start: 112, Length: 35},
		GridPeriod: 16,
		GridOffset: 2,
		Width:      9 * vg.Inch,
		Height:     16 * vg.Inch,
	}
}

// Validate rejects unusable configurations before any output target is
// created.
func (c Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("render: column count must be at least 1, got %d", c.Columns)
	}
	if c.SkipLines < 0 {
		return fmt.Errorf("render: header skip count must not be negative, got %d", c.SkipLines)
	}
	if c.Window.Start < 0 || c.Window.Length < 0 {
		return fmt.Errorf("render: window %d+%d must not be negative", c.Window.Start, c.Window.Length)
	}
	if c.BoxplotStart < 0 {
		return fmt.Errorf("render: boxplot start must not be negative, got %d", c.BoxplotStart)
	}
	if c.GridPeriod < 0 || c.GridOffset < 0 {
		return fmt.Errorf("render: gridline period %d offset %d must not be negative", c.GridPeriod, c.GridOffset)
	}
	if c.SmoothAlpha < 0 || c.SmoothAlpha >= 1 {
		return fmt.Errorf("render: smoothing factor %g out of range [0,1)", c.SmoothAlpha)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("render: page size %v x %v must be positive", c.Width, c.Height)
	}
	if c.ToFile {
		switch c.Format {
		case PDF, EPS:
		default:
			return fmt.Errorf("render: unknown vector format %q", c.Format)
		}
	}
	return nil
}

// OutputPath composes the artifact path for one render kind ("ts",
// "boxplot", "cdf") of the given source file.
func (c Config) OutputPath(source, kind string) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(c.OutDir, c.OutBase+stem+"_"+kind+"."+string(c.Format))
}

// Target builds the output destination for one render kind of source. In
// interactive mode ack supplies the typed acknowledgment; a nil ack falls
// back to a fixed pause.
func (c Config) Target(source, kind string, ack io.Reader) Target {
	if c.ToFile {
		return &FileTarget{
			Path:   c.OutputPath(source, kind),
			Format: c.Format,
			Width:  c.Width,
			Height: c.Height,
		}
	}
	return &InteractiveTarget{
		Width:  c.Width,
		Height: c.Height,
		Ack:    ack,
		Delay:  interPlotPause,
	}
}

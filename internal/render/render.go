package render

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/cromulentbanana/sdnctrlsim/internal/table"
)

// Result reports what one render call produced.
type Result struct {
	// Path is the written artifact: the vector file in file mode, the
	// raster preview in interactive mode.
	Path string
	// Rows is the number of rows actually plotted.
	Rows int
	// Series is the number of plotted columns.
	Series int
	// Truncated reports that the requested window extended past the
	// available rows and was clipped.
	Truncated bool
}

// RenderFile loads source and renders every artifact cfg enables, in a
// fixed order: time series, boxplot, CDF. Each render call is independent;
// a failure aborts the call without touching earlier artifacts.
func RenderFile(source string, cfg Config, legend Legend, ack io.Reader) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tbl, err := table.LoadFile(source, table.Options{Columns: cfg.Columns, SkipLines: cfg.SkipLines})
	if err != nil {
		return nil, err
	}
	if cfg.Title == "" {
		cfg.Title = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}

	var results []Result
	if cfg.TimeSeries {
		r, err := TimeSeries(tbl, cfg, legend, cfg.Target(source, "ts", ack))
		if err != nil {
			return results, err
		}
		results = append(results, *r)
	}
	if cfg.Boxplot {
		r, err := Boxplot(tbl, cfg, legend, cfg.Target(source, "boxplot", ack))
		if err != nil {
			return results, err
		}
		results = append(results, *r)
	}
	if cfg.CDF {
		r, err := CDF(tbl, cfg, legend, cfg.Target(source, "cdf", ack))
		if err != nil {
			return results, err
		}
		results = append(results, *r)
	}
	return results, nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/cromulentbanana/sdnctrlsim/internal/render"
)

type renderOptions struct {
	dir      string
	settings string
	labels   []string
	format   string
	cfg      render.Config
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{cfg: render.Defaults()}
	cmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Render time-series and distribution plots from metrics tables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Flags(), args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&opts.dir, "dir", ".", "directory holding the input files")
	fl.StringVar(&opts.settings, "settings", "", "YAML settings file with option and label overrides")
	fl.StringSliceVar(&opts.labels, "labels", nil, "series labels, one per column")
	fl.IntVar(&opts.cfg.Columns, "columns", opts.cfg.Columns, "column count of the input tables")
	fl.IntVar(&opts.cfg.SkipLines, "skip", opts.cfg.SkipLines, "header lines to skip")
	fl.IntVar(&opts.cfg.Window.Start, "window-start", opts.cfg.Window.Start, "first row of the time-series window")
	fl.IntVar(&opts.cfg.Window.Length, "window-length", opts.cfg.Window.Length, "rows in the time-series window")
	fl.BoolVar(&opts.cfg.TimeSeries, "timeseries", opts.cfg.TimeSeries, "render the windowed time-series overlay")
	fl.BoolVar(&opts.cfg.Boxplot, "boxplot", opts.cfg.Boxplot, "render the trailing-window boxplot")
	fl.BoolVar(&opts.cfg.CDF, "cdf", opts.cfg.CDF, "render the trailing-window CDF")
	fl.IntVar(&opts.cfg.BoxplotStart, "boxplot-start", opts.cfg.BoxplotStart, "first row of the trailing distribution window")
	fl.BoolVar(&opts.cfg.ToFile, "to-file", opts.cfg.ToFile, "write vector files instead of interactive previews")
	fl.StringVar(&opts.cfg.OutDir, "out-dir", opts.cfg.OutDir, "output directory for vector files")
	fl.StringVar(&opts.cfg.OutBase, "out-base", opts.cfg.OutBase, "prefix for output file names")
	fl.StringVar(&opts.format, "format", string(opts.cfg.Format), "vector format: pdf or eps")
	fl.IntVar(&opts.cfg.GridPeriod, "grid-period", opts.cfg.GridPeriod, "vertical gridline spacing in ticks, 0 disables")
	fl.IntVar(&opts.cfg.GridOffset, "grid-offset", opts.cfg.GridOffset, "vertical gridline phase offset in ticks")
	fl.Float64Var(&opts.cfg.SmoothAlpha, "smooth", opts.cfg.SmoothAlpha, "EWMA smoothing factor in [0,1), 0 disables")
	return cmd
}

// inputPath resolves a file argument against the --dir flag. Absolute
// arguments name the file directly and ignore the directory.
func inputPath(dir, f string) string {
	if filepath.IsAbs(f) {
		return f
	}
	return filepath.Join(dir, f)
}

func (o *renderOptions) run(flags *pflag.FlagSet, files []string) error {
	if o.settings != "" {
		s, err := loadSettings(o.settings)
		if err != nil {
			return err
		}
		s.apply(&o.cfg, flags.Changed)
		if len(o.labels) == 0 {
			o.labels = s.Labels
		}
	}
	o.cfg.Format = render.Format(o.format)
	if err := o.cfg.Validate(); err != nil {
		return err
	}

	legend := render.DefaultLegend(o.cfg.Columns)
	if len(o.labels) > 0 {
		legend = render.NewLegend(o.labels)
	}

	for _, f := range files {
		results, err := render.RenderFile(inputPath(o.dir, f), o.cfg, legend, os.Stdin)
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		for _, r := range results {
			if r.Truncated {
				klog.Warningf("%s: window extends past the table, truncated to %d rows", f, r.Rows)
			}
			klog.Infof("%s: wrote %s (%d series, %d rows)", f, r.Path, r.Series, r.Rows)
		}
	}
	return nil
}

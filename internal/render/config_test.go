package render

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/cromulentbanana/sdnctrlsim/internal/table"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if !cfg.TimeSeries || cfg.Boxplot || cfg.CDF {
		t.Errorf("Defaults() paths = ts:%v box:%v cdf:%v, want ts only", cfg.TimeSeries, cfg.Boxplot, cfg.CDF)
	}
	if cfg.Window != (table.Window{Start: 112, Length: 35}) {
		t.Errorf("Defaults() window = %+v, want 112+35", cfg.Window)
	}
	if cfg.Columns != 4 || cfg.SkipLines != 1 {
		t.Errorf("Defaults() shape = %d cols skip %d, want 4 cols skip 1", cfg.Columns, cfg.SkipLines)
	}
	if cfg.GridPeriod != 16 || cfg.GridOffset != 2 {
		t.Errorf("Defaults() grid = %d/%d, want 16/2", cfg.GridPeriod, cfg.GridOffset)
	}
	if cfg.Format != PDF {
		t.Errorf("Defaults() format = %q, want pdf", cfg.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults() must validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	base := Defaults()
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero columns", func(c *Config) { c.Columns = 0 }},
		{"negative skip", func(c *Config) { c.SkipLines = -1 }},
		{"negative window start", func(c *Config) { c.Window.Start = -1 }},
		{"negative window length", func(c *Config) { c.Window.Length = -1 }},
		{"negative boxplot start", func(c *Config) { c.BoxplotStart = -1 }},
		{"smoothing factor one", func(c *Config) { c.SmoothAlpha = 1 }},
		{"zero page width", func(c *Config) { c.Width = 0 }},
		{"unknown format", func(c *Config) { c.ToFile = true; c.Format = "svg" }},
	}
	for _, tc := range tests {
		cfg := base
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tc.name)
		}
	}
}

func TestOutputPathComposition(t *testing.T) {
	cfg := Defaults()
	cfg.OutDir = "/data/plots"
	cfg.OutBase = "run42-"
	got := cfg.OutputPath("logs/sim.16.0.metrics", "ts")
	want := filepath.Join("/data/plots", "run42-sim.16.0_ts.pdf")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}

	cfg.Format = EPS
	if got := cfg.OutputPath("a.txt", "boxplot"); !strings.HasSuffix(got, "a_boxplot.eps") {
		t.Fatalf("OutputPath eps = %q, want *_boxplot.eps", got)
	}
}

func TestTargetSelection(t *testing.T) {
	cfg := Defaults()
	cfg.ToFile = true
	if _, ok := cfg.Target("f.txt", "ts", nil).(*FileTarget); !ok {
		t.Error("ToFile config must yield a FileTarget")
	}
	cfg.ToFile = false
	if _, ok := cfg.Target("f.txt", "ts", nil).(*InteractiveTarget); !ok {
		t.Error("interactive config must yield an InteractiveTarget")
	}
}

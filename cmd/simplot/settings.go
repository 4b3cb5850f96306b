package main

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/cromulentbanana/sdnctrlsim/internal/render"
)

// Settings mirrors the render flags for sessions driven by a YAML file.
// Flags set on the command line win over file values. Pointer fields
// distinguish an absent key from an explicit zero, so a file can turn a
// default off (grid_period: 0) or pin a window to the table start.
type Settings struct {
	Labels       []string `yaml:"labels"`
	Columns      *int     `yaml:"columns"`
	SkipLines    *int     `yaml:"skip"`
	WindowStart  *int     `yaml:"window_start"`
	WindowLength *int     `yaml:"window_length"`
	BoxplotStart *int     `yaml:"boxplot_start"`
	OutDir       *string  `yaml:"out_dir"`
	OutBase      *string  `yaml:"out_base"`
	GridPeriod   *int     `yaml:"grid_period"`
	GridOffset   *int     `yaml:"grid_offset"`
	Smooth       *float64 `yaml:"smooth"`
}

func loadSettings(path string) (*Settings, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return &s, nil
}

// apply copies file values into cfg for every option whose key is present
// in the file and whose flag was not set on the command line.
func (s *Settings) apply(cfg *render.Config, changed func(string) bool) {
	if s.Columns != nil && !changed("columns") {
		cfg.Columns = *s.Columns
	}
	if s.SkipLines != nil && !changed("skip") {
		cfg.SkipLines = *s.SkipLines
	}
	if s.WindowStart != nil && !changed("window-start") {
		cfg.Window.Start = *s.WindowStart
	}
	if s.WindowLength != nil && !changed("window-length") {
		cfg.Window.Length = *s.WindowLength
	}
	if s.BoxplotStart != nil && !changed("boxplot-start") {
		cfg.BoxplotStart = *s.BoxplotStart
	}
	if s.OutDir != nil && !changed("out-dir") {
		cfg.OutDir = *s.OutDir
	}
	if s.OutBase != nil && !changed("out-base") {
		cfg.OutBase = *s.OutBase
	}
	if s.GridPeriod != nil && !changed("grid-period") {
		cfg.GridPeriod = *s.GridPeriod
	}
	if s.GridOffset != nil && !changed("grid-offset") {
		cfg.GridOffset = *s.GridOffset
	}
	if s.Smooth != nil && !changed("smooth") {
		cfg.SmoothAlpha = *s.Smooth
	}
}

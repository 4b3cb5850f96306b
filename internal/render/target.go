package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// interPlotPause paces sequential interactive renders when no
// acknowledgment source is wired up.
const interPlotPause = 2 * time.Second

// A Target is the destination a finished plot is written to.
type Target interface {
	// Render draws p and releases the underlying canvas on every exit
	// path, returning the path of the artifact it produced.
	Render(p *plot.Plot) (string, error)
}

// FileTarget writes a plot to a vector image file with scoped
// acquire/flush/close of the canvas. A partially written file is removed.
type FileTarget struct {
	Path   string
	Format Format
	Width  vg.Length
	Height vg.Length
}

func (t *FileTarget) Render(p *plot.Plot) (string, error) {
	var canvas interface {
		vg.Canvas
		Size() (vg.Length, vg.Length)
		io.WriterTo
	}
	switch t.Format {
	case EPS:
		canvas = vgeps.New(t.Width, t.Height)
	case PDF, "":
		canvas = vgpdf.New(t.Width, t.Height)
	default:
		return "", fmt.Errorf("render: unknown vector format %q", t.Format)
	}
	p.Draw(draw.New(canvas))

	w, err := os.Create(t.Path)
	if err != nil {
		return "", fmt.Errorf("render: create %s: %w", t.Path, err)
	}
	if _, err := canvas.WriteTo(w); err != nil {
		w.Close()
		os.Remove(t.Path)
		return "", fmt.Errorf("render: write %s: %w", t.Path, err)
	}
	if err := w.Close(); err != nil {
		os.Remove(t.Path)
		return "", fmt.Errorf("render: close %s: %w", t.Path, err)
	}
	return t.Path, nil
}

// InteractiveTarget renders a raster preview into the temporary directory,
// announces its path and blocks until the viewer acknowledges it. The wait
// is synchronous with no timeout, which is what a sequential
// analyst-in-the-loop session wants.
type InteractiveTarget struct {
	// Dir is the preview directory, the system temp dir when empty.
	Dir    string
	Width  vg.Length
	Height vg.Length
	// Ack is the typed acknowledgment source, normally stdin. When nil
	// the target pauses for Delay instead.
	Ack    io.Reader
	Delay  time.Duration
	// Prompt receives the preview announcement, stdout when nil.
	Prompt io.Writer
}

func (t *InteractiveTarget) Render(p *plot.Plot) (string, error) {
	dir := t.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	img := vgimg.New(t.Width, t.Height)
	p.Draw(draw.New(img))

	f, err := os.CreateTemp(dir, "simplot-*.png")
	if err != nil {
		return "", fmt.Errorf("render: preview: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("render: preview %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("render: preview %s: %w", f.Name(), err)
	}

	out := t.Prompt
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "preview written to %s\n", f.Name())
	if t.Ack != nil {
		fmt.Fprintln(out, "press enter for the next plot")
		if _, err := bufio.NewReader(t.Ack).ReadString('\n'); err != nil && err != io.EOF {
			return f.Name(), fmt.Errorf("render: acknowledgment: %w", err)
		}
	} else if t.Delay > 0 {
		time.Sleep(t.Delay)
	}
	return f.Name(), nil
}

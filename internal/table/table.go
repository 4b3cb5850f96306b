// Package table loads the whitespace-delimited numeric matrices that
// json2txt produces from a simulation run's metrics log.
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Options controls how a source is parsed.
type Options struct {
	// Columns is the fixed column count of the matrix. Must be at least 1.
	Columns int
	// SkipLines is the number of leading header lines to discard.
	SkipLines int
}

// A Table is one parsed run's numeric log. It is immutable after Load.
type Table struct {
	cells   []float64
	columns int
}

// A ShapeError reports a source whose token count does not fill whole rows.
type ShapeError struct {
	Tokens  int
	Columns int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("table: %d values do not fill whole rows of %d columns", e.Tokens, e.Columns)
}

// A SourceError reports a source that could not be opened or read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("table: source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Load parses all numeric tokens from r in row-major order after skipping
// the configured header lines.
func Load(r io.Reader, opts Options) (*Table, error) {
	if opts.Columns < 1 {
		return nil, fmt.Errorf("table: column count must be at least 1, got %d", opts.Columns)
	}
	if opts.SkipLines < 0 {
		return nil, fmt.Errorf("table: header skip count must not be negative, got %d", opts.SkipLines)
	}

	var cells []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if line <= opts.SkipLines {
			continue
		}
		for _, tok := range strings.Fields(sc.Text()) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("table: line %d: bad value %q", line, tok)
			}
			cells = append(cells, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("table: read: %w", err)
	}
	if len(cells)%opts.Columns != 0 {
		return nil, &ShapeError{Tokens: len(cells), Columns: opts.Columns}
	}
	return &Table{cells: cells, columns: opts.Columns}, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()
	return Load(f, opts)
}

// Rows returns the number of records in the table.
func (t *Table) Rows() int { return len(t.cells) / t.columns }

// Columns returns the fixed column count.
func (t *Table) Columns() int { return t.columns }

// At returns the value at the given row and column.
func (t *Table) At(row, col int) float64 { return t.cells[row*t.columns+col] }

// Column returns a copy of one column's values over all rows.
func (t *Table) Column(col int) []float64 {
	out := make([]float64, t.Rows())
	for r := range out {
		out[r] = t.At(r, col)
	}
	return out
}

package table

// A Window is a contiguous row range selected for display.
type Window struct {
	Start  int
	Length int
}

// Clip bounds w against a table of rows records. The returned flag reports
// whether any part of the requested range fell outside the table.
func (w Window) Clip(rows int) (Window, bool) {
	c := w
	truncated := false
	if c.Start < 0 {
		c.Start = 0
		truncated = true
	}
	if c.Start > rows {
		c.Start = rows
		truncated = true
	}
	if c.Start+c.Length > rows {
		c.Length = rows - c.Start
		truncated = true
	}
	return c, truncated
}

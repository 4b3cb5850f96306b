package render

import "fmt"

// A Series describes how one table column is drawn: its legend label and
// the plotutil marker and color palette indices.
type Series struct {
	Label string
	Shape int
	Color int
}

// A Legend maps table columns to series styles, in column order. A legend
// shorter than the column count is reused cyclically.
type Legend []Series

// NewLegend builds a legend from bare labels with cycling styles.
func NewLegend(labels []string) Legend {
	l := make(Legend, len(labels))
	for i, label := range labels {
		l[i] = Series{Label: label, Shape: i, Color: i}
	}
	return l
}

// DefaultLegend labels n columns as numbered links.
func DefaultLegend(n int) Legend {
	l := make(Legend, n)
	for i := range l {
		l[i] = Series{Label: fmt.Sprintf("link %d", i+1), Shape: i, Color: i}
	}
	return l
}

func (l Legend) entry(i int) Series {
	if len(l) == 0 {
		return Series{Label: fmt.Sprintf("link %d", i+1), Shape: i, Color: i}
	}
	return l[i%len(l)]
}

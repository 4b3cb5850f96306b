package render

import "testing"

func TestDefaultLegendLabels(t *testing.T) {
	l := DefaultLegend(3)
	want := []string{"link 1", "link 2", "link 3"}
	for i, w := range want {
		if l[i].Label != w {
			t.Errorf("DefaultLegend(3)[%d].Label = %q, want %q", i, l[i].Label, w)
		}
	}
}

func TestLegendCyclesWhenShort(t *testing.T) {
	l := NewLegend([]string{"a", "b"})
	if got := l.entry(2).Label; got != "a" {
		t.Errorf("entry(2) = %q, want cyclic reuse of %q", got, "a")
	}
	if got := l.entry(5).Label; got != "b" {
		t.Errorf("entry(5) = %q, want cyclic reuse of %q", got, "b")
	}
}

func TestEmptyLegendFallsBackToDefaults(t *testing.T) {
	var l Legend
	if got := l.entry(1).Label; got != "link 2" {
		t.Errorf("empty legend entry(1) = %q, want %q", got, "link 2")
	}
}

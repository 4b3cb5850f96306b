package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cromulentbanana/sdnctrlsim/internal/table"
)

func TestWriteDummyRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dummy.metrics.txt")
	if err := writeDummy(path, 4, 20, 1); err != nil {
		t.Fatalf("writeDummy: %v", err)
	}
	tbl, err := table.LoadFile(path, table.Options{Columns: 4, SkipLines: 1})
	if err != nil {
		t.Fatalf("generated table does not load back: %v", err)
	}
	if got, want := tbl.Rows(), 20; got != want {
		t.Fatalf("Rows() = %d, want %d", got, want)
	}
	for r := 0; r < tbl.Rows(); r++ {
		for c := 0; c < tbl.Columns(); c++ {
			if v := tbl.At(r, c); v < 0 || v >= 1 {
				t.Fatalf("At(%d,%d) = %v, want [0,1)", r, c, v)
			}
		}
	}
}

func TestWriteDummyDeterministicPerSeed(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := writeDummy(a, 2, 5, 7); err != nil {
		t.Fatal(err)
	}
	if err := writeDummy(b, 2, 5, 7); err != nil {
		t.Fatal(err)
	}
	ta, err := table.LoadFile(a, table.Options{Columns: 2, SkipLines: 1})
	if err != nil {
		t.Fatal(err)
	}
	tb, err := table.LoadFile(b, table.Options{Columns: 2, SkipLines: 1})
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 2; c++ {
			if ta.At(r, c) != tb.At(r, c) {
				t.Fatalf("seeded output differs at (%d,%d)", r, c)
			}
		}
	}
}

func TestWriteDummyRejectsDegenerateShape(t *testing.T) {
	if err := writeDummy(filepath.Join(t.TempDir(), "x.txt"), 0, 10, 1); err == nil {
		t.Fatal("zero columns must error")
	}
}

func TestPrintSummary(t *testing.T) {
	tbl, err := table.Load(strings.NewReader("1 10\n2 20\n3 30\n4 40\n"), table.Options{Columns: 2})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := printSummary(&out, "run.txt", tbl, 0); err != nil {
		t.Fatalf("printSummary: %v", err)
	}
	got := out.String()
	for _, want := range []string{"run.txt", "2.5000", "25.0000", "1.0000", "40.0000"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintSummaryRejectsEmptyTrailingWindow(t *testing.T) {
	tbl, err := table.Load(strings.NewReader("1 2\n"), table.Options{Columns: 2})
	if err != nil {
		t.Fatal(err)
	}
	if err := printSummary(&bytes.Buffer{}, "run.txt", tbl, 5); err == nil {
		t.Fatal("trailing window past the table must error")
	}
}

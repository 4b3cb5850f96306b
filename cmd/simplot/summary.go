package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/cromulentbanana/sdnctrlsim/internal/table"
)

func newSummaryCmd() *cobra.Command {
	var columns, skip, from int
	cmd := &cobra.Command{
		Use:   "summary <file>...",
		Short: "Print per-column distribution statistics over the trailing window",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range args {
				tbl, err := table.LoadFile(f, table.Options{Columns: columns, SkipLines: skip})
				if err != nil {
					return err
				}
				if err := printSummary(os.Stdout, f, tbl, from); err != nil {
					return fmt.Errorf("%s: %w", f, err)
				}
			}
			return nil
		},
	}
	// RMSE exports carry six columns, unlike the four-column link logs.
	cmd.Flags().IntVar(&columns, "columns", 6, "column count of the input tables")
	cmd.Flags().IntVar(&skip, "skip", 1, "header lines to skip")
	cmd.Flags().IntVar(&from, "from", 0, "first row of the summarized trailing window")
	return cmd
}

func printSummary(w io.Writer, name string, tbl *table.Table, from int) error {
	if from < 0 || from >= tbl.Rows() {
		return fmt.Errorf("trailing window starts at row %d but table has %d rows", from, tbl.Rows())
	}

	fmt.Fprintln(w, name)
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"column", "mean", "stddev", "min", "max", "p50", "p95", "p99"})
	for c := 0; c < tbl.Columns(); c++ {
		vals := tbl.Column(c)[from:]
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		tw.Append([]string{
			fmt.Sprintf("%d", c+1),
			fmt.Sprintf("%.4f", stat.Mean(vals, nil)),
			fmt.Sprintf("%.4f", stat.StdDev(vals, nil)),
			fmt.Sprintf("%.4f", sorted[0]),
			fmt.Sprintf("%.4f", sorted[len(sorted)-1]),
			fmt.Sprintf("%.4f", stat.Quantile(0.5, stat.Empirical, sorted, nil)),
			fmt.Sprintf("%.4f", stat.Quantile(0.95, stat.Empirical, sorted, nil)),
			fmt.Sprintf("%.4f", stat.Quantile(0.99, stat.Empirical, sorted, nil)),
		})
	}
	tw.Render()
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	var columns, rows int
	var seed int64
	cmd := &cobra.Command{
		Use:   "gen <file>",
		Short: "Write a random metrics table for trying the tool out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDummy(args[0], columns, rows, seed)
		},
	}
	cmd.Flags().IntVar(&columns, "columns", 4, "column count of the generated table")
	cmd.Flags().IntVar(&rows, "rows", 160, "rows in the generated table")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func writeDummy(path string, columns, rows int, seed int64) error {
	if columns < 1 || rows < 1 {
		return fmt.Errorf("gen: need at least one row and one column, got %dx%d", rows, columns)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# dummy metrics, %d columns\n", columns)
	rng := rand.New(rand.NewSource(seed))
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			if c > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%.6f", rng.Float64())
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

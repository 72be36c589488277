package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/TrainingPlots/src/plotters"
	"github.com/iafilius/TrainingPlots/src/table"
)

// newColumnsCommand lists a training log's columns with how many rows carry a
// value, which is the quickest way to find the right --y-col.
func newColumnsCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List the columns of a training log with value counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := table.Load(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total rows: %d\n", tbl.Rows())
			for _, name := range tbl.Columns() {
				present, missing := tbl.Count(name)
				fmt.Fprintf(out, "%s: %d values, %d missing\n", name, present, missing)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", plotters.DefaultCSV, "Training log to read (.csv, .tsv or .xlsx)")
	return cmd
}

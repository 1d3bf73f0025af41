// Package preview implements the preview command: show the detected columns,
// the inferred mapping, and a sample of the input rows before cleaning.
package preview

import (
	"fmt"

	"banksheets/cmd/root"
	"banksheets/internal/csvtable"
	"banksheets/internal/mapper"

	"github.com/spf13/cobra"
)

var sampleRows int

// Cmd is the preview command.
var Cmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a bank CSV and its inferred column mapping",
	Run:   previewFunc,
}

func init() {
	Cmd.Flags().IntVarP(&sampleRows, "rows", "n", 5, "Number of sample rows to display")
}

func previewFunc(cmd *cobra.Command, args []string) {
	log := root.Logger
	cfg := root.Cfg

	if root.SharedFlags.Input == "" {
		log.Fatal("Input CSV file is required (use --input)")
	}

	delimiter := []rune(cfg.CSV.Delimiter)[0]
	table, err := csvtable.Load(root.SharedFlags.Input, delimiter)
	if err != nil {
		log.Fatalf("Error loading CSV file: %v", err)
	}

	fmt.Printf("Detected columns: %v\n", table.Columns)

	mapping := mapper.InferMapping(table.Columns)
	fmt.Println("\nInferred mapping:")
	fmt.Printf("  date:        %q\n", mapping.Date)
	fmt.Printf("  description: %q\n", mapping.Description)
	fmt.Printf("  amount:      %q\n", mapping.Amount)
	fmt.Printf("  category:    %q\n", mapping.Category)

	n := sampleRows
	if n > len(table.Rows) {
		n = len(table.Rows)
	}
	fmt.Printf("\nSample rows (%d of %d):\n", n, len(table.Rows))
	for i := 0; i < n; i++ {
		row := table.Rows[i]
		fmt.Printf("  %d:", i+1)
		for _, col := range table.Columns {
			fmt.Printf(" %s=%q", col, row[col])
		}
		fmt.Println()
	}
}

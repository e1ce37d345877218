package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gocold/internal/excel"
	"gocold/internal/model"
	"gocold/internal/report"
)

var (
	takeoffInput   string
	takeoffColumn  string
	takeoffPDF     string
	takeoffProject string
	takeoffAuthor  string
)

var takeoffCmd = &cobra.Command{
	Use:   "takeoff",
	Short: "Compute reinforcement quantity takeoffs",
	Long: `Read a column schedule workbook and print a reinforcement quantity
takeoff per column: main bar and stirrup counts, lengths and weights.

Examples:
  # Terminal table for all columns
  gocold takeoff --input columns.xlsx

  # PDF report for one column
  gocold takeoff -i columns.xlsx --column C1 --pdf takeoff.pdf`,
	RunE: runTakeoff,
}

func init() {
	rootCmd.AddCommand(takeoffCmd)

	takeoffCmd.Flags().StringVarP(&takeoffInput, "input", "i", "", "Input xlsx schedule (required)")
	takeoffCmd.Flags().StringVarP(&takeoffColumn, "column", "c", "", "Take off only the named column")
	takeoffCmd.Flags().StringVar(&takeoffPDF, "pdf", "", "Also write a PDF report to this path")
	takeoffCmd.Flags().StringVar(&takeoffProject, "project", "", "Project name for the PDF title block")
	takeoffCmd.Flags().StringVar(&takeoffAuthor, "author", "", "Author for the PDF title block")

	takeoffCmd.MarkFlagRequired("input")
}

func runTakeoff(cmd *cobra.Command, args []string) error {
	columns, err := excel.ReadWorkbook(takeoffInput)
	if err != nil {
		return err
	}

	names, err := selectColumns(columns, takeoffColumn)
	if err != nil {
		return err
	}
	if !validateColumns(columns, names) {
		return fmt.Errorf("validation failed, takeoff not computed")
	}

	var takeoffs []report.Takeoff
	grandTotal := 0.0
	for _, name := range names {
		t := report.BuildTakeoff(columns[name], model.Point3{})
		takeoffs = append(takeoffs, t)
		grandTotal += t.TotalWeight
	}

	printTakeoffs(takeoffs, grandTotal)

	if takeoffPDF != "" {
		meta := report.Meta{Project: takeoffProject, Author: takeoffAuthor}
		if err := report.WritePDF(takeoffs, meta, takeoffPDF); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		fmt.Printf("PDF report written to %s\n", takeoffPDF)
	}
	return nil
}

func printTakeoffs(takeoffs []report.Takeoff, grandTotal float64) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          REINFORCEMENT QUANTITY TAKEOFF")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	for _, t := range takeoffs {
		fmt.Println()
		fmt.Printf("COLUMN %s\n", t.ColumnName)
		fmt.Println("───────────────────────────────────────────────────────────────")

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Floor\tMain bars\tBar wt (kg)\tStirrups\tStirrup wt (kg)\n")
		fmt.Fprintf(w, "  ─────\t─────────\t───────────\t────────\t───────────────\n")
		for _, f := range t.Floors {
			fmt.Fprintf(w, "  %s\t%d x Ø%.0f\t%.2f\t%d x Ø%.0f\t%.2f\n",
				f.FloorName,
				f.MainBarCount, f.MainBarDiameter, f.MainBarWeight,
				f.StirrupCount, f.StirrupDiameter, f.StirrupWeight)
		}
		w.Flush()
		fmt.Printf("  Column total: %.2f kg\n", t.TotalWeight)
	}

	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  TOTAL STEEL WEIGHT = %.2f kg  \n", grandTotal)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}

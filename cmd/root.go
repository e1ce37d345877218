package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gocold/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gocold",
	Short: "Reinforced Concrete Column Detailing Tool",
	Long: `gocold - Go Column Detailer

A CLI tool for generating reinforced concrete column details
(elevations and cross-sections) from tabular floor schedules.

This tool helps structural detailers produce:
  - Column elevation drawings with main bars, stirrups and lap splices
  - Cross-section drawings (rectangular and circular columns)
  - Tiered stirrup spacing per the edge/mid zone rule
  - Reinforcement quantity takeoffs (terminal and PDF)

Input is an xlsx workbook with a Settings sheet and one
ColumnData sheet per column; output is DXF, PNG or PDF.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocold v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Column Detailer                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for reinforced concrete column detailing")
		fmt.Println("  from tabular floor schedules.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • DXF column elevations with reinforcement and dimensions")
		fmt.Println("    • Per-floor cross-sections, rectangular and circular")
		fmt.Println("    • Tiered stirrup zoning and lap splice placement")
		fmt.Println("    • Quantity takeoff tables and PDF reports")
		fmt.Println()
		fmt.Println("  Use 'gocold --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

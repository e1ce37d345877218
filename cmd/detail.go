package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"gocold/internal/calc"
	"gocold/internal/diagram"
	"gocold/internal/drawing"
	"gocold/internal/excel"
	"gocold/internal/model"
	"gocold/internal/validate"
)

var (
	detailInput    string
	detailOutput   string
	detailColumn   string
	detailSections bool
	detailPreview  bool
	detailBaseX    float64
	detailBaseY    float64
)

var detailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Generate DXF column details from an xlsx schedule",
	Long: `Read a column schedule workbook, validate it and generate a DXF
drawing with one elevation per column (and optionally the per-floor
cross-sections).

The workbook needs a "Settings" sheet (beam depth, beam extension,
concrete cover, scale, column spacing, foundation depth, foundation
cover, section scale in cells B1..B8) and one "ColumnData<name>" sheet
per column with a floor table.

Examples:
  # All columns in the workbook
  gocold detail --input columns.xlsx --output details.dxf

  # One column, with cross-sections and a terminal preview
  gocold detail -i columns.xlsx -o C1.dxf --column C1 --sections --preview`,
	RunE: runDetail,
}

func init() {
	rootCmd.AddCommand(detailCmd)

	detailCmd.Flags().StringVarP(&detailInput, "input", "i", "", "Input xlsx schedule (required)")
	detailCmd.Flags().StringVarP(&detailOutput, "output", "o", "details.dxf", "Output DXF file")
	detailCmd.Flags().StringVarP(&detailColumn, "column", "c", "", "Detail only the named column")
	detailCmd.Flags().BoolVarP(&detailSections, "sections", "s", false, "Also draw per-floor cross-sections")
	detailCmd.Flags().BoolVarP(&detailPreview, "preview", "p", false, "Print an ASCII elevation preview")
	detailCmd.Flags().Float64Var(&detailBaseX, "base-x", 0, "X of the first insertion point (mm)")
	detailCmd.Flags().Float64Var(&detailBaseY, "base-y", 0, "Y of the first insertion point (mm)")

	detailCmd.MarkFlagRequired("input")
}

func runDetail(cmd *cobra.Command, args []string) error {
	columns, err := excel.ReadWorkbook(detailInput)
	if err != nil {
		return err
	}

	names, err := selectColumns(columns, detailColumn)
	if err != nil {
		return err
	}

	if !validateColumns(columns, names) {
		return fmt.Errorf("validation failed, drawing not generated")
	}

	d, err := drawing.New()
	if err != nil {
		return err
	}

	base := model.Point3{X: detailBaseX, Y: detailBaseY}
	for i, name := range names {
		data := columns[name]
		if err := drawing.Elevation(d, data, base, i+1); err != nil {
			return fmt.Errorf("column %s: %w", name, err)
		}

		if detailSections {
			sectionBase := base.Offset(0, -2*data.Settings.BeamDepth-data.Floors[0].ColumnLength, 0)
			if err := drawing.Sections(d, data, sectionBase); err != nil {
				return fmt.Errorf("column %s sections: %w", name, err)
			}
		}

		if detailPreview {
			geometry := calc.CalculateColumnGeometry(data.Floors, data.Settings, base)
			layout := calc.CalculateRebarLayout(data.Floors, geometry, data.Settings)
			fmt.Println(diagram.DrawASCIIElevation(geometry, layout))
		}

		base = base.Offset(widestLength(data)+data.Settings.ColumnSpacing, 0, 0)
	}

	if err := d.SaveAs(detailOutput); err != nil {
		return fmt.Errorf("save %s: %w", detailOutput, err)
	}

	fmt.Printf("Detailed %d column(s) to %s\n", len(names), detailOutput)
	return nil
}

// selectColumns resolves the requested column names in stable order.
func selectColumns(columns map[string]model.ColumnData, only string) ([]string, error) {
	if only != "" {
		if _, ok := columns[only]; !ok {
			return nil, fmt.Errorf("column %q not found in workbook", only)
		}
		return []string{only}, nil
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// validateColumns runs validation over the selection, printing findings.
// Warnings are advisory; any error fails the run.
func validateColumns(columns map[string]model.ColumnData, names []string) bool {
	ok := true
	for _, name := range names {
		result := validate.CheckColumn(columns[name])
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: column %s: %s\n", name, w)
		}
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: column %s: %s\n", name, e)
		}
		if !result.IsValid() {
			ok = false
		}
	}
	return ok
}

// widestLength returns the largest floor length of a column, used to space
// consecutive columns in the drawing.
func widestLength(data model.ColumnData) float64 {
	widest := 0.0
	for _, f := range data.Floors {
		if f.ColumnLength > widest {
			widest = f.ColumnLength
		}
	}
	return widest
}

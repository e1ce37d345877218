package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gocold/internal/calc"
	"gocold/internal/diagram"
	"gocold/internal/drawing"
	"gocold/internal/material"
	"gocold/internal/model"
)

var (
	sectionLength   float64
	sectionWidth    float64
	sectionRebarX   int
	sectionRebarY   int
	sectionDiameter float64
	sectionCover    float64
	sectionScale    float64
	sectionName     string
	sectionPNG      string
	sectionDXF      string
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Compute a single column cross-section",
	Long: `Compute the bar positions of one column cross-section from its
dimensions and reinforcement counts, without a workbook.

A width of 0 means a circular column of the given length (diameter);
circular columns place all X bars on one ring inside the cover.

Examples:
  # 400x400 column with a 4x4 cage of 20mm bars
  gocold section --length 400 --width 400 --rebar-x 4 --rebar-y 4 --diameter 20

  # Circular 500 column, 8 bars, exported to PNG
  gocold section --length 500 --width 0 --rebar-x 8 --diameter 25 --png section.png`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().Float64Var(&sectionLength, "length", 0, "Column length / diameter (mm, required)")
	sectionCmd.Flags().Float64Var(&sectionWidth, "width", 0, "Column width (mm, 0 for circular)")
	sectionCmd.Flags().IntVar(&sectionRebarX, "rebar-x", 2, "Bars along the length (total bars for circular)")
	sectionCmd.Flags().IntVar(&sectionRebarY, "rebar-y", 2, "Bars along the width")
	sectionCmd.Flags().Float64Var(&sectionDiameter, "diameter", 16, "Main bar diameter (mm)")
	sectionCmd.Flags().Float64Var(&sectionCover, "cover", 40, "Concrete cover (mm)")
	sectionCmd.Flags().Float64Var(&sectionScale, "scale", 1, "Section drawing scale")
	sectionCmd.Flags().StringVar(&sectionName, "name", "SECTION", "Section label")
	sectionCmd.Flags().StringVar(&sectionPNG, "png", "", "Export an image (png/svg/pdf by extension)")
	sectionCmd.Flags().StringVar(&sectionDXF, "dxf", "", "Export a DXF of the section")

	sectionCmd.MarkFlagRequired("length")
}

func runSection(cmd *cobra.Command, args []string) error {
	floor := model.FloorData{
		FloorName:     sectionName,
		ColumnLength:  sectionLength,
		ColumnWidth:   sectionWidth,
		RebarAmountX:  sectionRebarX,
		RebarAmountY:  sectionRebarY,
		RebarDiameter: sectionDiameter,
	}
	if sectionLength <= 0 {
		return fmt.Errorf("length must be positive")
	}
	if 2*sectionCover >= sectionLength {
		return fmt.Errorf("cover %.0f leaves no core in a %.0f section", sectionCover, sectionLength)
	}

	layout := calc.CalculateSectionLayout(floor, sectionCover, sectionScale)

	printSection(layout, floor)

	if sectionPNG != "" {
		if err := diagram.ExportSectionDiagram(layout, floor, sectionPNG); err != nil {
			return fmt.Errorf("export image: %w", err)
		}
		fmt.Printf("Section image written to %s\n", sectionPNG)
	}

	if sectionDXF != "" {
		if err := writeSectionDXF(floor, sectionDXF); err != nil {
			return fmt.Errorf("export dxf: %w", err)
		}
		fmt.Printf("Section DXF written to %s\n", sectionDXF)
	}
	return nil
}

func printSection(layout calc.SectionLayout, floor model.FloorData) {
	fmt.Println()
	if layout.IsCircular {
		fmt.Printf("CIRCULAR SECTION  Ø%.0f mm, %d x Ø%.0f bars\n",
			layout.Length, len(layout.BarPositions), floor.RebarDiameter)
	} else {
		fmt.Printf("RECTANGULAR SECTION  %.0f x %.0f mm, %d x Ø%.0f bars\n",
			layout.Length, layout.Width, len(layout.BarPositions), floor.RebarDiameter)
	}
	fmt.Println("───────────────────────────────────────────")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bar\tX (mm)\tY (mm)\n")
	for i, bar := range layout.BarPositions {
		fmt.Fprintf(w, "  %d\t%.1f\t%.1f\n", i+1, bar.X, bar.Y)
	}
	w.Flush()

	steelArea := float64(len(layout.BarPositions)) * material.BarArea(floor.RebarDiameter)
	fmt.Printf("  Total steel area: %.0f mm² (%.2f kg/m per bar)\n",
		steelArea, material.MassPerMetre(floor.RebarDiameter))
	fmt.Println()
}

// writeSectionDXF draws a single section centered at the origin.
func writeSectionDXF(floor model.FloorData, path string) error {
	d, err := drawing.New()
	if err != nil {
		return err
	}

	settings := model.ColumnSettings{
		ConcreteCover: sectionCover,
		SectionScale:  sectionScale,
	}
	data := model.ColumnData{
		Settings:   settings,
		Floors:     []model.FloorData{floor},
		ColumnName: sectionName,
	}
	if err := drawing.Sections(d, data, model.Point3{}); err != nil {
		return err
	}
	return d.SaveAs(path)
}

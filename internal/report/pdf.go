package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Meta carries the title-block fields of a takeoff report.
type Meta struct {
	Project string
	Author  string
	Title   string
	Notes   string
}

// WritePDF renders the takeoffs as an A4 reinforcement schedule report.
func WritePDF(takeoffs []Takeoff, meta Meta, path string) error {
	if meta.Title == "" {
		meta.Title = "Reinforcement Quantity Takeoff"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	for _, t := range takeoffs {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Column %s", t.ColumnName))
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "B", 9)
		writeRow(pdf, "Floor", "Main bars", "Bar wt (kg)", "Stirrups", "Stirrup wt (kg)")
		pdf.SetFont("Helvetica", "", 9)
		for _, f := range t.Floors {
			writeRow(pdf,
				f.FloorName,
				fmt.Sprintf("%d x O%.0f", f.MainBarCount, f.MainBarDiameter),
				fmt.Sprintf("%.2f", f.MainBarWeight),
				fmt.Sprintf("%d x O%.0f", f.StirrupCount, f.StirrupDiameter),
				fmt.Sprintf("%.2f", f.StirrupWeight),
			)
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 7, fmt.Sprintf("Column total: %.2f kg", t.TotalWeight))
		pdf.Ln(10)
	}

	if meta.Notes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}

	return pdf.OutputFileAndClose(path)
}

func writeRow(pdf *gofpdf.Fpdf, cols ...string) {
	widths := []float64{40, 38, 30, 38, 34}
	for i, c := range cols {
		w := 30.0
		if i < len(widths) {
			w = widths[i]
		}
		pdf.CellFormat(w, 6, c, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(6)
}

package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"gocold/internal/calc"
	"gocold/internal/model"
)

// ExportSectionDiagram exports a column cross-section diagram to an image
// file (png/svg/pdf by extension).
func ExportSectionDiagram(layout calc.SectionLayout, floor model.FloorData, filename string) error {
	p := plot.New()
	p.Title.Text = "Column Section " + floor.FloorName
	p.X.Label.Text = "Length (mm)"
	p.Y.Label.Text = "Width (mm)"

	if layout.IsCircular {
		if err := addCircleOutline(p, layout.Length); err != nil {
			return err
		}
	} else {
		outline := plotter.XYs{
			{X: 0, Y: 0},
			{X: layout.Length, Y: 0},
			{X: layout.Length, Y: layout.Width},
			{X: 0, Y: layout.Width},
			{X: 0, Y: 0},
		}
		line, err := plotter.NewLine(outline)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	// Main bars
	bars := make(plotter.XYs, len(layout.BarPositions))
	for i, b := range layout.BarPositions {
		bars[i] = plotter.XY{X: b.X, Y: b.Y}
	}
	scatter, err := plotter.NewScatter(bars)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 6 * vg.Inch
	height := 6 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// addCircleOutline approximates the circular column face with a polyline.
func addCircleOutline(p *plot.Plot, diameter float64) error {
	const segments = 64
	radius := diameter / 2

	pts := make(plotter.XYs, segments+1)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		pts[i] = plotter.XY{
			X: radius + radius*math.Cos(angle),
			Y: radius + radius*math.Sin(angle),
		}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)
	return nil
}

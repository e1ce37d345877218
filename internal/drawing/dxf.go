package drawing

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"gocold/internal/calc"
	"gocold/internal/model"
)

// Text heights (drawing units)
const (
	titleTextHeight = 5.0
	labelTextHeight = 3.0
	noteTextHeight  = 2.5
)

// New returns an empty drawing with the standard layer set registered.
func New() (*drawing.Drawing, error) {
	d := dxf.NewDrawing()
	for _, layer := range StandardLayers {
		if _, err := d.AddLayer(layer.Name, layer.Color, layer.LineType, false); err != nil {
			return nil, fmt.Errorf("add layer %s: %w", layer.Name, err)
		}
	}
	return d, nil
}

// Elevation draws the complete column elevation at the given insertion point:
// concrete outline (with foundation when a numeric depth is configured), main
// bars with diameter callouts, stirrup ticks, floor height dimensions and
// annotations.
func Elevation(d *drawing.Drawing, data model.ColumnData, base model.Point3, columnNumber int) error {
	geometry := calc.CalculateColumnGeometry(data.Floors, data.Settings, base)
	layout := calc.CalculateRebarLayout(data.Floors, geometry, data.Settings)

	if err := concreteOutline(d, data, geometry); err != nil {
		return err
	}
	if err := mainBars(d, layout); err != nil {
		return err
	}
	if err := stirrupTicks(d, layout, geometry); err != nil {
		return err
	}
	if err := dimensions(d, data, geometry); err != nil {
		return err
	}
	return annotations(d, data, geometry, columnNumber)
}

func concreteOutline(d *drawing.Drawing, data model.ColumnData, geometry calc.ColumnGeometry) error {
	if err := d.ChangeLayer(LayerConcrete); err != nil {
		return err
	}

	settings := data.Settings
	baseZ := geometry.BasePoint.Z

	if settings.FoundationDepth > 0 && !settings.FoundationSymbolic {
		foundation(d, geometry, settings)
	}

	for i, floor := range data.Floors {
		b := geometry.Boundaries[i]
		floorBase := geometry.FloorLevels[i]
		faceHeight := floor.TotalHeight - settings.BeamDepth

		// Column faces up to the beam soffit
		d.Line(b.Left, floorBase, baseZ, b.Left, floorBase+faceHeight, baseZ)
		d.Line(b.Right, floorBase, baseZ, b.Right, floorBase+faceHeight, baseZ)

		// Beam soffit and top, extended past the column faces
		beamY := floorBase + faceHeight
		beamLeft := b.Left - settings.BeamExtension
		beamRight := b.Right + settings.BeamExtension
		d.Line(beamLeft, beamY, baseZ, beamRight, beamY, baseZ)
		d.Line(beamLeft, beamY+settings.BeamDepth, baseZ, beamRight, beamY+settings.BeamDepth, baseZ)
	}

	return nil
}

func foundation(d *drawing.Drawing, geometry calc.ColumnGeometry, settings model.ColumnSettings) {
	first := geometry.Boundaries[0]
	top := geometry.BasePoint.Y
	bottom := top - settings.FoundationDepth
	left := first.Left - settings.BeamExtension
	right := first.Right + settings.BeamExtension

	d.LwPolyline(true,
		[]float64{left, top},
		[]float64{right, top},
		[]float64{right, bottom},
		[]float64{left, bottom},
	)
}

func mainBars(d *drawing.Drawing, layout calc.RebarLayout) error {
	if err := d.ChangeLayer(LayerRebarMain); err != nil {
		return err
	}
	for _, bar := range layout.MainBars {
		d.Line(bar.X, bar.StartY, 0, bar.X, bar.EndY, 0)
	}
	if err := d.ChangeLayer(LayerText); err != nil {
		return err
	}
	for _, bar := range layout.MainBars {
		mid := (bar.StartY + bar.EndY) / 2
		d.Text(fmt.Sprintf("%%%%C%.0f", bar.Diameter), bar.X+50, mid, 0, noteTextHeight)
	}
	return nil
}

// stirrupTicks draws each stirrup as a horizontal tick across the column
// faces of the floor it belongs to.
func stirrupTicks(d *drawing.Drawing, layout calc.RebarLayout, geometry calc.ColumnGeometry) error {
	if err := d.ChangeLayer(LayerRebarLinks); err != nil {
		return err
	}
	for _, s := range layout.Stirrups {
		b := boundaryAt(geometry, s.Y)
		d.Line(b.Left, s.Y, 0, b.Right, s.Y, 0)
	}
	return nil
}

// boundaryAt returns the boundary of the floor containing elevation y,
// falling back to the first floor for out-of-range values.
func boundaryAt(geometry calc.ColumnGeometry, y float64) calc.Boundary {
	for i := range geometry.Boundaries {
		if y >= geometry.FloorLevels[i] && y < geometry.FloorLevels[i+1] {
			return geometry.Boundaries[i]
		}
	}
	return geometry.Boundaries[0]
}

func dimensions(d *drawing.Drawing, data model.ColumnData, geometry calc.ColumnGeometry) error {
	if err := d.ChangeLayer(LayerDimensions); err != nil {
		return err
	}

	rightmost := geometry.Boundaries[0].Right
	for _, b := range geometry.Boundaries {
		if b.Right > rightmost {
			rightmost = b.Right
		}
	}
	dimX := rightmost + 100

	baseZ := geometry.BasePoint.Z
	for i := 1; i < len(geometry.FloorLevels); i++ {
		prev := geometry.FloorLevels[i-1]
		level := geometry.FloorLevels[i]
		d.Line(dimX, prev, baseZ, dimX, level, baseZ)
		d.Text(fmt.Sprintf("%.0f", level-prev), dimX+20, (prev+level)/2, baseZ, noteTextHeight)
	}
	return nil
}

func annotations(d *drawing.Drawing, data model.ColumnData, geometry calc.ColumnGeometry, columnNumber int) error {
	if err := d.ChangeLayer(LayerText); err != nil {
		return err
	}

	baseZ := geometry.BasePoint.Z
	top := geometry.FloorLevels[len(geometry.FloorLevels)-1]
	d.Text(fmt.Sprintf("COLUMN-%d", columnNumber), geometry.BasePoint.X, top+100, baseZ, titleTextHeight)

	for i, floor := range data.Floors {
		level := geometry.FloorLevels[i]
		d.Text(floor.FloorName, geometry.BasePoint.X-150, level+floor.TotalHeight/2, baseZ, labelTextHeight)
	}
	return nil
}

// Sections draws one cross-section per floor, stacked downward from the
// insertion point with 1.5 section lengths between them.
func Sections(d *drawing.Drawing, data model.ColumnData, base model.Point3) error {
	if err := d.ChangeLayer(LayerSections); err != nil {
		return err
	}

	currentY := base.Y
	for _, floor := range data.Floors {
		at := model.Point3{X: base.X, Y: currentY, Z: base.Z}
		if err := singleSection(d, floor, data.Settings, at); err != nil {
			return err
		}
		currentY -= floor.ColumnLength * 1.5
	}
	return nil
}

func singleSection(d *drawing.Drawing, floor model.FloorData, settings model.ColumnSettings, at model.Point3) error {
	scale := settings.SectionScale
	layout := calc.CalculateSectionLayout(floor, settings.ConcreteCover, scale)

	length := layout.Length * scale
	width := layout.Width * scale

	if layout.IsCircular {
		d.Circle(at.X, at.Y, at.Z, length/2)
	} else {
		left := at.X - length/2
		right := at.X + length/2
		bottom := at.Y - width/2
		top := at.Y + width/2
		d.LwPolyline(true,
			[]float64{left, bottom},
			[]float64{right, bottom},
			[]float64{right, top},
			[]float64{left, top},
		)
	}

	for _, bar := range layout.BarPositions {
		x := at.X - length/2 + bar.X*scale
		y := at.Y - width/2 + bar.Y*scale
		d.Circle(x, y, at.Z, floor.RebarDiameter*scale/2)
	}
	return nil
}

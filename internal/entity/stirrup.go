package entity

import (
	"math"

	"gocold/internal/calc"
	"gocold/internal/model"
)

// StirrupShape tags the two stirrup variants.
type StirrupShape int

const (
	StirrupRectangular StirrupShape = iota
	StirrupCircular
)

// Stirrup is a single transverse reinforcement loop at one elevation.
// Rectangular stirrups carry four explicit corners; circular stirrups are
// flattened to Segments evenly spaced ring points.
type Stirrup struct {
	Shape     StirrupShape
	Diameter  float64 // mm, bar diameter
	Elevation float64 // mm, Y-coordinate of the loop

	// Rectangular
	Width  float64 // mm
	Height float64 // mm

	// Circular
	ColumnDiameter float64 // mm
	Segments       int

	CenterX float64 // mm
	Corners []model.Point3
}

// NewRectangularStirrup builds a four-cornered stirrup of the given outer
// width and height centred at (centerX, elevation).
func NewRectangularStirrup(diameter, elevation, width, height, centerX float64) Stirrup {
	left := centerX - width/2
	right := centerX + width/2
	bottom := elevation - height/2
	top := elevation + height/2

	return Stirrup{
		Shape:     StirrupRectangular,
		Diameter:  diameter,
		Elevation: elevation,
		Width:     width,
		Height:    height,
		CenterX:   centerX,
		Corners: []model.Point3{
			{X: left, Y: bottom},
			{X: right, Y: bottom},
			{X: right, Y: top},
			{X: left, Y: top},
		},
	}
}

// NewCircularStirrup builds a ring stirrup for a circular column, flattened
// to the given number of segments (calc.DefaultSectionSegments when ≤ 0).
// The ring centreline sits half a bar diameter inside the column face.
func NewCircularStirrup(diameter, elevation, columnDiameter, centerX float64, segments int) Stirrup {
	if segments <= 0 {
		segments = calc.DefaultSectionSegments
	}
	radius := columnDiameter/2 - diameter/2

	corners := make([]model.Point3, 0, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		corners = append(corners, model.Point3{
			X: centerX + radius*math.Cos(angle),
			Y: elevation + radius*math.Sin(angle),
		})
	}

	return Stirrup{
		Shape:          StirrupCircular,
		Diameter:       diameter,
		Elevation:      elevation,
		ColumnDiameter: columnDiameter,
		Segments:       segments,
		CenterX:        centerX,
		Corners:        corners,
	}
}

// Perimeter returns the closed-loop length of the stirrup in mm, wrapping
// from the last corner back to the first.
func (s Stirrup) Perimeter() float64 {
	if len(s.Corners) < 2 {
		return 0
	}
	perimeter := 0.0
	for i := range s.Corners {
		p1 := s.Corners[i]
		p2 := s.Corners[(i+1)%len(s.Corners)]
		dx := p2.X - p1.X
		dy := p2.Y - p1.Y
		perimeter += math.Sqrt(dx*dx + dy*dy)
	}
	return perimeter
}

// StirrupPattern is the complete stirrup schedule of a column.
type StirrupPattern struct {
	Stirrups    []Stirrup
	Diameter    float64 // mm
	EdgeSpacing float64 // mm
	MidSpacing  float64 // mm
}

// AddStirrup appends a stirrup to the pattern.
func (p *StirrupPattern) AddStirrup(s Stirrup) {
	p.Stirrups = append(p.Stirrups, s)
}

// StirrupsInRange returns the stirrups whose elevation lies in [startY, endY].
func (p *StirrupPattern) StirrupsInRange(startY, endY float64) []Stirrup {
	var in []Stirrup
	for _, s := range p.Stirrups {
		if s.Elevation >= startY && s.Elevation <= endY {
			in = append(in, s)
		}
	}
	return in
}

// TotalLength returns the summed perimeter of all stirrups in mm.
func (p *StirrupPattern) TotalLength() float64 {
	total := 0.0
	for _, s := range p.Stirrups {
		total += s.Perimeter()
	}
	return total
}

// TotalWeight returns the pattern weight in kg for the given density (kg/m³).
func (p *StirrupPattern) TotalWeight(density float64) float64 {
	return barWeight(p.Diameter, p.TotalLength(), density)
}

// GenerateRectangular rebuilds the pattern for one floor of a rectangular
// column, instantiating a full stirrup entity at every elevation the tiered
// zoning rule produces. Elevations come from calc.StirrupZonePositions, so
// this path and the layout calculator always agree on stirrup positions.
func (p *StirrupPattern) GenerateRectangular(startY, height, beamDepth, width, columnWidth, centerX float64) {
	p.Stirrups = p.Stirrups[:0]
	for _, zp := range calc.StirrupZonePositions(startY, height, beamDepth, p.EdgeSpacing, p.MidSpacing) {
		p.AddStirrup(NewRectangularStirrup(p.Diameter, zp.Y, width, columnWidth, centerX))
	}
}

// GenerateCircular is the circular-column counterpart of GenerateRectangular.
func (p *StirrupPattern) GenerateCircular(startY, height, beamDepth, columnDiameter, centerX float64) {
	p.Stirrups = p.Stirrups[:0]
	for _, zp := range calc.StirrupZonePositions(startY, height, beamDepth, p.EdgeSpacing, p.MidSpacing) {
		p.AddStirrup(NewCircularStirrup(p.Diameter, zp.Y, columnDiameter, centerX, calc.DefaultSectionSegments))
	}
}

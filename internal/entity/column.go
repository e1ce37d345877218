package entity

import (
	"math"

	"gocold/internal/model"
)

// Column is the entity representation of a structural column: a named stack
// of floors above a base point.
type Column struct {
	Name      string
	Floors    []*ColumnFloor
	BasePoint model.Point3
	Settings  *model.ColumnSettings
}

// NewColumn returns an empty column at the origin.
func NewColumn(name string) *Column {
	return &Column{Name: name}
}

// AddFloor appends a floor to the top of the column.
func (c *Column) AddFloor(f *ColumnFloor) {
	c.Floors = append(c.Floors, f)
}

// TotalHeight returns the summed floor heights in mm.
func (c *Column) TotalHeight() float64 {
	total := 0.0
	for _, f := range c.Floors {
		total += f.Height
	}
	return total
}

// FloorLevels returns the Y-coordinate of each floor level, base first.
func (c *Column) FloorLevels() []float64 {
	levels := make([]float64, 0, len(c.Floors)+1)
	levels = append(levels, c.BasePoint.Y)
	current := c.BasePoint.Y
	for _, f := range c.Floors {
		current += f.Height
		levels = append(levels, current)
	}
	return levels
}

// FloorBoundaries returns the left/right X extents of each floor, symmetric
// about the column centreline.
func (c *Column) FloorBoundaries() [][2]float64 {
	boundaries := make([][2]float64, 0, len(c.Floors))
	for _, f := range c.Floors {
		boundaries = append(boundaries, [2]float64{
			c.BasePoint.X - f.Length/2,
			c.BasePoint.X + f.Length/2,
		})
	}
	return boundaries
}

// ColumnFloor is one floor of a column with its reinforcement attached.
type ColumnFloor struct {
	Name   string
	Height float64 // mm
	Length float64 // mm
	Width  float64 // mm, 0 for circular

	Reinforcement *BarSet
	Stirrups      *StirrupPattern
}

// IsCircular reports whether the floor section is circular (zero width).
func (f *ColumnFloor) IsCircular() bool {
	return f.Width == 0
}

// CrossSectionArea returns the gross concrete area in mm².
func (f *ColumnFloor) CrossSectionArea() float64 {
	if f.IsCircular() {
		r := f.Length / 2
		return math.Pi * r * r
	}
	return f.Length * f.Width
}

// ColumnSection is the cross-section entity of one floor, used for section
// drawings and bar schedules.
type ColumnSection struct {
	Floor *ColumnFloor
	Scale float64
}

// BarPositions returns the main bar centres for the section view.
//
// Rectangular sections walk the RebarAmountX × RebarAmountY grid but skip the
// four corner points, which the edge bars of the elevation view already
// account for. This is the perimeter-oriented entity rule; the calculator's
// dense grid in calc.CalculateSectionLayout intentionally keeps the corners
// (the two placements serve different consumers and are both part of the
// drawing contract).
func (s *ColumnSection) BarPositions(cover float64) []model.Point3 {
	if s.Floor.Reinforcement == nil {
		return nil
	}
	if s.Floor.IsCircular() {
		return s.circularPositions(cover)
	}
	return s.rectangularPositions(cover)
}

func (s *ColumnSection) circularPositions(cover float64) []model.Point3 {
	count := s.Floor.Reinforcement.MainBarCount()
	if count == 0 {
		return nil
	}

	radius := s.Floor.Length/2 - cover
	centerX := s.Floor.Length / 2
	centerY := centerX
	if s.Floor.Width > 0 {
		centerY = s.Floor.Width / 2
	}

	step := 2 * math.Pi / float64(count)
	positions := make([]model.Point3, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i) * step
		positions = append(positions, model.Point3{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		})
	}
	return positions
}

func (s *ColumnSection) rectangularPositions(cover float64) []model.Point3 {
	xCount := s.Floor.Reinforcement.MainBarsX
	yCount := s.Floor.Reinforcement.MainBarsY
	if xCount <= 1 || yCount <= 1 {
		return nil
	}

	xSpacing := (s.Floor.Length - 2*cover) / float64(xCount-1)
	ySpacing := (s.Floor.Width - 2*cover) / float64(yCount-1)

	var positions []model.Point3
	for i := 0; i < xCount; i++ {
		for j := 0; j < yCount; j++ {
			// Corners are covered by the edge bars.
			if (i == 0 || i == xCount-1) && (j == 0 || j == yCount-1) {
				continue
			}
			positions = append(positions, model.Point3{
				X: cover + float64(i)*xSpacing,
				Y: cover + float64(j)*ySpacing,
			})
		}
	}
	return positions
}

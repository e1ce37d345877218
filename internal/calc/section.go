package calc

import (
	"math"

	"gocold/internal/model"
)

// BarPoint is a 2D bar centre in section-local coordinates (origin at the
// lower-left corner of the section bounding box).
type BarPoint struct {
	X float64 // mm
	Y float64 // mm
}

// SectionLayout describes the cross-section view of one floor: outer
// dimensions and main bar centres, to be scaled by the rendering layer.
type SectionLayout struct {
	Length       float64 // mm (diameter for circular sections)
	Width        float64 // mm, equals Length when the section is circular
	Scale        float64
	IsCircular   bool
	BarPositions []BarPoint
}

// CalculateSectionLayout computes the 2D bar placement for a floor's
// cross-section. A zero column width selects the circular layout, with the
// length field carrying the diameter.
//
// Rectangular sections use the full RebarAmountX × RebarAmountY grid spread
// evenly between cover and dimension−cover. The grid deliberately includes
// the corner points; quantity checks use the perimeter bar count instead
// (see validate.ExpectedBarCount), and the perimeter-only placement lives in
// entity.ColumnSection.
//
// Precondition: RebarAmountX ≥ 2 and RebarAmountY ≥ 2 for rectangular
// sections (enforced upstream by validation), otherwise the grid spacing
// degenerates.
func CalculateSectionLayout(floor model.FloorData, cover, scale float64) SectionLayout {
	length := floor.ColumnLength
	width := floor.ColumnWidth
	if floor.IsCircular() {
		width = length
	}

	return SectionLayout{
		Length:       length,
		Width:        width,
		Scale:        scale,
		IsCircular:   floor.IsCircular(),
		BarPositions: sectionBarPositions(floor, cover),
	}
}

func sectionBarPositions(floor model.FloorData, cover float64) []BarPoint {
	if floor.IsCircular() {
		return circularBarPositions(floor, cover)
	}
	return rectangularGridPositions(floor, cover)
}

// rectangularGridPositions fills the dense bar grid of a rectangular section.
func rectangularGridPositions(floor model.FloorData, cover float64) []BarPoint {
	length := floor.ColumnLength
	width := floor.ColumnWidth

	xSpacing := (length - 2*cover) / float64(floor.RebarAmountX-1)
	ySpacing := (width - 2*cover) / float64(floor.RebarAmountY-1)

	var positions []BarPoint
	for i := 0; i < floor.RebarAmountX; i++ {
		for j := 0; j < floor.RebarAmountY; j++ {
			positions = append(positions, BarPoint{
				X: cover + float64(i)*xSpacing,
				Y: cover + float64(j)*ySpacing,
			})
		}
	}
	return positions
}

// circularBarPositions spreads RebarAmountX bars evenly around a ring at
// cover distance inside the column face.
func circularBarPositions(floor model.FloorData, cover float64) []BarPoint {
	radius := floor.ColumnLength/2 - cover
	center := floor.ColumnLength / 2
	step := 2 * math.Pi / float64(floor.RebarAmountX)

	var positions []BarPoint
	for i := 0; i < floor.RebarAmountX; i++ {
		angle := float64(i) * step
		positions = append(positions, BarPoint{
			X: center + radius*math.Cos(angle),
			Y: center + radius*math.Sin(angle),
		})
	}
	return positions
}

// Package model defines the typed input records for column detailing.
// All dimensions are in millimetres unless noted otherwise.
package model

import "math"

// Point3 represents a 3D insertion point in drawing coordinates.
type Point3 struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
	Z float64 `json:"z"` // mm
}

// Offset returns a copy of the point shifted by the given deltas.
func (p Point3) Offset(dx, dy, dz float64) Point3 {
	return Point3{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// ColumnSettings holds the global drawing parameters shared by every floor
// of a column. The record is read-only once loaded.
type ColumnSettings struct {
	BeamDepth       float64 `json:"beam_depth"`       // mm
	BeamExtension   float64 `json:"beam_extension"`   // mm past the column face
	ConcreteCover   float64 `json:"concrete_cover"`   // mm
	Scale           float64 `json:"scale"`            // elevation drawing scale
	ColumnSpacing   float64 `json:"column_spacing"`   // mm between drawn columns
	FoundationDepth float64 `json:"foundation_depth"` // mm
	FoundationCover float64 `json:"foundation_cover"` // mm
	SectionScale    float64 `json:"section_scale"`    // cross-section drawing scale

	// FoundationSymbolic is set when the schedule gives a textual placeholder
	// (e.g. "strip footing") instead of a numeric foundation depth.
	FoundationSymbolic bool `json:"foundation_symbolic"`
}

// FloorData holds the structural parameters of a single floor.
// Floors are ordered bottom-to-top within a column.
type FloorData struct {
	TotalHeight  float64 `json:"total_height"`  // mm, floor-to-floor
	ColumnLength float64 `json:"column_length"` // mm
	ColumnWidth  float64 `json:"column_width"`  // mm, 0 means circular section
	FloorName    string  `json:"floor_name"`

	RebarAmount   int     `json:"rebar_amount"`   // total main bars
	RebarAmountX  int     `json:"rebar_amount_x"` // bars along the length axis
	RebarAmountY  int     `json:"rebar_amount_y"` // bars along the width axis
	RebarDiameter float64 `json:"rebar_diameter"` // mm

	EdgeStirrupSpacing float64 `json:"edge_stirrup_spacing"` // mm
	MidStirrupSpacing  float64 `json:"mid_stirrup_spacing"`  // mm
	StirrupDiameter    float64 `json:"stirrup_diameter"`     // mm

	SectionNumber int `json:"section_number,omitempty"`
}

// IsCircular reports whether the floor has a circular cross-section.
// A zero width is the sole sentinel for circular columns; the ColumnLength
// field then carries the diameter.
func (f FloorData) IsCircular() bool {
	return f.ColumnWidth == 0
}

// SectionArea returns the gross cross-sectional area in mm².
func (f FloorData) SectionArea() float64 {
	if f.IsCircular() {
		r := f.ColumnLength / 2
		return math.Pi * r * r
	}
	return f.ColumnLength * f.ColumnWidth
}

// ColumnData aggregates one settings record with the ordered floor list of a
// single physical column. Constructed once from input and consumed read-only.
type ColumnData struct {
	Settings   ColumnSettings `json:"settings"`
	Floors     []FloorData    `json:"floors"`
	ColumnName string         `json:"column_name"`
}

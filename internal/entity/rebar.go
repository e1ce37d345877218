// Package entity wraps the raw calculator output in object representations
// carrying engineering-relevant derived quantities (lengths, weights,
// perimeters) for quantity takeoff and section generation.
package entity

import (
	"math"

	"gocold/internal/calc"
	"gocold/internal/model"
)

const coincidentTol = 0.001 // mm, for axis-alignment checks

// Rebar is a single straight reinforcement bar between two 3D points.
type Rebar struct {
	Diameter float64 // mm
	Start    model.Point3
	End      model.Point3
	Grade    string // steel grade, e.g. "500"
}

// Length returns the bar length in mm.
func (r Rebar) Length() float64 {
	dx := r.End.X - r.Start.X
	dy := r.End.Y - r.Start.Y
	dz := r.End.Z - r.Start.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// IsVertical reports whether the bar runs parallel to the Y axis.
func (r Rebar) IsVertical() bool {
	return math.Abs(r.Start.X-r.End.X) < coincidentTol &&
		math.Abs(r.Start.Z-r.End.Z) < coincidentTol
}

// IsHorizontal reports whether the bar lies in a horizontal plane.
func (r Rebar) IsHorizontal() bool {
	return math.Abs(r.Start.Y-r.End.Y) < coincidentTol
}

// Weight returns the bar weight in kg for the given steel density (kg/m³).
func (r Rebar) Weight(density float64) float64 {
	return barWeight(r.Diameter, r.Length(), density)
}

// barWeight converts a bar of diameter d (mm) and length l (mm) to kg.
func barWeight(d, l, density float64) float64 {
	area := math.Pi * (d / 2) * (d / 2) // mm²
	volume := area * l / 1e9            // mm³ → m³
	return volume * density
}

// BarSet is the complete bar inventory of a column: main bars plus links,
// with the X/Y grid counts the main bars were placed with.
type BarSet struct {
	MainBars []Rebar
	Links    []Rebar

	MainBarsX int
	MainBarsY int
}

// MainBarCount returns the number of main bars.
func (s *BarSet) MainBarCount() int {
	return len(s.MainBars)
}

// AddMainBar appends a main bar.
func (s *BarSet) AddMainBar(r Rebar) {
	s.MainBars = append(s.MainBars, r)
}

// AddLink appends a link/stirrup bar.
func (s *BarSet) AddLink(r Rebar) {
	s.Links = append(s.Links, r)
}

// TotalLength returns the summed length of all bars and links in mm.
func (s *BarSet) TotalLength() float64 {
	total := 0.0
	for _, b := range s.MainBars {
		total += b.Length()
	}
	for _, l := range s.Links {
		total += l.Length()
	}
	return total
}

// TotalWeight returns the weight of all bars and links in kg for the given
// density (kg/m³). Pass calc.SteelDensity for normal reinforcement steel.
func (s *BarSet) TotalWeight(density float64) float64 {
	total := 0.0
	for _, b := range s.MainBars {
		total += b.Weight(density)
	}
	for _, l := range s.Links {
		total += l.Weight(density)
	}
	return total
}

// TotalSteelWeight is TotalWeight at the standard steel density.
func (s *BarSet) TotalSteelWeight() float64 {
	return s.TotalWeight(calc.SteelDensity)
}

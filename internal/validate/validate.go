// Package validate rejects malformed schedule data before it reaches the
// detailing engine. Range violations and inconsistent bar counts are blocking
// errors; questionable but workable values become advisory warnings.
package validate

import (
	"fmt"

	"gocold/internal/material"
	"gocold/internal/model"
)

// Range is an inclusive min/max bound in mm.
type Range struct {
	Min float64
	Max float64
}

// Limits are the fixed allowable ranges per field type (mm).
var Limits = map[string]Range{
	"column_length":    {Min: 100, Max: 5000},
	"column_width":     {Min: 0, Max: 5000}, // 0 for circular
	"floor_height":     {Min: 2000, Max: 50000},
	"rebar_diameter":   {Min: 6, Max: 50},
	"stirrup_diameter": {Min: 6, Max: 16},
	"concrete_cover":   {Min: 20, Max: 100},
	"spacing":          {Min: 50, Max: 500},
}

// Warning thresholds
const (
	minEdgeSpacingWarn = 75  // mm, tighter edge spacing is flagged
	maxMidSpacingWarn  = 300 // mm, looser mid spacing is flagged
)

// Result collects validation findings. Any error makes the data invalid;
// warnings never block calculation.
type Result struct {
	Errors   []string
	Warnings []string
}

// IsValid reports whether the data passed with no blocking errors.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// inRange checks a value against a named limits entry. Unknown names pass.
func inRange(value float64, name string) bool {
	lim, ok := Limits[name]
	if !ok {
		return true
	}
	return value >= lim.Min && value <= lim.Max
}

// CheckColumn validates one column's settings and floors.
func CheckColumn(data model.ColumnData) Result {
	var result Result

	checkSettings(data.Settings, &result)
	for i, floor := range data.Floors {
		checkFloor(floor, i, &result)
		if data.Settings.BeamDepth >= floor.TotalHeight {
			result.errorf("floor %d: beam depth %.0f leaves no usable column height (floor height %.0f)",
				i+1, data.Settings.BeamDepth, floor.TotalHeight)
		}
		checkFloorWarnings(floor, data.Settings, i, &result)
	}
	if len(data.Floors) == 0 {
		result.errorf("column %s has no floors", data.ColumnName)
	}

	return result
}

func checkSettings(s model.ColumnSettings, result *Result) {
	if s.BeamDepth <= 0 {
		result.errorf("beam depth %.0f must be positive", s.BeamDepth)
	}
	if !inRange(s.ConcreteCover, "concrete_cover") {
		result.errorf("concrete cover %.0f is out of range [%.0f, %.0f]",
			s.ConcreteCover, Limits["concrete_cover"].Min, Limits["concrete_cover"].Max)
	}
	if s.Scale <= 0 {
		result.errorf("drawing scale %.2f must be positive", s.Scale)
	}
	if s.SectionScale <= 0 {
		result.errorf("section scale %.2f must be positive", s.SectionScale)
	}
}

func checkFloor(f model.FloorData, index int, result *Result) {
	n := index + 1

	if !inRange(f.TotalHeight, "floor_height") {
		result.errorf("floor %d: height %.0f is out of range [%.0f, %.0f]",
			n, f.TotalHeight, Limits["floor_height"].Min, Limits["floor_height"].Max)
	}
	if !inRange(f.ColumnLength, "column_length") {
		result.errorf("floor %d: column length %.0f is out of range [%.0f, %.0f]",
			n, f.ColumnLength, Limits["column_length"].Min, Limits["column_length"].Max)
	}
	if f.ColumnWidth > 0 && !inRange(f.ColumnWidth, "column_width") {
		result.errorf("floor %d: column width %.0f is out of range [%.0f, %.0f]",
			n, f.ColumnWidth, Limits["column_width"].Min, Limits["column_width"].Max)
	}
	if !inRange(f.RebarDiameter, "rebar_diameter") {
		result.errorf("floor %d: rebar diameter %.0f is out of range [%.0f, %.0f]",
			n, f.RebarDiameter, Limits["rebar_diameter"].Min, Limits["rebar_diameter"].Max)
	}
	if !inRange(f.StirrupDiameter, "stirrup_diameter") {
		result.errorf("floor %d: stirrup diameter %.0f is out of range [%.0f, %.0f]",
			n, f.StirrupDiameter, Limits["stirrup_diameter"].Min, Limits["stirrup_diameter"].Max)
	}
	if !inRange(f.EdgeStirrupSpacing, "spacing") {
		result.errorf("floor %d: edge stirrup spacing %.0f is out of range [%.0f, %.0f]",
			n, f.EdgeStirrupSpacing, Limits["spacing"].Min, Limits["spacing"].Max)
	}
	if !inRange(f.MidStirrupSpacing, "spacing") {
		result.errorf("floor %d: mid stirrup spacing %.0f is out of range [%.0f, %.0f]",
			n, f.MidStirrupSpacing, Limits["spacing"].Min, Limits["spacing"].Max)
	}

	checkBarCounts(f, n, result)
}

// checkBarCounts enforces the count consistency invariant and the minimum
// counts that keep the downstream grid spacing non-degenerate.
func checkBarCounts(f model.FloorData, n int, result *Result) {
	if f.IsCircular() {
		if f.RebarAmountX < 1 {
			result.errorf("floor %d: circular section needs at least 1 bar, got %d", n, f.RebarAmountX)
		}
		return
	}

	if f.RebarAmountX < 2 || f.RebarAmountY < 2 {
		result.errorf("floor %d: rectangular section needs at least 2 bars per axis, got %d x %d",
			n, f.RebarAmountX, f.RebarAmountY)
		return
	}

	expected := ExpectedBarCount(f.RebarAmountX, f.RebarAmountY)
	if f.RebarAmount != expected {
		result.errorf("floor %d: rebar amount mismatch: expected %d from %d x %d grid, got %d",
			n, expected, f.RebarAmountX, f.RebarAmountY, f.RebarAmount)
	}
}

func checkFloorWarnings(f model.FloorData, s model.ColumnSettings, index int, result *Result) {
	n := index + 1

	if 2*s.ConcreteCover >= f.ColumnLength {
		result.warnf("floor %d: concrete cover %.0f may be too large for column length %.0f",
			n, s.ConcreteCover, f.ColumnLength)
	}
	if f.EdgeStirrupSpacing < minEdgeSpacingWarn {
		result.warnf("floor %d: edge stirrup spacing %.0f is very small", n, f.EdgeStirrupSpacing)
	}
	if f.MidStirrupSpacing > maxMidSpacingWarn {
		result.warnf("floor %d: mid stirrup spacing %.0f is large", n, f.MidStirrupSpacing)
	}
	if !material.IsStandardBarDiameter(f.RebarDiameter) {
		result.warnf("floor %d: rebar diameter %.1f is not a standard bar size", n, f.RebarDiameter)
	}
	if !material.IsStandardBarDiameter(f.StirrupDiameter) {
		result.warnf("floor %d: stirrup diameter %.1f is not a standard bar size", n, f.StirrupDiameter)
	}
}

// ExpectedBarCount returns the perimeter bar count implied by an X/Y grid:
// the full top and bottom rows plus the side bars not already counted.
func ExpectedBarCount(amountX, amountY int) int {
	switch {
	case amountX > 0 && amountY > 0:
		side := amountY - 2
		if side < 0 {
			side = 0
		}
		return 2*amountX + 2*side
	case amountX > 0:
		return amountX
	default:
		return 0
	}
}

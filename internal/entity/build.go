package entity

import (
	"math"

	"gocold/internal/calc"
	"gocold/internal/material"
	"gocold/internal/model"
)

// BuildColumn assembles the full entity tree for one column: per-floor bar
// sets from the layout calculator plus stirrup patterns with complete loop
// geometry. Used by quantity takeoff and section generation; the drawing
// layer can work from the raw calc output alone.
func BuildColumn(data model.ColumnData, base model.Point3) *Column {
	column := NewColumn(data.ColumnName)
	column.BasePoint = base
	settings := data.Settings
	column.Settings = &settings

	geometry := calc.CalculateColumnGeometry(data.Floors, data.Settings, base)
	layout := calc.CalculateRebarLayout(data.Floors, geometry, data.Settings)

	for i, fd := range data.Floors {
		baseY := geometry.FloorLevels[i]

		floor := &ColumnFloor{
			Name:   fd.FloorName,
			Height: fd.TotalHeight,
			Length: fd.ColumnLength,
			Width:  fd.ColumnWidth,
		}

		floor.Reinforcement = floorBarSet(fd, layout, baseY)
		floor.Stirrups = floorStirrups(fd, data.Settings, baseY, base.X)

		column.AddFloor(floor)
	}

	return column
}

// floorBarSet collects the layout's main bars belonging to one floor. Bars
// carry the floor base level as their start Y, which identifies the floor.
func floorBarSet(fd model.FloorData, layout calc.RebarLayout, baseY float64) *BarSet {
	set := &BarSet{MainBarsX: fd.RebarAmountX, MainBarsY: fd.RebarAmountY}
	for _, mb := range layout.MainBars {
		if math.Abs(mb.StartY-baseY) > coincidentTol {
			continue
		}
		set.AddMainBar(Rebar{
			Diameter: mb.Diameter,
			Start:    model.Point3{X: mb.X, Y: mb.StartY},
			End:      model.Point3{X: mb.X, Y: mb.EndY},
			Grade:    material.DefaultGrade.Name,
		})
	}
	return set
}

// floorStirrups generates the floor's stirrup pattern, sized to the bar cage
// (section dimensions minus cover on both faces).
func floorStirrups(fd model.FloorData, settings model.ColumnSettings, baseY, centerX float64) *StirrupPattern {
	pattern := &StirrupPattern{
		Diameter:    fd.StirrupDiameter,
		EdgeSpacing: fd.EdgeStirrupSpacing,
		MidSpacing:  fd.MidStirrupSpacing,
	}

	if fd.IsCircular() {
		pattern.GenerateCircular(baseY, fd.TotalHeight, settings.BeamDepth,
			fd.ColumnLength-2*settings.ConcreteCover, centerX)
		return pattern
	}

	loopWidth := fd.ColumnLength - 2*settings.ConcreteCover
	loopHeight := fd.ColumnWidth - 2*settings.ConcreteCover
	pattern.GenerateRectangular(baseY, fd.TotalHeight, settings.BeamDepth,
		loopWidth, loopHeight, centerX)
	return pattern
}

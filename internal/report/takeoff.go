// Package report aggregates reinforcement quantities from the entity model
// into takeoff summaries and renders them as PDF.
package report

import (
	"gocold/internal/calc"
	"gocold/internal/entity"
	"gocold/internal/model"
)

// FloorTakeoff is the reinforcement quantity summary of one floor.
type FloorTakeoff struct {
	FloorName string

	MainBarCount    int
	MainBarDiameter float64 // mm
	MainBarLength   float64 // mm, summed
	MainBarWeight   float64 // kg

	StirrupCount    int
	StirrupDiameter float64 // mm
	StirrupLength   float64 // mm, summed perimeters
	StirrupWeight   float64 // kg
}

// Takeoff is the full quantity takeoff of one column.
type Takeoff struct {
	ColumnName  string
	Floors      []FloorTakeoff
	TotalWeight float64 // kg
}

// BuildTakeoff computes the quantity takeoff for one column schedule.
func BuildTakeoff(data model.ColumnData, base model.Point3) Takeoff {
	column := entity.BuildColumn(data, base)

	takeoff := Takeoff{ColumnName: data.ColumnName}
	for i, floor := range column.Floors {
		ft := FloorTakeoff{
			FloorName:       floor.Name,
			MainBarCount:    floor.Reinforcement.MainBarCount(),
			MainBarDiameter: data.Floors[i].RebarDiameter,
			MainBarLength:   floor.Reinforcement.TotalLength(),
			MainBarWeight:   floor.Reinforcement.TotalWeight(calc.SteelDensity),
			StirrupCount:    len(floor.Stirrups.Stirrups),
			StirrupDiameter: floor.Stirrups.Diameter,
			StirrupLength:   floor.Stirrups.TotalLength(),
			StirrupWeight:   floor.Stirrups.TotalWeight(calc.SteelDensity),
		}
		takeoff.Floors = append(takeoff.Floors, ft)
		takeoff.TotalWeight += ft.MainBarWeight + ft.StirrupWeight
	}
	return takeoff
}

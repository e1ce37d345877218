package calc

import (
	"gocold/internal/model"
)

// Boundary holds the left/right X extents of a column at one floor.
type Boundary struct {
	Left  float64 // mm
	Right float64 // mm
}

// ColumnGeometry is the derived outline of a column: floor levels and
// per-floor horizontal boundaries. Computed once per column; immutable.
type ColumnGeometry struct {
	BasePoint    model.Point3
	TotalHeight  float64    // mm
	FloorHeights []float64  // mm, one per floor
	FloorLevels  []float64  // mm, len(floors)+1 strictly increasing Y levels
	Boundaries   []Boundary // one per floor, symmetric about BasePoint.X
}

// MainBar is a single longitudinal bar in elevation view.
type MainBar struct {
	X        float64 // mm
	StartY   float64 // mm
	EndY     float64 // mm
	Diameter float64 // mm
}

// StirrupPosition is a single stirrup elevation with its spacing zone.
type StirrupPosition struct {
	Y        float64 // mm
	Zone     Zone
	Diameter float64 // mm
}

// LapSplice describes a lap at a floor-to-floor transition.
type LapSplice struct {
	Y        float64 // mm, centre of the splice
	Length   float64 // mm
	Diameter float64 // mm
}

// RebarLayout is the complete reinforcement layout of a column in elevation:
// flat ordered sequences accumulated floor by floor. Floors contribute
// independently; shared boundaries are not deduplicated.
type RebarLayout struct {
	MainBars []MainBar
	Stirrups []StirrupPosition
	Laps     []LapSplice
}

// CalculateColumnGeometry derives the column outline from the ordered floor
// list. Each floor's boundaries use that floor's own length, so columns whose
// section changes between floors produce a stepped outline.
//
// Precondition: at least one floor with positive dimensions.
func CalculateColumnGeometry(floors []model.FloorData, settings model.ColumnSettings, base model.Point3) ColumnGeometry {
	heights := make([]float64, len(floors))
	total := 0.0
	for i, f := range floors {
		heights[i] = f.TotalHeight
		total += f.TotalHeight
	}

	levels := make([]float64, 0, len(floors)+1)
	levels = append(levels, base.Y)
	current := base.Y
	for _, h := range heights {
		current += h
		levels = append(levels, current)
	}

	boundaries := make([]Boundary, len(floors))
	for i, f := range floors {
		boundaries[i] = Boundary{
			Left:  base.X - f.ColumnLength/2,
			Right: base.X + f.ColumnLength/2,
		}
	}

	return ColumnGeometry{
		BasePoint:    base,
		TotalHeight:  total,
		FloorHeights: heights,
		FloorLevels:  levels,
		Boundaries:   boundaries,
	}
}

// CalculateRebarLayout derives main bar, stirrup and lap-splice placement for
// the whole column, iterating floors bottom-to-top. Laps are placed at every
// floor-to-floor transition, centred half a beam depth below the next floor's
// base level.
func CalculateRebarLayout(floors []model.FloorData, geometry ColumnGeometry, settings model.ColumnSettings) RebarLayout {
	var layout RebarLayout

	currentY := geometry.BasePoint.Y

	for i, floor := range floors {
		layout.MainBars = append(layout.MainBars,
			mainBarPositions(floor, geometry.Boundaries[i], currentY, floor.TotalHeight, settings.ConcreteCover)...)

		for _, zp := range StirrupZonePositions(currentY, floor.TotalHeight, settings.BeamDepth,
			floor.EdgeStirrupSpacing, floor.MidStirrupSpacing) {
			layout.Stirrups = append(layout.Stirrups, StirrupPosition{
				Y:        zp.Y,
				Zone:     zp.Zone,
				Diameter: floor.StirrupDiameter,
			})
		}

		if i < len(floors)-1 {
			layout.Laps = append(layout.Laps, LapSplice{
				Y:        currentY + floor.TotalHeight - settings.BeamDepth/2,
				Length:   LapLength(floor.RebarDiameter),
				Diameter: floor.RebarDiameter,
			})
		}

		currentY += floor.TotalHeight
	}

	return layout
}

// mainBarPositions places the main bars of one floor: the two edge bars sit
// one cover in from each face, and any remaining bars are spread evenly
// between them over RebarAmountX−1 intervals.
func mainBarPositions(floor model.FloorData, b Boundary, baseY, height, cover float64) []MainBar {
	bars := []MainBar{
		{X: b.Left + cover, StartY: baseY, EndY: baseY + height, Diameter: floor.RebarDiameter},
		{X: b.Right - cover, StartY: baseY, EndY: baseY + height, Diameter: floor.RebarDiameter},
	}

	if floor.RebarAmountX > 2 {
		length := b.Right - b.Left
		spacing := (length - 2*cover) / float64(floor.RebarAmountX-1)
		for i := 1; i < floor.RebarAmountX-1; i++ {
			bars = append(bars, MainBar{
				X:        b.Left + cover + float64(i)*spacing,
				StartY:   baseY,
				EndY:     baseY + height,
				Diameter: floor.RebarDiameter,
			})
		}
	}

	return bars
}

// Package calc is the column detailing engine: it derives column outlines,
// main bar placement, stirrup positions and lap-splice lengths from the
// schedule records in package model. All functions are pure and deterministic;
// callers are expected to validate inputs first (see internal/validate).
package calc

// Detailing constants
const (
	// SteelDensity is the density of reinforcement steel (kg/m³)
	SteelDensity = 7850.0

	// Lap splice rule: max(LapLengthFactor × bar diameter, MinLapLength)
	LapLengthFactor = 40.0
	MinLapLength    = 300.0 // mm

	// DefaultSectionSegments is the polygon segment count used when a
	// circular stirrup is flattened to corner points.
	DefaultSectionSegments = 16
)

// LapLength returns the lap splice length for a main bar of the given
// diameter: 40d or 300 mm, whichever is greater. This is the simplified
// code-minimum rule; project-specific provisions may govern longer laps.
func LapLength(barDiameter float64) float64 {
	if l := LapLengthFactor * barDiameter; l > MinLapLength {
		return l
	}
	return MinLapLength
}

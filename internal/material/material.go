// Package material holds reinforcement steel properties: standard bar
// diameters, per-bar section areas and unit masses, and the common
// deformed-bar grades.
package material

import (
	"math"

	"gocold/internal/calc"
)

// Es is the modulus of elasticity for reinforcement steel in MPa.
const Es = 200000.0

// Grade is a reinforcement steel grade.
type Grade struct {
	Name string
	Fy   float64 // yield strength, MPa
}

var (
	Grade40 = Grade{Name: "40", Fy: 275}
	Grade60 = Grade{Name: "60", Fy: 415}
	Grade75 = Grade{Name: "75", Fy: 520}
)

// DefaultGrade is assumed when a schedule does not specify one.
var DefaultGrade = Grade60

// YieldStrain returns fy/Es.
func (g Grade) YieldStrain() float64 {
	return g.Fy / Es
}

// StandardBarDiameters are the commercially rolled deformed bar sizes in mm.
var StandardBarDiameters = []float64{6, 8, 10, 12, 16, 20, 25, 28, 32, 36, 40}

// IsStandardBarDiameter reports whether d matches a rolled bar size.
func IsStandardBarDiameter(d float64) bool {
	for _, std := range StandardBarDiameters {
		if math.Abs(d-std) < 0.01 {
			return true
		}
	}
	return false
}

// BarArea returns the cross-section area of one bar of diameter d (mm) in mm².
func BarArea(d float64) float64 {
	return math.Pi * d * d / 4
}

// MassPerMetre returns the unit mass of a bar of diameter d (mm) in kg/m.
func MassPerMetre(d float64) float64 {
	return BarArea(d) / 1e6 * calc.SteelDensity
}

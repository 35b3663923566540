package norms

import "math"

// Concrete material constants used for every converted beam
const (
	PoissonRatio       = 0.2
	SpecificWeight     = 2.45e-5 // N/mm³
	ThermalCoefficient = 1e-5    // 1/°C
)

// Reinforcement covers (mm)
const (
	SideCover   = 25.0
	BottomCover = 25.0
)

// StirrupUtilization is the share of the required leg area a stirrup
// diameter must reach to be accepted.
const StirrupUtilization = 0.8

// BarDiameters are the standard longitudinal bar sizes in mm, ascending.
var BarDiameters = []float64{6, 8, 10, 12, 14, 16, 18, 20, 22, 25, 28, 32, 36, 40}

// StirrupDiameters are the stirrup sizes in mm, ascending.
var StirrupDiameters = []float64{6, 8, 10, 12, 14}

// Fallbacks when no standard size fits
const (
	FallbackBarDiameter     = 16.0
	FallbackStirrupDiameter = 10.0
)

// BarArea returns the cross-section area of one bar in mm².
func BarArea(diameter float64) float64 {
	return math.Pi * diameter * diameter / 4
}

// Package units provides common unit conversion utilities.
package units

// Conversion factors between the metric inputs quoted in the study and the
// fps quantities the correlations are fitted in.
const (
	// KgToLb converts kilograms to pounds.
	KgToLb = 2.2046226218

	// LbToKg converts pounds to kilograms.
	LbToKg = 1.0 / KgToLb

	// MSToKt converts meters per second to knots.
	MSToKt = 1.9438444924

	// FtToM converts feet to meters.
	FtToM = 0.3048
)

// KgToPounds converts a mass in kilograms to pounds.
func KgToPounds(kg float64) float64 {
	return kg * KgToLb
}

// PoundsToKg converts a mass in pounds to kilograms.
func PoundsToKg(lb float64) float64 {
	return lb * LbToKg
}

// MSToKnots converts a speed in meters per second to knots.
func MSToKnots(ms float64) float64 {
	return ms * MSToKt
}

// FeetToMeters converts an altitude in feet to meters.
func FeetToMeters(ft float64) float64 {
	return ft * FtToM
}

// Package atmosphere provides International Standard Atmosphere relations
// used to convert Mach-number speed assumptions into the true airspeeds the
// cost correlations expect.
package atmosphere

import (
	"math"

	"github.com/cbishop/aircraft-sizing/pkg/units"
)

// ISA constants.
const (
	// SeaLevelTempK is the ISA sea-level temperature.
	SeaLevelTempK = 288.15

	// LapseRateKPerM is the tropospheric temperature lapse rate.
	LapseRateKPerM = 0.0065

	// TropopauseAltM is the altitude above which the ISA is isothermal.
	TropopauseAltM = 11000.0

	// StratosphereTempK is the constant temperature above the tropopause.
	StratosphereTempK = 216.65

	// GammaAir is the ratio of specific heats for air.
	GammaAir = 1.4

	// GasConstantAir is the specific gas constant for air [J/(kg K)].
	GasConstantAir = 287.05
)

// TemperatureK returns the ISA temperature at the given pressure altitude in
// feet.
func TemperatureK(altFt float64) float64 {
	hM := units.FeetToMeters(altFt)
	if hM <= TropopauseAltM {
		return SeaLevelTempK - LapseRateKPerM*hM
	}
	return StratosphereTempK
}

// SpeedOfSoundMS returns the speed of sound at the given altitude in feet.
func SpeedOfSoundMS(altFt float64) float64 {
	return math.Sqrt(GammaAir * GasConstantAir * TemperatureK(altFt))
}

// MachToKTAS converts a Mach number at the given altitude to true airspeed in
// knots.
func MachToKTAS(mach, altFt float64) float64 {
	return units.MSToKnots(mach * SpeedOfSoundMS(altFt))
}

// Package cost estimates program cost from empty weight using
// cost-estimating relationships and the modified DAPCA IV method.
package cost

// LaborRates holds wrap rates in dollars per hour for the four labor
// categories.
type LaborRates struct {
	Engineering    float64
	Tooling        float64
	Manufacturing  float64
	QualityControl float64
}

// RatesForYear extrapolates the lecture-slide linear wrap-rate fits to the
// given calendar year.
func RatesForYear(year int) LaborRates {
	y := float64(year)
	return LaborRates{
		Engineering:    2.576*y - 5058,
		Tooling:        2.883*y - 5666,
		Manufacturing:  2.316*y - 4552,
		QualityControl: 2.60*y - 5112,
	}
}

// CPIRatio returns the escalation factor between two consumer price index
// readings.
func CPIRatio(target, base float64) float64 {
	return target / base
}

package cost

import (
	"math"

	"github.com/cbishop/aircraft-sizing/pkg/constants"
)

// CorrectionFactors are the configuration correction multipliers applied to
// the scaling CERs (composite construction, tapered wing, complex flaps,
// pressurization, certification basis, high-year engineering).
type CorrectionFactors struct {
	Certification  float64
	Composites     float64
	Taper          float64
	ComplexFlaps   float64
	Pressurization float64
	HighYear       float64
}

// DefaultCorrectionFactors matches the composite-heavy, tapered-wing,
// complex-flap, pressurized configuration assumed in the study.
func DefaultCorrectionFactors() CorrectionFactors {
	return CorrectionFactors{
		Certification:  1.00,
		Composites:     2.00,
		Taper:          0.95,
		ComplexFlaps:   1.03,
		Pressurization: 1.03,
		HighYear:       1.00,
	}
}

// ScalingInput holds the inputs to the weight-scaled CER estimate.
type ScalingInput struct {
	EmptyWeight       float64 // We [lb]
	MaxSpeedKt        float64 // Vmax [KTAS]
	QuantityTotal     float64 // total production quantity
	QuantityFiveYear  float64 // units produced in five years
	Prototypes        float64 // prototype count
	StructureFraction float64 // structural share of We; default 0.45
	Factors           CorrectionFactors
	Rates             LaborRates
	CPIRatio          float64 // escalation from the CER base year
}

// ScalingSummary holds the CER cost rollup. RDTEPerWe and UnitCostPerWe are
// the linearized per-pound forms quoted in the report.
type ScalingSummary struct {
	AirframeWeight float64
	Engineering    float64
	Tooling        float64
	Manufacturing  float64
	Development    float64
	FlightTest     float64
	RDTE           float64
	UnitCost       float64
	RDTEPerWe      float64
	UnitCostPerWe  float64
}

// EstimateScaling evaluates the weight-scaled cost-estimating relationships.
// Pure formula evaluation; inputs are assumed validated upstream.
func EstimateScaling(in ScalingInput) ScalingSummary {
	kStruct := in.StructureFraction
	if kStruct <= 0 {
		kStruct = constants.DefaultStructureFraction
	}
	w := kStruct * in.EmptyWeight
	f := in.Factors

	engineering := 0.083 *
		math.Pow(w, 0.791) *
		math.Pow(in.MaxSpeedKt, 1.521) *
		math.Pow(in.QuantityFiveYear, 0.183) *
		f.Certification * f.ComplexFlaps * f.Composites * f.Pressurization * f.HighYear *
		in.Rates.Engineering * in.CPIRatio

	tooling := 2.1036 *
		math.Pow(w, 0.764) *
		math.Pow(in.MaxSpeedKt, 0.899) *
		math.Pow(in.QuantityFiveYear, 0.178) *
		math.Pow(in.QuantityTotal, 0.066) *
		f.Taper * f.ComplexFlaps * f.Composites * f.Pressurization * f.HighYear *
		in.Rates.Tooling * in.CPIRatio

	manufacturing := 20.2588 *
		math.Pow(w, 0.740) *
		math.Pow(in.MaxSpeedKt, 0.543) *
		math.Pow(in.QuantityTotal, 0.524) *
		f.Certification * f.ComplexFlaps * f.Composites * f.HighYear *
		in.Rates.Manufacturing * in.CPIRatio

	development := 0.06458 *
		math.Pow(w, 0.873) *
		math.Pow(in.MaxSpeedKt, 1.890) *
		math.Pow(in.Prototypes, 0.346) *
		f.Certification * f.ComplexFlaps * f.Composites * f.Pressurization * f.HighYear *
		in.CPIRatio

	flightTest := 0.009646 *
		math.Pow(w, 1.160) *
		math.Pow(in.MaxSpeedKt, 1.372) *
		math.Pow(in.Prototypes, 1.281) *
		f.Certification * f.HighYear *
		in.CPIRatio

	rdte := engineering + development + flightTest
	unitCost := (tooling + manufacturing) / in.QuantityTotal

	return ScalingSummary{
		AirframeWeight: w,
		Engineering:    engineering,
		Tooling:        tooling,
		Manufacturing:  manufacturing,
		Development:    development,
		FlightTest:     flightTest,
		RDTE:           rdte,
		UnitCost:       unitCost,
		RDTEPerWe:      rdte / in.EmptyWeight,
		UnitCostPerWe:  unitCost / in.EmptyWeight,
	}
}

package cost

import (
	"math"

	"github.com/cbishop/aircraft-sizing/pkg/constants"
)

// DAPCAInput holds the inputs to the modified DAPCA IV estimate (fps form).
type DAPCAInput struct {
	EmptyWeight        float64 // We [lb]
	MaxSpeedKt         float64 // Vmax [KTAS]
	MaxMach            float64
	QuantityTotal      float64 // total production quantity
	QuantityFiveYear   float64 // units produced in five years
	FlightTestAircraft float64 // FTA, typically 2-6
	EnginesPerAircraft float64
	EngineMaxThrustLbf float64
	TurbineInletTempR  float64 // [degR]
	AvionicsCost       float64 // base-year dollars
	Rates              LaborRates
	Inflation          float64 // base-year dollars to target-year dollars
}

// DAPCAHours holds the DAPCA labor-hour estimates.
type DAPCAHours struct {
	Engineering    float64
	Tooling        float64
	Manufacturing  float64
	QualityControl float64
}

// DAPCASummary holds the modified DAPCA IV rollup in target-year dollars.
type DAPCASummary struct {
	Hours              DAPCAHours
	LaborCost          float64
	DevelopmentSupport float64
	FlightTest         float64
	Materials          float64
	EngineUnitCost     float64
	EnginesTotal       float64
	Avionics           float64
	TotalProgram       float64
	AveragePerAircraft float64
}

// EstimateDAPCA evaluates the modified DAPCA IV relationships. The effective
// quantity is min(total, five-year) per the method.
func EstimateDAPCA(in DAPCAInput) DAPCASummary {
	q := math.Min(in.QuantityTotal, in.QuantityFiveYear)
	we := in.EmptyWeight
	v := in.MaxSpeedKt

	hours := DAPCAHours{
		Engineering:   4.86 * math.Pow(we, 0.777) * math.Pow(v, 0.894) * math.Pow(q, 0.163),
		Tooling:       5.99 * math.Pow(we, 0.777) * math.Pow(v, 0.696) * math.Pow(q, 0.263),
		Manufacturing: 7.37 * math.Pow(we, 0.820) * math.Pow(v, 0.484) * math.Pow(q, 0.641),
	}
	// Non-cargo aircraft QC line.
	hours.QualityControl = constants.DefaultQCHoursFraction * hours.Manufacturing

	laborCost := hours.Engineering*in.Rates.Engineering +
		hours.Tooling*in.Rates.Tooling +
		hours.Manufacturing*in.Rates.Manufacturing +
		hours.QualityControl*in.Rates.QualityControl

	// Base-year dollar terms, inflated to the target year.
	devSupport := 91.3 * math.Pow(we, 0.630) * math.Pow(v, 1.300) * in.Inflation
	flightTest := 2498.0 * math.Pow(we, 0.325) * math.Pow(v, 0.822) * math.Pow(in.FlightTestAircraft, 1.210) * in.Inflation
	materials := 22.1 * math.Pow(we, 0.921) * math.Pow(v, 0.621) * math.Pow(q, 0.799) * in.Inflation

	engineUnit := 3112.0 * (0.043*in.EngineMaxThrustLbf + 243.25*in.MaxMach + 0.969*in.TurbineInletTempR - 2228.0) * in.Inflation
	enginesTotal := engineUnit * in.QuantityTotal * in.EnginesPerAircraft
	avionics := in.AvionicsCost * in.Inflation

	total := laborCost + devSupport + flightTest + materials + enginesTotal + avionics

	return DAPCASummary{
		Hours:              hours,
		LaborCost:          laborCost,
		DevelopmentSupport: devSupport,
		FlightTest:         flightTest,
		Materials:          materials,
		EngineUnitCost:     engineUnit,
		EnginesTotal:       enginesTotal,
		Avionics:           avionics,
		TotalProgram:       total,
		AveragePerAircraft: total / in.QuantityTotal,
	}
}

// Summary pairs the two estimators for one aircraft sizing.
type Summary struct {
	Scaling *ScalingSummary
	DAPCA   *DAPCASummary
}

package cost

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestRatesForYear(t *testing.T) {
	rates := RatesForYear(2026)
	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"Engineering", rates.Engineering, 160.976},
		{"Tooling", rates.Tooling, 174.958},
		{"Manufacturing", rates.Manufacturing, 140.216},
		{"QualityControl", rates.QualityControl, 155.600},
	}
	for _, c := range checks {
		if !scalar.EqualWithinAbs(c.got, c.expected, 1e-3) {
			t.Errorf("RatesForYear(2026) %s = %.3f, expected %.3f", c.name, c.got, c.expected)
		}
	}
}

func TestCPIRatio(t *testing.T) {
	got := CPIRatio(326.03, 229.6)
	if !scalar.EqualWithinAbs(got, 1.420, 1e-3) {
		t.Errorf("CPIRatio(326.03, 229.6) = %.3f, expected 1.420", got)
	}
}

func TestEstimateDAPCAHours(t *testing.T) {
	// Hand-computed from the study's governing empty weight.
	in := DAPCAInput{
		EmptyWeight:        32948.0,
		MaxSpeedKt:         942.9,
		MaxMach:            1.6,
		QuantityTotal:      500,
		QuantityFiveYear:   500,
		FlightTestAircraft: 5,
		EnginesPerAircraft: 2,
		EngineMaxThrustLbf: 26950.0,
		TurbineInletTempR:  3500.0,
		AvionicsCost:       30000000,
		Rates:              RatesForYear(2026),
		Inflation:          1.420,
	}
	summary := EstimateDAPCA(in)

	hourChecks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"Engineering", summary.Hours.Engineering, 19773968},
		{"Tooling", summary.Hours.Tooling, 11690611},
		{"Manufacturing", summary.Hours.Manufacturing, 55178318},
		{"QualityControl", summary.Hours.QualityControl, 7338716},
	}
	for _, c := range hourChecks {
		if !scalar.EqualWithinRel(c.got, c.expected, 1e-4) {
			t.Errorf("EstimateDAPCA() Hours.%s = %.0f, expected %.0f", c.name, c.got, c.expected)
		}
	}

	if !scalar.EqualWithinRel(summary.EngineUnitCost, 8438343.6*1.420, 1e-6) {
		t.Errorf("EstimateDAPCA() EngineUnitCost = %.0f, expected %.0f", summary.EngineUnitCost, 8438343.6*1.420)
	}
	if !scalar.EqualWithinRel(summary.EnginesTotal, summary.EngineUnitCost*1000, 1e-9) {
		t.Errorf("EstimateDAPCA() EnginesTotal = %.0f, expected unit cost x 1000 engines", summary.EnginesTotal)
	}
	if !scalar.EqualWithinRel(summary.Avionics, 30000000*1.420, 1e-9) {
		t.Errorf("EstimateDAPCA() Avionics = %.0f, expected %.0f", summary.Avionics, 30000000*1.420)
	}

	wantTotal := summary.LaborCost + summary.DevelopmentSupport + summary.FlightTest +
		summary.Materials + summary.EnginesTotal + summary.Avionics
	if summary.TotalProgram != wantTotal {
		t.Errorf("EstimateDAPCA() TotalProgram = %.0f, expected sum of components %.0f", summary.TotalProgram, wantTotal)
	}
	if !scalar.EqualWithinRel(summary.AveragePerAircraft, wantTotal/500, 1e-9) {
		t.Errorf("EstimateDAPCA() AveragePerAircraft = %.0f, expected %.0f", summary.AveragePerAircraft, wantTotal/500)
	}
}

func TestEstimateDAPCAQuantityFloor(t *testing.T) {
	in := DAPCAInput{
		EmptyWeight:        32948.0,
		MaxSpeedKt:         942.9,
		QuantityTotal:      500,
		QuantityFiveYear:   300, // effective quantity must drop to 300
		FlightTestAircraft: 5,
		EnginesPerAircraft: 2,
		Rates:              RatesForYear(2026),
		Inflation:          1.0,
	}
	capped := EstimateDAPCA(in)

	in.QuantityFiveYear = 500
	full := EstimateDAPCA(in)

	if capped.Hours.Manufacturing >= full.Hours.Manufacturing {
		t.Errorf("EstimateDAPCA() manufacturing hours = %.0f, expected fewer than the full-rate %.0f",
			capped.Hours.Manufacturing, full.Hours.Manufacturing)
	}
}

func TestEstimateScaling(t *testing.T) {
	in := ScalingInput{
		EmptyWeight:      32948.0,
		MaxSpeedKt:       942.911,
		QuantityTotal:    500,
		QuantityFiveYear: 500,
		Prototypes:       5,
		Factors:          DefaultCorrectionFactors(),
		Rates:            RatesForYear(2026),
		CPIRatio:         CPIRatio(326.03, 229.6),
	}
	summary := EstimateScaling(in)

	if !scalar.EqualWithinRel(summary.AirframeWeight, 14826.6, 1e-6) {
		t.Errorf("EstimateScaling() AirframeWeight = %.1f, expected 14826.6", summary.AirframeWeight)
	}
	// Hand-computed engineering CER at these inputs.
	if !scalar.EqualWithinRel(summary.Engineering, 8.3599683e9, 1e-4) {
		t.Errorf("EstimateScaling() Engineering = %.4e, expected 8.3600e9", summary.Engineering)
	}

	if got, want := summary.RDTE, summary.Engineering+summary.Development+summary.FlightTest; got != want {
		t.Errorf("EstimateScaling() RDTE = %.0f, expected %.0f", got, want)
	}
	if got, want := summary.UnitCost, (summary.Tooling+summary.Manufacturing)/500; !scalar.EqualWithinRel(got, want, 1e-12) {
		t.Errorf("EstimateScaling() UnitCost = %.0f, expected %.0f", got, want)
	}
	if got, want := summary.RDTEPerWe, summary.RDTE/32948.0; !scalar.EqualWithinRel(got, want, 1e-12) {
		t.Errorf("EstimateScaling() RDTEPerWe = %.2f, expected %.2f", got, want)
	}
}

package sizing

import (
	"strings"
	"testing"

	"github.com/cbishop/aircraft-sizing/internal/config"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats/scalar"
)

// studyConfiguration mirrors the carrier-based fighter study inputs.
func studyConfiguration() config.Configuration {
	return config.Configuration{
		Mission: config.MissionConfig{
			RadiusNMI:     700,
			LoiterHr:      0.5,
			TSFC:          0.75,
			CruiseLD:      12,
			CruiseSpeedKt: 460,
			ReserveFactor: 1.25,
			Segments: []config.SegmentConfig{
				{Name: "Warmup", Fraction: 0.990},
				{Name: "Taxi", Fraction: 0.990},
				{Name: "Takeoff", Fraction: 0.990},
				{Name: "Climb", Fraction: 0.960},
				{Name: "Descent", Fraction: 0.990},
				{Name: "Landing", Fraction: 0.995},
			},
		},
		Payload: config.PayloadConfig{
			CrewCount:        1,
			CrewMemberWeight: 200,
			AvionicsWeight:   2500,
			A2AOrdnance: []config.Store{
				{Name: "AIM-120", Count: 6, UnitWeight: 350},
				{Name: "AIM-9X", Count: 2, UnitWeight: 186},
			},
			StrikeOrdnance: []config.Store{
				{Name: "MK-83 JDAM", Count: 4, UnitWeight: 1000},
				{Name: "AIM-9X", Count: 2, UnitWeight: 186},
			},
		},
		Weights: config.WeightsConfig{A: 1.05, C: -0.05},
		Solver:  config.SolverConfig{SeedGuess: 90000, Tolerance: 1e-6, MaxIterations: 200},
		RFP:     config.RFPConfig{MaxTOGW: 90000, WingAreaFt2: 573, TargetWingLoading: 115},
		Scenarios: []config.Scenario{
			{Name: "Air-to-Air", Active: true, MissionType: "A2A"},
			{Name: "Strike", Active: true, MissionType: "STRIKE"},
			{Name: "Combined", Active: true, MissionType: "BOTH"},
		},
	}
}

func TestGetSizingStudyCase(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	results, err := GetSizing(logger, studyConfiguration())
	if err != nil {
		t.Fatalf("GetSizing() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("GetSizing() returned %d results, expected 3", len(results))
	}

	combined := results[2]
	if combined.MissionType != "BOTH" {
		t.Fatalf("GetSizing() third result mission type = %s, expected BOTH", combined.MissionType)
	}
	// Hand-iterated value for the combined load at these mission parameters.
	if !scalar.EqualWithinAbs(combined.Weights.TOGW, 61290.5, 1.0) {
		t.Errorf("GetSizing() combined TOGW = %.1f, expected 61290.5 within 1 lb", combined.Weights.TOGW)
	}
	if !scalar.EqualWithinAbs(combined.Fuel.Total, 0.239193, 1e-6) {
		t.Errorf("GetSizing() combined fuel fraction = %.6f, expected 0.239193", combined.Fuel.Total)
	}
	if combined.FixedWeight != 9544 {
		t.Errorf("GetSizing() combined fixed weight = %g, expected 9544", combined.FixedWeight)
	}

	if combined.RFP == nil {
		t.Fatalf("GetSizing() combined RFP check is nil")
	}
	if !combined.RFP.Pass {
		t.Errorf("GetSizing() combined RFP check failed for TOGW %.0f under cap 90000", combined.Weights.TOGW)
	}
	wantWS := combined.Weights.TOGW / 573
	if !scalar.EqualWithinRel(combined.RFP.ImpliedWingLoading, wantWS, 1e-9) {
		t.Errorf("GetSizing() implied wing loading = %.2f, expected %.2f", combined.RFP.ImpliedWingLoading, wantWS)
	}
}

func TestGetSizingSkipsInactiveScenarios(t *testing.T) {
	conf := studyConfiguration()
	conf.Scenarios[1].Active = false

	results, err := GetSizing(nil, conf)
	if err != nil {
		t.Fatalf("GetSizing() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("GetSizing() returned %d results, expected 2", len(results))
	}
	for _, result := range results {
		if result.Scenario == "Strike" {
			t.Errorf("GetSizing() included inactive scenario %q", result.Scenario)
		}
	}
}

func TestGetSizingScenarioSeedOverride(t *testing.T) {
	conf := studyConfiguration()
	conf.Scenarios = conf.Scenarios[:1]
	conf.Scenarios[0].SeedGuess = 75000

	results, err := GetSizing(nil, conf)
	if err != nil {
		t.Fatalf("GetSizing() error = %v", err)
	}
	if got := results[0].Weights.History[0]; got != 75000 {
		t.Errorf("GetSizing() seed = %.0f, expected scenario override 75000", got)
	}
}

func TestGetSizingInvalidMissionType(t *testing.T) {
	conf := studyConfiguration()
	conf.Scenarios[0].MissionType = "RECON"

	_, err := GetSizing(nil, conf)
	if err == nil {
		t.Fatalf("GetSizing() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Air-to-Air") {
		t.Errorf("GetSizing() error = %v, expected the failing scenario to be named", err)
	}
}

func TestGetSizingCostEstimate(t *testing.T) {
	conf := studyConfiguration()
	conf.Cost = &config.CostConfig{
		QuantityTotal:      500,
		QuantityFiveYear:   500,
		Prototypes:         5,
		EnginesPerAircraft: 2,
		EngineMaxThrustLbf: 26950,
		TurbineInletTempR:  3500,
		MaxMach:            1.6,
		MaxSpeedAltFt:      30000,
		AvionicsCost:       30000000,
		CPIBase:            229.6,
		CPITarget:          326.03,
		RateYear:           2026,
	}

	results, err := GetSizing(nil, conf)
	if err != nil {
		t.Fatalf("GetSizing() error = %v", err)
	}
	for _, result := range results {
		if result.Cost == nil || result.Cost.Scaling == nil || result.Cost.DAPCA == nil {
			t.Fatalf("GetSizing() scenario %q missing cost summary", result.Scenario)
		}
		if result.Cost.DAPCA.TotalProgram <= 0 {
			t.Errorf("GetSizing() scenario %q total program cost = %g, expected positive",
				result.Scenario, result.Cost.DAPCA.TotalProgram)
		}
	}
}

func TestGoverningCase(t *testing.T) {
	results, err := GetSizing(nil, studyConfiguration())
	if err != nil {
		t.Fatalf("GetSizing() error = %v", err)
	}
	governing := GoverningCase(results)
	if governing == nil {
		t.Fatalf("GoverningCase() = nil, expected a result")
	}
	// The combined load is the heaviest case.
	if governing.MissionType != "BOTH" {
		t.Errorf("GoverningCase() mission type = %s, expected BOTH", governing.MissionType)
	}
	for _, result := range results {
		if result.Weights.TOGW > governing.Weights.TOGW {
			t.Errorf("GoverningCase() TOGW %.0f is below scenario %q at %.0f",
				governing.Weights.TOGW, result.Scenario, result.Weights.TOGW)
		}
	}
}

func TestGoverningCaseEmpty(t *testing.T) {
	if got := GoverningCase(nil); got != nil {
		t.Errorf("GoverningCase(nil) = %v, expected nil", got)
	}
}

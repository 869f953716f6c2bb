// Package sizing runs the takeoff-gross-weight estimate for every active
// scenario and rolls the results up into the governing case.
package sizing

import (
	"fmt"

	"github.com/cbishop/aircraft-sizing/internal/config"
	"github.com/cbishop/aircraft-sizing/pkg/atmosphere"
	"github.com/cbishop/aircraft-sizing/pkg/cost"
	"github.com/cbishop/aircraft-sizing/pkg/fuelfraction"
	"github.com/cbishop/aircraft-sizing/pkg/togw"
	"go.uber.org/zap"
)

// RFPCheck reports the gross-weight constraint and wing-loading comparison
// for one sized case.
type RFPCheck struct {
	MaxTOGW            float64
	Pass               bool
	ImpliedWingLoading float64 // governing W0 over the reference wing area
	TargetWingLoading  float64
}

// Result holds everything derived for one scenario.
type Result struct {
	Scenario    string
	MissionType string

	CrewWeight    float64
	PayloadWeight float64
	FixedWeight   float64

	Fuel    fuelfraction.Result
	Weights togw.Result

	Cost *cost.Summary
	RFP  *RFPCheck
}

// GetSizing processes every active scenario. Scenarios are independent pure
// computations; a failure in any one aborts the run with that scenario named.
func GetSizing(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Result
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "sizing.GetSizing"),
			)
			continue
		}

		result, err := sizeScenario(logger, conf, scenario)
		if err != nil {
			return results, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		results = append(results, result)
	}

	return results, nil
}

func sizeScenario(logger *zap.Logger, conf config.Configuration, scenario config.Scenario) (Result, error) {
	payload, err := conf.Payload.PayloadForMission(scenario.MissionType)
	if err != nil {
		return Result{}, err
	}
	crew := conf.Payload.CrewWeight()

	mission := conf.ResolveMission(scenario)
	fuel, err := fuelfraction.Compute(mission.Profile(), mission.ReserveFactor)
	if err != nil {
		return Result{}, err
	}

	seed := conf.Solver.SeedGuess
	if scenario.SeedGuess > 0 {
		seed = scenario.SeedGuess
	}

	weights, err := togw.Solve(logger, togw.Request{
		FixedWeight:   payload + crew,
		FuelFraction:  fuel.Total,
		Model:         togw.WeightModel{A: conf.Weights.A, C: conf.Weights.C},
		SeedGuess:     seed,
		Tolerance:     conf.Solver.Tolerance,
		MaxIterations: conf.Solver.MaxIterations,
		EngineWeight:  conf.Payload.EngineWeight,
	})
	if err != nil {
		return Result{}, err
	}

	logger.Info("scenario sized",
		zap.String("op", "sizing.GetSizing"),
		zap.String("scenario", scenario.Name),
		zap.String("missionType", scenario.MissionType),
		zap.Float64("togw", weights.TOGW),
		zap.Int("iterations", weights.Iterations),
	)

	result := Result{
		Scenario:      scenario.Name,
		MissionType:   scenario.MissionType,
		CrewWeight:    crew,
		PayloadWeight: payload,
		FixedWeight:   payload + crew,
		Fuel:          fuel,
		Weights:       weights,
	}

	if conf.Cost != nil {
		result.Cost = estimateCost(*conf.Cost, weights.EmptyWeight)
	}
	if conf.RFP.MaxTOGW > 0 || conf.RFP.WingAreaFt2 > 0 {
		result.RFP = rfpCheck(conf.RFP, weights.TOGW)
	}

	return result, nil
}

func rfpCheck(rfp config.RFPConfig, togwLb float64) *RFPCheck {
	check := &RFPCheck{
		MaxTOGW:           rfp.MaxTOGW,
		Pass:              rfp.MaxTOGW <= 0 || togwLb <= rfp.MaxTOGW,
		TargetWingLoading: rfp.TargetWingLoading,
	}
	if rfp.WingAreaFt2 > 0 {
		check.ImpliedWingLoading = togwLb / rfp.WingAreaFt2
	}
	return check
}

func estimateCost(cc config.CostConfig, emptyWeight float64) *cost.Summary {
	rates := cost.RatesForYear(cc.RateYear)
	inflation := cc.Inflation
	if inflation == 0 {
		inflation = cost.CPIRatio(cc.CPITarget, cc.CPIBase)
	}
	maxSpeed := atmosphere.MachToKTAS(cc.MaxMach, cc.MaxSpeedAltFt)

	scaling := cost.EstimateScaling(cost.ScalingInput{
		EmptyWeight:       emptyWeight,
		MaxSpeedKt:        maxSpeed,
		QuantityTotal:     float64(cc.QuantityTotal),
		QuantityFiveYear:  float64(cc.QuantityFiveYear),
		Prototypes:        float64(cc.Prototypes),
		StructureFraction: cc.StructureFraction,
		Factors:           cost.DefaultCorrectionFactors(),
		Rates:             rates,
		CPIRatio:          inflation,
	})

	dapca := cost.EstimateDAPCA(cost.DAPCAInput{
		EmptyWeight:        emptyWeight,
		MaxSpeedKt:         maxSpeed,
		MaxMach:            cc.MaxMach,
		QuantityTotal:      float64(cc.QuantityTotal),
		QuantityFiveYear:   float64(cc.QuantityFiveYear),
		FlightTestAircraft: float64(cc.Prototypes),
		EnginesPerAircraft: float64(cc.EnginesPerAircraft),
		EngineMaxThrustLbf: cc.EngineMaxThrustLbf,
		TurbineInletTempR:  cc.TurbineInletTempR,
		AvionicsCost:       cc.AvionicsCost,
		Rates:              rates,
		Inflation:          inflation,
	})

	return &cost.Summary{Scaling: &scaling, DAPCA: &dapca}
}

// GoverningCase returns the heaviest sized case, the one that drives the
// design. Nil when no scenario was active.
func GoverningCase(results []Result) *Result {
	var governing *Result
	for i := range results {
		if governing == nil || results[i].Weights.TOGW > governing.Weights.TOGW {
			governing = &results[i]
		}
	}
	return governing
}

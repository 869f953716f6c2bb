// Package output provides utilities for formatting and displaying sizing results.
package output

import (
	"fmt"

	"github.com/cbishop/aircraft-sizing/internal/sizing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(results []sizing.Result) {
	p := message.NewPrinter(language.English)

	for _, result := range results {
		fmt.Printf("--- Results for scenario %s (%s) ---\n", result.Scenario, result.MissionType)

		fmt.Printf("=== Crew + Payload Summary ===\n")
		_, _ = p.Printf("W_crew [lb]              = %.0f\n", result.CrewWeight)
		_, _ = p.Printf("W_payload [lb]           = %.0f\n", result.PayloadWeight)

		fmt.Printf("=== Fuel Fraction Summary ===\n")
		fmt.Printf("Cruise Wf/Wi             = %.4f\n", result.Fuel.CruiseRatio)
		fmt.Printf("Loiter Wf/Wi             = %.4f\n", result.Fuel.LoiterRatio)
		fmt.Printf("End-of-mission W_end/W0  = %.4f\n", result.Fuel.EndOfMission)
		fmt.Printf("Fuel fraction (mission)  = %.4f\n", result.Fuel.Mission)
		fmt.Printf("Fuel fraction (total)    = %.4f\n", result.Fuel.Total)

		fmt.Printf("=== TOGW Results ===\n")
		_, _ = p.Printf("W0 (TOGW) [lb]           = %.0f\n", result.Weights.TOGW)
		_, _ = p.Printf("We (empty) [lb]          = %.0f\n", result.Weights.EmptyWeight)
		_, _ = p.Printf("Wf (fuel) [lb]           = %.0f\n", result.Weights.FuelWeight)
		fmt.Printf("We/W0                    = %.4f\n", result.Weights.EmptyWeightFraction)
		fmt.Printf("Converged in             = %d iters\n", result.Weights.Iterations)

		if result.RFP != nil {
			fmt.Printf("=== RFP Checks ===\n")
			if result.RFP.MaxTOGW > 0 {
				verdict := "PASS"
				if !result.RFP.Pass {
					verdict = "FAIL"
				}
				_, _ = p.Printf("Max TOGW allowed [lb]    = %.0f\n", result.RFP.MaxTOGW)
				fmt.Printf("TOGW constraint check    = %s\n", verdict)
			}
			if result.RFP.ImpliedWingLoading > 0 {
				fmt.Printf("W/S implied [lb/ft^2]    = %.1f\n", result.RFP.ImpliedWingLoading)
				fmt.Printf("W/S target [lb/ft^2]     = %.1f\n", result.RFP.TargetWingLoading)
			}
		}

		if result.Cost != nil {
			printCost(p, result)
		}

		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}

	if governing := sizing.GoverningCase(results); governing != nil {
		_, _ = p.Printf("Governing (max TOGW) case: %s with W0 = %.0f lb\n",
			governing.Scenario, governing.Weights.TOGW)
	}
}

func printCost(p *message.Printer, result sizing.Result) {
	if scaling := result.Cost.Scaling; scaling != nil {
		fmt.Printf("=== Cost Scaling (CER) ===\n")
		_, _ = p.Printf("Engineering cost         = $%.0f\n", scaling.Engineering)
		_, _ = p.Printf("Development cost         = $%.0f\n", scaling.Development)
		_, _ = p.Printf("Flight test cost         = $%.0f\n", scaling.FlightTest)
		_, _ = p.Printf("Total RDT&E              = $%.0f\n", scaling.RDTE)
		_, _ = p.Printf("Tooling cost (total)     = $%.0f\n", scaling.Tooling)
		_, _ = p.Printf("Manufacturing cost total = $%.0f\n", scaling.Manufacturing)
		_, _ = p.Printf("Unit production cost     = $%.0f\n", scaling.UnitCost)
		_, _ = p.Printf("RDT&E ~= $%.0f * We\n", scaling.RDTEPerWe)
		_, _ = p.Printf("Unit cost ~= $%.0f * We\n", scaling.UnitCostPerWe)
	}
	if dapca := result.Cost.DAPCA; dapca != nil {
		fmt.Printf("=== Modified DAPCA IV ===\n")
		_, _ = p.Printf("H_E (eng) [hr]           = %.0f\n", dapca.Hours.Engineering)
		_, _ = p.Printf("H_T (tool) [hr]          = %.0f\n", dapca.Hours.Tooling)
		_, _ = p.Printf("H_M (mfg) [hr]           = %.0f\n", dapca.Hours.Manufacturing)
		_, _ = p.Printf("H_Q (QC) [hr]            = %.0f\n", dapca.Hours.QualityControl)
		_, _ = p.Printf("Labor cost               = $%.0f\n", dapca.LaborCost)
		_, _ = p.Printf("C_D (dev support)        = $%.0f\n", dapca.DevelopmentSupport)
		_, _ = p.Printf("C_F (flight test)        = $%.0f\n", dapca.FlightTest)
		_, _ = p.Printf("C_M (materials)          = $%.0f\n", dapca.Materials)
		_, _ = p.Printf("C_eng (total engines)    = $%.0f\n", dapca.EnginesTotal)
		_, _ = p.Printf("C_avionics               = $%.0f\n", dapca.Avionics)
		_, _ = p.Printf("Total program cost       = $%.0f\n", dapca.TotalProgram)
		_, _ = p.Printf("Average per aircraft     = $%.0f\n", dapca.AveragePerAircraft)
	}
}

// CsvFormat outputs in comma-separated value format, one row per scenario.
func CsvFormat(results []sizing.Result) {
	fmt.Printf(`"scenario","mission_type","crew_lb","payload_lb","fuel_frac_mission","fuel_frac_total","togw_lb","empty_lb","fuel_lb","empty_frac","iterations"`)
	fmt.Printf("\n")
	for _, result := range results {
		fmt.Printf(`"%s","%s","%.1f","%.1f","%.6f","%.6f","%.1f","%.1f","%.1f","%.6f","%d"`,
			result.Scenario,
			result.MissionType,
			result.CrewWeight,
			result.PayloadWeight,
			result.Fuel.Mission,
			result.Fuel.Total,
			result.Weights.TOGW,
			result.Weights.EmptyWeight,
			result.Weights.FuelWeight,
			result.Weights.EmptyWeightFraction,
			result.Weights.Iterations,
		)
		fmt.Printf("\n")
	}
}

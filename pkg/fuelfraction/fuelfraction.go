// Package fuelfraction computes mission fuel fractions from Breguet
// cruise/loiter relations and tabulated mission-segment weight fractions.
package fuelfraction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Segment is a named non-Breguet mission segment with its weight fraction
// Wi+1/Wi.
type Segment struct {
	Name     string
	Fraction float64
}

// MissionProfile holds the cruise/loiter parameters and the ordered
// non-Breguet segment fractions for one sizing mission.
type MissionProfile struct {
	RadiusNMI     float64 // combat radius [nmi]
	LoiterHr      float64 // loiter / combat time [hr]
	TSFC          float64 // thrust specific fuel consumption [1/hr]
	CruiseLD      float64 // cruise lift-to-drag ratio
	CruiseSpeedKt float64 // cruise speed [kt]
	Segments      []Segment
}

// Result holds the derived weight ratios and fuel fractions for a mission.
// It is a pure value, computed once and never mutated.
type Result struct {
	CruiseRatio  float64 // Breguet cruise Wf/Wi
	LoiterRatio  float64 // Breguet loiter Wf/Wi
	EndOfMission float64 // W_end/W0
	Mission      float64 // mission fuel fraction
	Total        float64 // fuel fraction including reserves, Wf/W0
}

// CruiseRatio returns the Breguet cruise weight ratio
// Wf/Wi = exp(-R*c / (V*(L/D))). A non-positive cruise speed degenerates to
// 1.0 (no cruise fuel burned) rather than dividing by zero.
func (p MissionProfile) CruiseRatio() float64 {
	if p.CruiseSpeedKt <= 0 {
		return 1.0
	}
	return math.Exp(-p.RadiusNMI * p.TSFC / (p.CruiseSpeedKt * p.CruiseLD))
}

// LoiterRatio returns the Breguet loiter weight ratio
// Wf/Wi = exp(-E*c / (L/D)). A non-positive L/D degenerates to 1.0.
func (p MissionProfile) LoiterRatio() float64 {
	if p.CruiseLD <= 0 {
		return 1.0
	}
	return math.Exp(-p.LoiterHr * p.TSFC / p.CruiseLD)
}

// Compute derives the fuel fractions for the profile. Every configured
// segment enters the end-of-mission product exactly once; the reserve factor
// multiplies the mission fuel fraction to cover recovery loiter, traps, and
// margin fuel not captured by the profile.
func Compute(profile MissionProfile, reserveFactor float64) (Result, error) {
	if reserveFactor < 1 {
		return Result{}, fmt.Errorf("reserve factor must be >= 1, got %g", reserveFactor)
	}

	seen := make(map[string]bool, len(profile.Segments))
	ratios := make([]float64, 0, len(profile.Segments)+2)
	for _, seg := range profile.Segments {
		if seg.Fraction <= 0 || seg.Fraction > 1 {
			return Result{}, fmt.Errorf("segment %q fraction %g outside (0,1]", seg.Name, seg.Fraction)
		}
		if seen[seg.Name] {
			return Result{}, fmt.Errorf("segment %q configured more than once", seg.Name)
		}
		seen[seg.Name] = true
		ratios = append(ratios, seg.Fraction)
	}

	cruise := profile.CruiseRatio()
	loiter := profile.LoiterRatio()
	ratios = append(ratios, cruise, loiter)

	endOfMission := floats.Prod(ratios)
	mission := 1.0 - endOfMission

	return Result{
		CruiseRatio:  cruise,
		LoiterRatio:  loiter,
		EndOfMission: endOfMission,
		Mission:      mission,
		Total:        reserveFactor * mission,
	}, nil
}

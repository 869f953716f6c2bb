package config

import (
	"fmt"

	"github.com/cbishop/aircraft-sizing/pkg/constants"
	"github.com/cbishop/aircraft-sizing/pkg/validation"
)

// CrewWeight returns the total crew weight in pounds.
func (p PayloadConfig) CrewWeight() float64 {
	return float64(p.CrewCount) * p.CrewMemberWeight
}

// ordnanceWeight sums a list of stores.
func ordnanceWeight(stores []Store) float64 {
	total := 0.0
	for _, store := range stores {
		total += float64(store.Count) * store.UnitWeight
	}
	return total
}

// PayloadForMission returns the mission payload in pounds for the given
// mission type: avionics plus the selected ordnance plus the installation
// allowance. The allowance applies to the weapons share only, never to the
// internal avionics.
func (p PayloadConfig) PayloadForMission(missionType string) (float64, error) {
	if err := validation.ValidateMissionType(missionType); err != nil {
		return 0, err
	}

	var weapons float64
	switch missionType {
	case constants.MissionTypeA2A:
		weapons = ordnanceWeight(p.A2AOrdnance)
	case constants.MissionTypeStrike:
		weapons = ordnanceWeight(p.StrikeOrdnance)
	case constants.MissionTypeBoth:
		weapons = ordnanceWeight(p.A2AOrdnance) + ordnanceWeight(p.StrikeOrdnance)
	default:
		// ValidateMissionType covers this; keep the closed set explicit.
		return 0, fmt.Errorf("invalid mission type %q", missionType)
	}

	return p.AvionicsWeight + weapons + p.StoresInstallFraction*weapons, nil
}

// FixedWeight returns the payload + crew sum fed to the TOGW solver.
func (p PayloadConfig) FixedWeight(missionType string) (float64, error) {
	payload, err := p.PayloadForMission(missionType)
	if err != nil {
		return 0, err
	}
	return payload + p.CrewWeight(), nil
}

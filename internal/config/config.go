// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/cbishop/aircraft-sizing/pkg/constants"
	"github.com/cbishop/aircraft-sizing/pkg/fuelfraction"
	"github.com/cbishop/aircraft-sizing/pkg/units"
	"github.com/cbishop/aircraft-sizing/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for aircraft-sizing.
type Configuration struct {
	Mission   MissionConfig
	Payload   PayloadConfig
	Weights   WeightsConfig
	Solver    SolverConfig
	RFP       RFPConfig
	Cost      *CostConfig   `yaml:"cost,omitempty"`
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `yaml:"format,omitempty"`         // pretty, csv
	ConvergenceDir string `yaml:"convergenceDir,omitempty"` // optional convergence CSV directory
}

// MissionConfig holds the shared mission parameters applied to every
// scenario unless a scenario overrides them.
type MissionConfig struct {
	RadiusNMI     float64 // combat radius [nmi]
	LoiterHr      float64 // loiter / combat time [hr]
	TSFC          float64 // thrust specific fuel consumption [1/hr]
	CruiseLD      float64 // cruise lift-to-drag ratio
	CruiseSpeedKt float64 // cruise speed [kt]
	CruiseSpeedMS float64 // cruise speed [m/s], converted when the knot value is absent
	ReserveFactor float64
	Segments      []SegmentConfig
}

// SegmentConfig is a named non-Breguet mission segment weight fraction.
type SegmentConfig struct {
	Name     string
	Fraction float64
}

// Scenario is one sizing case; its mission type selects the ordnance load.
type Scenario struct {
	Name        string
	Active      bool
	MissionType string
	SeedGuess   float64        // overrides the solver default when positive
	Mission     *MissionConfig `yaml:"mission,omitempty"` // non-zero fields override the common mission
}

// Store is one ordnance type with its carriage count.
type Store struct {
	Name       string
	Count      int
	UnitWeight float64 // [lb]
}

// PayloadConfig holds the crew and payload weight terms.
type PayloadConfig struct {
	CrewCount             int
	CrewMemberWeight      float64 // [lb], including gear
	AvionicsWeight        float64 // [lb], fixed internal equipment
	EngineWeight          float64 // [lb], added after convergence when nonzero
	StoresInstallFraction float64 // installation allowance on weapons only
	A2AOrdnance           []Store
	StrikeOrdnance        []Store
}

// WeightsConfig holds the empty-weight correlation We/W0 = A * W0^C.
type WeightsConfig struct {
	A float64
	C float64
}

// SolverConfig holds the TOGW iteration controls.
type SolverConfig struct {
	SeedGuess     float64
	Tolerance     float64
	MaxIterations int
}

// RFPConfig holds the request-for-proposal constraint checks.
type RFPConfig struct {
	MaxTOGW           float64 // [lb], zero disables the check
	WingAreaFt2       float64 // reference wing area for implied wing loading
	TargetWingLoading float64 // [lb/ft^2]
}

// CostConfig holds the program cost estimation inputs.
type CostConfig struct {
	QuantityTotal      int
	QuantityFiveYear   int
	Prototypes         int
	EnginesPerAircraft int
	EngineMaxThrustLbf float64
	TurbineInletTempR  float64
	MaxMach            float64
	MaxSpeedAltFt      float64
	AvionicsCost       float64
	StructureFraction  float64
	CPIBase            float64
	CPITarget          float64
	RateYear           int
	Inflation          float64 // overrides the CPI ratio when nonzero
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()

	return &configuration, nil
}

// applyDefaults fills unset solver and mission fields with the study
// defaults.
func (c *Configuration) applyDefaults() {
	if c.Solver.Tolerance == 0 {
		c.Solver.Tolerance = constants.DefaultTolerance
	}
	if c.Solver.MaxIterations == 0 {
		c.Solver.MaxIterations = constants.DefaultMaxIterations
	}
	if c.Solver.SeedGuess == 0 {
		c.Solver.SeedGuess = constants.DefaultSeedGuess
	}
	if c.Mission.ReserveFactor == 0 {
		c.Mission.ReserveFactor = constants.DefaultReserveFactor
	}
}

// ResolveMission merges a scenario's mission overrides onto the common
// mission parameters. Zero-valued override fields keep the common value.
func (c *Configuration) ResolveMission(s Scenario) MissionConfig {
	mission := c.Mission
	if s.Mission != nil {
		o := s.Mission
		if o.RadiusNMI != 0 {
			mission.RadiusNMI = o.RadiusNMI
		}
		if o.LoiterHr != 0 {
			mission.LoiterHr = o.LoiterHr
		}
		if o.TSFC != 0 {
			mission.TSFC = o.TSFC
		}
		if o.CruiseLD != 0 {
			mission.CruiseLD = o.CruiseLD
		}
		if o.CruiseSpeedKt != 0 {
			mission.CruiseSpeedKt = o.CruiseSpeedKt
		}
		if o.CruiseSpeedMS != 0 {
			mission.CruiseSpeedMS = o.CruiseSpeedMS
		}
		if o.ReserveFactor != 0 {
			mission.ReserveFactor = o.ReserveFactor
		}
		if len(o.Segments) > 0 {
			mission.Segments = o.Segments
		}
	}
	if mission.CruiseSpeedKt == 0 && mission.CruiseSpeedMS > 0 {
		mission.CruiseSpeedKt = units.MSToKnots(mission.CruiseSpeedMS)
	}
	return mission
}

// Profile converts a resolved mission into the fuel-fraction mission profile.
func (m MissionConfig) Profile() fuelfraction.MissionProfile {
	segments := make([]fuelfraction.Segment, len(m.Segments))
	for i, seg := range m.Segments {
		segments[i] = fuelfraction.Segment{Name: seg.Name, Fraction: seg.Fraction}
	}
	return fuelfraction.MissionProfile{
		RadiusNMI:     m.RadiusNMI,
		LoiterHr:      m.LoiterHr,
		TSFC:          m.TSFC,
		CruiseLD:      m.CruiseLD,
		CruiseSpeedKt: m.CruiseSpeedKt,
		Segments:      segments,
	}
}

// Validate performs the hard configuration checks. Any failure here is an
// invalid configuration; nothing is sized.
func (c *Configuration) Validate() error {
	if err := validation.ValidateSolverSettings(c.Solver.Tolerance, c.Solver.MaxIterations, c.Solver.SeedGuess); err != nil {
		return err
	}
	if err := validation.ValidateCorrelation(c.Weights.A); err != nil {
		return err
	}
	if err := validation.ValidateNonNegativeWeight("crew member weight", c.Payload.CrewMemberWeight); err != nil {
		return err
	}
	if err := validation.ValidateNonNegativeWeight("avionics weight", c.Payload.AvionicsWeight); err != nil {
		return err
	}
	if err := validation.ValidateNonNegativeWeight("engine weight", c.Payload.EngineWeight); err != nil {
		return err
	}
	for _, store := range append(append([]Store{}, c.Payload.A2AOrdnance...), c.Payload.StrikeOrdnance...) {
		if err := validation.ValidateNonNegativeWeight(fmt.Sprintf("store %q unit weight", store.Name), store.UnitWeight); err != nil {
			return err
		}
		if store.Count < 0 {
			return fmt.Errorf("store %q count must be non-negative, got %d", store.Name, store.Count)
		}
	}

	if len(c.Scenarios) == 0 {
		return fmt.Errorf("no scenarios configured")
	}
	for _, scenario := range c.Scenarios {
		if err := validation.ValidateMissionType(scenario.MissionType); err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		mission := c.ResolveMission(scenario)
		if err := validation.ValidateReserveFactor(mission.ReserveFactor); err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		seen := make(map[string]bool, len(mission.Segments))
		for _, seg := range mission.Segments {
			if err := validation.ValidateSegmentFraction(seg.Name, seg.Fraction); err != nil {
				return fmt.Errorf("scenario %q: %w", scenario.Name, err)
			}
			if seen[seg.Name] {
				return fmt.Errorf("scenario %q: segment %q configured more than once", scenario.Name, seg.Name)
			}
			seen[seg.Name] = true
		}
		if scenario.SeedGuess < 0 {
			return fmt.Errorf("scenario %q: seed guess must be non-negative, got %g", scenario.Name, scenario.SeedGuess)
		}
	}

	if c.Cost != nil {
		if c.Cost.QuantityTotal <= 0 {
			return fmt.Errorf("cost: total production quantity must be positive, got %d", c.Cost.QuantityTotal)
		}
		if c.Cost.Inflation == 0 && (c.Cost.CPIBase <= 0 || c.Cost.CPITarget <= 0) {
			return fmt.Errorf("cost: either an inflation factor or both CPI indices must be set")
		}
	}

	return nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	active := 0
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active++
		}
	}
	if active == 0 {
		warnings = append(warnings, "no active scenarios; nothing will be sized")
	}

	if c.Weights.C >= 0 {
		warnings = append(warnings, fmt.Sprintf(
			"correlation exponent C = %g is non-negative; empty-weight fraction will grow with gross weight", c.Weights.C))
	}

	for _, scenario := range c.Scenarios {
		mission := c.ResolveMission(scenario)
		if mission.ReserveFactor > 1.5 {
			warnings = append(warnings, fmt.Sprintf(
				"scenario '%s' reserve factor %g is unusually high", scenario.Name, mission.ReserveFactor))
		}
	}

	if c.RFP.MaxTOGW > 0 && c.Solver.SeedGuess > c.RFP.MaxTOGW {
		warnings = append(warnings, fmt.Sprintf(
			"seed guess %g exceeds the RFP gross-weight limit %g", c.Solver.SeedGuess, c.RFP.MaxTOGW))
	}

	return warnings
}

// Package constants provides shared constants for the aircraft-sizing application.
package constants

// Mission type tags recognized in scenario configuration.
const (
	// MissionTypeA2A sizes for the air-to-air ordnance load.
	MissionTypeA2A = "A2A"

	// MissionTypeStrike sizes for the strike ordnance load.
	MissionTypeStrike = "STRIKE"

	// MissionTypeBoth sizes for both ordnance loads carried together.
	MissionTypeBoth = "BOTH"
)

// Solver defaults
const (
	// DefaultTolerance is the relative-change convergence criterion for the
	// TOGW iteration.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the TOGW fixed-point iteration.
	DefaultMaxIterations = 200

	// DefaultSeedGuess is the initial TOGW guess in pounds, near the carrier
	// gross-weight limit.
	DefaultSeedGuess = 90000.0

	// DefaultReserveFactor applies no reserve margin beyond the mission fuel.
	DefaultReserveFactor = 1.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Cost model defaults
const (
	// DefaultStructureFraction approximates the structural airframe share of
	// empty weight.
	DefaultStructureFraction = 0.45

	// DefaultQCHoursFraction is the quality-control share of manufacturing
	// hours for non-cargo aircraft.
	DefaultQCHoursFraction = 0.133
)

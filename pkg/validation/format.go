// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/cbishop/aircraft-sizing/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateMissionType checks if the mission type tag is one of the closed set
// of recognized tags.
func ValidateMissionType(missionType string) error {
	switch missionType {
	case constants.MissionTypeA2A, constants.MissionTypeStrike, constants.MissionTypeBoth:
		return nil
	}
	return fmt.Errorf("expected mission type of %s, %s, or %s, got %q",
		constants.MissionTypeA2A, constants.MissionTypeStrike, constants.MissionTypeBoth, missionType)
}

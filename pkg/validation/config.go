// Package validation provides configuration validation utilities.
package validation

import "fmt"

// ValidateSegmentFraction checks a mission-segment weight fraction lies in
// (0,1].
func ValidateSegmentFraction(segmentName string, fraction float64) error {
	if fraction <= 0 || fraction > 1 {
		return fmt.Errorf("segment %q fraction must be in (0,1], got %g", segmentName, fraction)
	}
	return nil
}

// ValidateSolverSettings checks the convergence controls can terminate.
func ValidateSolverSettings(tolerance float64, maxIterations int, seedGuess float64) error {
	if tolerance <= 0 {
		return fmt.Errorf("solver tolerance must be positive, got %g", tolerance)
	}
	if maxIterations <= 0 {
		return fmt.Errorf("solver max iterations must be positive, got %d", maxIterations)
	}
	if seedGuess <= 0 {
		return fmt.Errorf("solver seed guess must be positive, got %g", seedGuess)
	}
	return nil
}

// ValidateReserveFactor checks the reserve multiplier budgets at least the
// mission fuel.
func ValidateReserveFactor(reserve float64) error {
	if reserve < 1 {
		return fmt.Errorf("reserve factor must be >= 1, got %g", reserve)
	}
	return nil
}

// ValidateCorrelation checks the empty-weight correlation coefficient is
// usable.
func ValidateCorrelation(a float64) error {
	if a <= 0 {
		return fmt.Errorf("empty-weight correlation coefficient A must be positive, got %g", a)
	}
	return nil
}

// ValidateNonNegativeWeight checks a configured weight term.
func ValidateNonNegativeWeight(name string, weight float64) error {
	if weight < 0 {
		return fmt.Errorf("%s must be non-negative, got %g", name, weight)
	}
	return nil
}

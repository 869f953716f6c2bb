// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/cbishop/aircraft-sizing/internal/sizing"
)

// FindScenario finds a scenario result by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindScenario(results []sizing.Result, name string) *sizing.Result {
	for i := range results {
		if results[i].Scenario == name {
			return &results[i]
		}
	}
	return nil
}

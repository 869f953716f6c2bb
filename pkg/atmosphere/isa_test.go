package atmosphere

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestTemperatureK(t *testing.T) {
	tests := []struct {
		name     string
		altFt    float64
		expected float64
	}{
		{
			name:     "Sea level",
			altFt:    0,
			expected: 288.15,
		},
		{
			name:     "Cruise altitude in troposphere",
			altFt:    30000,
			expected: 228.714,
		},
		{
			name:     "Above tropopause is isothermal",
			altFt:    40000,
			expected: 216.65,
		},
		{
			name:     "Far above tropopause stays isothermal",
			altFt:    60000,
			expected: 216.65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TemperatureK(tt.altFt)
			if !scalar.EqualWithinAbs(got, tt.expected, 1e-3) {
				t.Errorf("TemperatureK(%.0f) = %.3f, expected %.3f", tt.altFt, got, tt.expected)
			}
		})
	}
}

func TestSpeedOfSoundMS(t *testing.T) {
	// Standard sea-level speed of sound.
	got := SpeedOfSoundMS(0)
	if !scalar.EqualWithinAbs(got, 340.29, 0.01) {
		t.Errorf("SpeedOfSoundMS(0) = %.2f, expected 340.29", got)
	}
}

func TestMachToKTAS(t *testing.T) {
	tests := []struct {
		name     string
		mach     float64
		altFt    float64
		expected float64
	}{
		{
			name:     "Mach 1 at sea level",
			mach:     1.0,
			altFt:    0,
			expected: 661.48,
		},
		{
			name:     "Max speed assumption from the cost study",
			mach:     1.6,
			altFt:    30000,
			expected: 942.91,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MachToKTAS(tt.mach, tt.altFt)
			if !scalar.EqualWithinAbs(got, tt.expected, 0.01) {
				t.Errorf("MachToKTAS(%.1f, %.0f) = %.2f, expected %.2f", tt.mach, tt.altFt, got, tt.expected)
			}
		})
	}
}

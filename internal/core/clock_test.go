package core

import "testing"

func TestFixedClockForRate(t *testing.T) {
	tests := []struct {
		rate     int
		expected float64
	}{
		{60, 1.0 / 60},
		{30, 1.0 / 30},
		{0, 1.0 / 60},
		{-5, 1.0 / 60},
	}
	for _, tc := range tests {
		if got := FixedClockForRate(tc.rate).DeltaSeconds(); got != tc.expected {
			t.Errorf("FixedClockForRate(%d) = %g, expected %g", tc.rate, got, tc.expected)
		}
	}
}

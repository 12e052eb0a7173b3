package simulator_test

import (
	"math"
	"testing"

	"roulette_sim/internal/service/simulator"
)

func TestNewStatistics(t *testing.T) {
	tests := []struct {
		name      string
		values    []int
		wantMean  float64
		wantStdev float64
	}{
		{name: "one to ten", values: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, wantMean: 5.5, wantStdev: 2.872281},
		{name: "constant", values: []int{1000, 1000, 1000}, wantMean: 1000, wantStdev: 0},
		{name: "single", values: []int{42}, wantMean: 42, wantStdev: 0},
		{name: "two values", values: []int{990, 1010}, wantMean: 1000, wantStdev: 10},
		{name: "repeating mean", values: []int{1, 2, 2}, wantMean: 1.666667, wantStdev: 0.471405},
		{name: "empty", values: nil, wantMean: 0, wantStdev: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := simulator.NewStatistics(tt.values)

			if math.Abs(st.Mean-tt.wantMean) > 1e-9 {
				t.Errorf("Mean = %v, want %v", st.Mean, tt.wantMean)
			}
			if math.Abs(st.Stdev-tt.wantStdev) > 1e-9 {
				t.Errorf("Stdev = %v, want %v", st.Stdev, tt.wantStdev)
			}
			if len(st.Values) != len(tt.values) {
				t.Errorf("Values holds %d items, want %d", len(st.Values), len(tt.values))
			}
		})
	}
}

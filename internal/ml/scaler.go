package ml

import (
	"fmt"
	"math"
)

// StandardScaler is a fitted standardization transform: each feature column
// is centered on its training mean and divided by its training scale.
// Column order must match the order the scaler was fitted with.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Arity returns the number of feature columns the scaler was fitted on
func (s *StandardScaler) Arity() int {
	return len(s.Mean)
}

// Validate checks the scaler artifact for decode-level corruption
func (s *StandardScaler) Validate() error {
	if len(s.Mean) == 0 {
		return fmt.Errorf("scaler has no columns")
	}

	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("scaler has %d means but %d scales", len(s.Mean), len(s.Scale))
	}

	for i := range s.Mean {
		if math.IsNaN(s.Mean[i]) || math.IsInf(s.Mean[i], 0) {
			return fmt.Errorf("scaler mean %d is not finite", i)
		}
		if math.IsNaN(s.Scale[i]) || math.IsInf(s.Scale[i], 0) {
			return fmt.Errorf("scaler scale %d is not finite", i)
		}
		if s.Scale[i] == 0 {
			return fmt.Errorf("scaler scale %d is zero", i)
		}
	}

	return nil
}

// Transform standardizes a single feature vector, returning a new slice of
// the same arity
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.Mean), len(features))
	}

	scaled := make([]float64, len(features))
	for i, v := range features {
		scaled[i] = (v - s.Mean[i]) / s.Scale[i]
	}

	return scaled, nil
}

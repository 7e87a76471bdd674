package ml

import (
	"fmt"
	"math"
)

// LinearModel is a fitted linear regression model exported by the offline
// training pipeline. Prediction is a dot product over the scaled feature
// vector plus the intercept.
type LinearModel struct {
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Arity returns the number of features the model was fitted on
func (m *LinearModel) Arity() int {
	return len(m.Coefficients)
}

// Validate checks the model artifact for decode-level corruption
func (m *LinearModel) Validate() error {
	if len(m.Coefficients) == 0 {
		return fmt.Errorf("model has no coefficients")
	}

	if len(m.FeatureNames) > 0 && len(m.FeatureNames) != len(m.Coefficients) {
		return fmt.Errorf("model has %d feature names but %d coefficients",
			len(m.FeatureNames), len(m.Coefficients))
	}

	for i, c := range m.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("model coefficient %d is not finite", i)
		}
	}

	if math.IsNaN(m.Intercept) || math.IsInf(m.Intercept, 0) {
		return fmt.Errorf("model intercept is not finite")
	}

	return nil
}

// Predict computes the regression output for a single scaled feature vector.
// The result is guaranteed finite; a non-finite output is reported as an
// error rather than returned as a number.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("model expects %d features, got %d", len(m.Coefficients), len(features))
	}

	prediction := m.Intercept
	for i, c := range m.Coefficients {
		prediction += c * features[i]
	}

	if math.IsNaN(prediction) || math.IsInf(prediction, 0) {
		return 0, fmt.Errorf("model produced a non-finite prediction")
	}

	return prediction, nil
}

package models

import (
	"fmt"
	"strings"
)

// Input ranges and defaults for the six prediction features. The numeric
// bounds mirror the ranges the model saw during training.
const (
	YearMin     = 2010
	YearMax     = 2030
	YearDefault = 2024

	TempMin     = -10.0
	TempMax     = 45.0
	TempDefault = 20.0
	TempStep    = 0.5

	RainfallMin     = 0.0
	RainfallMax     = 8000.0
	RainfallDefault = 1200.0
	RainfallStep    = 50.0

	PesticideMin     = 0.0
	PesticideMax     = 400000.0
	PesticideDefault = 50000.0
	PesticideStep    = 1000.0
)

// FeatureNames is the fixed feature column order the scaler and model were
// fitted with. Assembled vectors must follow this order exactly; there is no
// runtime check tying the artifacts together, so a reordering here would
// produce silently wrong predictions.
var FeatureNames = []string{
	"year",
	"average_rain_fall_mm_per_year",
	"avg_temp",
	"pesticide_tonnes",
	"area_encoded",
	"item_encoded",
}

// PredictionInput holds the six user-supplied feature values
type PredictionInput struct {
	Year              int     `json:"year"`
	RainfallMMPerYear float64 `json:"rainfall_mm_per_year"`
	AvgTempCelsius    float64 `json:"avg_temp_celsius"`
	PesticideTonnes   float64 `json:"pesticide_tonnes"`
	Area              string  `json:"area"`
	Item              string  `json:"item"`
}

// Validate checks each field against its declared range
func (in *PredictionInput) Validate() error {
	if in.Year < YearMin || in.Year > YearMax {
		return &ValidationError{
			Field:   "year",
			Value:   fmt.Sprintf("%d", in.Year),
			Message: fmt.Sprintf("year must be between %d and %d", YearMin, YearMax),
		}
	}

	if in.RainfallMMPerYear < RainfallMin || in.RainfallMMPerYear > RainfallMax {
		return &ValidationError{
			Field:   "rainfall_mm_per_year",
			Value:   fmt.Sprintf("%g", in.RainfallMMPerYear),
			Message: fmt.Sprintf("rainfall must be between %g and %g mm/year", RainfallMin, RainfallMax),
		}
	}

	if in.AvgTempCelsius < TempMin || in.AvgTempCelsius > TempMax {
		return &ValidationError{
			Field:   "avg_temp_celsius",
			Value:   fmt.Sprintf("%g", in.AvgTempCelsius),
			Message: fmt.Sprintf("average temperature must be between %g and %g °C", TempMin, TempMax),
		}
	}

	if in.PesticideTonnes < PesticideMin || in.PesticideTonnes > PesticideMax {
		return &ValidationError{
			Field:   "pesticide_tonnes",
			Value:   fmt.Sprintf("%g", in.PesticideTonnes),
			Message: fmt.Sprintf("pesticide use must be between %g and %g tonnes", PesticideMin, PesticideMax),
		}
	}

	if in.Area == "" {
		return &ValidationError{
			Field:   "area",
			Value:   "",
			Message: "area must not be empty",
		}
	}

	if in.Item == "" {
		return &ValidationError{
			Field:   "item",
			Value:   "",
			Message: "item must not be empty",
		}
	}

	return nil
}

// AssembleFeatures builds the raw feature vector in the FeatureNames column
// order from validated input plus the encoded category codes
func AssembleFeatures(in *PredictionInput, areaCode, itemCode int) []float64 {
	return []float64{
		float64(in.Year),
		in.RainfallMMPerYear,
		in.AvgTempCelsius,
		in.PesticideTonnes,
		float64(areaCode),
		float64(itemCode),
	}
}

// PredictionResult is the rendered outcome of a single predict request
type PredictionResult struct {
	YieldHgPerHa float64  `json:"yield_hg_per_ha"`
	Display      string   `json:"display"`
	Headline     string   `json:"headline"`
	Advisory     []string `json:"advisory"`
}

// NewPredictionResult formats the model output and the three advisory lines
// with the live input values interpolated
func NewPredictionResult(in *PredictionInput, yield float64) *PredictionResult {
	display := FormatYield(yield)

	return &PredictionResult{
		YieldHgPerHa: yield,
		Display:      display,
		Headline: fmt.Sprintf("Predicted Crop Yield for %s in %s",
			TitleCase(in.Item), TitleCase(in.Area)),
		Advisory: []string{
			fmt.Sprintf("Input Allocation: A predicted yield of %s is a good indicator. "+
				"You can use this to decide if applying more fertilizer or pesticides "+
				"(like the %s tonnes used in this estimate) is cost-effective.",
				display, GroupThousands(in.PesticideTonnes)),
			fmt.Sprintf("Risk Assessment: If the predicted yield is very low, it signals high risk. "+
				"This could be due to factors like low rainfall (%s mm) or high temperatures (%.1f°C). "+
				"This information can help in planning for potential losses or securing insurance.",
				GroupThousands(in.RainfallMMPerYear), in.AvgTempCelsius),
			"Market Planning: Knowing your expected output helps you negotiate better prices " +
				"and plan your market logistics in advance.",
		},
	}
}

// FormatYield renders a yield value to 2 decimal places with its unit
func FormatYield(yield float64) string {
	return fmt.Sprintf("%.2f hg/ha", yield)
}

// GroupThousands renders a value with no decimals and comma-grouped digits,
// e.g. 50000 -> "50,000"
func GroupThousands(v float64) string {
	s := fmt.Sprintf("%.0f", v)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// TitleCase capitalizes the first letter of each word and lowercases the
// rest, e.g. "sweet potatoes" -> "Sweet Potatoes"
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsTransient returns false as validation errors are permanent
func (e *ValidationError) IsTransient() bool {
	return false
}

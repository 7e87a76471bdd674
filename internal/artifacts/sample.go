package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"crop-yield-platform/internal/ml"
	"crop-yield-platform/internal/models"
)

// WriteSampleBundle writes a small, well-formed artifact set for local
// development. The coefficients are illustrative, not trained.
func WriteSampleBundle(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	model := ml.LinearModel{
		FeatureNames: models.FeatureNames,
		Coefficients: []float64{120.5, 3400.0, -1850.0, 2100.0, 450.0, 780.0},
		Intercept:    55000.0,
	}

	scaler := ml.StandardScaler{
		Mean:  []float64{2020.0, 1150.0, 20.5, 37000.0, 4.5, 5.5},
		Scale: []float64{6.0, 710.0, 6.4, 59000.0, 2.9, 3.5},
	}

	areaEncoder := ml.LabelEncoder{
		Name: "area",
		ClassNames: []string{
			"Albania", "Argentina", "Australia", "Brazil", "Canada",
			"India", "Kenya", "Nigeria", "Pakistan", "Zimbabwe",
		},
	}

	itemEncoder := ml.LabelEncoder{
		Name: "item",
		ClassNames: []string{
			"Barley", "Cassava", "Lentils", "Maize",
			"Plantains and others", "Potatoes", "Rice, paddy",
			"Sorghum", "Soybeans", "Sweet potatoes", "Wheat", "Yams",
		},
	}

	files := map[string]interface{}{
		ModelFile:       &model,
		ScalerFile:      &scaler,
		AreaEncoderFile: &areaEncoder,
		ItemEncoderFile: &itemEncoder,
	}

	for name, artifact := range files {
		data, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", name, err)
		}

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	return nil
}

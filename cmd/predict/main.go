package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"crop-yield-platform/internal/artifacts"
	"crop-yield-platform/internal/config"
	"crop-yield-platform/internal/models"
	"crop-yield-platform/internal/services"
	"crop-yield-platform/pkg/logging"
	"crop-yield-platform/pkg/metrics"
)

func main() {
	// Parse command-line flags
	artifactsDir := flag.String("artifacts-dir", "", "Artifact directory (defaults to ARTIFACTS_DIR)")
	year := flag.Int("year", models.YearDefault, "Year")
	rainfall := flag.Float64("rainfall", models.RainfallDefault, "Average rainfall in mm/year")
	avgTemp := flag.Float64("avg-temp", models.TempDefault, "Average temperature in °C")
	pesticides := flag.Float64("pesticides", models.PesticideDefault, "Pesticide use in tonnes")
	area := flag.String("area", "", "Area/country name (must be a learned class)")
	item := flag.String("item", "", "Crop type (must be a learned class)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if *artifactsDir != "" {
		cfg.Artifacts.Dir = *artifactsDir
	}

	// Initialize logger
	logger := logging.NewStructuredLogger("crop-yield-predict", "1.0.0", logging.ParseLevel(cfg.Logging.Level))
	ctx := context.Background()

	// Initialize metrics collector
	metricsCollector := metrics.NewCollector("crop_yield_predict")

	// Load artifacts
	store := artifacts.NewStore(cfg.Artifacts.Dir, logger, metricsCollector)

	bundle, err := store.LoadBundle(ctx)
	if err != nil {
		logger.Fatal(ctx, "[PREDICT_CLI_ERROR] Failed to load model artifacts", logging.Fields{
			"artifacts_dir": cfg.Artifacts.Dir,
		}, err)
	}

	optionsService := services.NewOptionsService(bundle, logger)
	predictionService := services.NewPredictionService(bundle, optionsService, logger, metricsCollector)

	// Without a chosen area and item, list the learned classes and exit
	if *area == "" || *item == "" {
		fmt.Println("Both -area and -item are required.")
		fmt.Printf("\nAreas:  %s\n", strings.Join(optionsService.AreaOptions(), ", "))
		fmt.Printf("\nCrops:  %s\n", strings.Join(optionsService.ItemOptions(), ", "))
		os.Exit(1)
	}

	input := &models.PredictionInput{
		Year:              *year,
		RainfallMMPerYear: *rainfall,
		AvgTempCelsius:    *avgTemp,
		PesticideTonnes:   *pesticides,
		Area:              *area,
		Item:              *item,
	}

	result, err := predictionService.Predict(ctx, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Prediction failed: %v\n", err)
		os.Exit(1)
	}

	// Print result block
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("%s:\n", result.Headline)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("\n    %s\n\n", result.Display)
	fmt.Println("How this prediction can help:")
	for _, line := range result.Advisory {
		fmt.Printf("  * %s\n", line)
	}
}

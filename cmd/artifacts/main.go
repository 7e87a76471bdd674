package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"crop-yield-platform/internal/artifacts"
	"crop-yield-platform/pkg/logging"
	"crop-yield-platform/pkg/metrics"
)

func main() {
	dir := flag.String("dir", "./artifacts", "Artifact directory")
	generate := flag.Bool("generate", false, "Write a sample artifact bundle for local development")
	check := flag.Bool("check", false, "Validate the artifact bundle in the directory")
	flag.Parse()

	if *generate == *check {
		fmt.Fprintln(os.Stderr, "Exactly one of -generate or -check is required")
		flag.Usage()
		os.Exit(2)
	}

	if *generate {
		if err := artifacts.WriteSampleBundle(*dir); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write sample bundle: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Sample artifact bundle written to %s\n", *dir)
		return
	}

	// Check mode: load the bundle the same way the server does and print a
	// summary of what it contains.
	logger := logging.NewStructuredLogger("crop-yield-artifacts", "1.0.0", logging.WarnLevel)
	metricsCollector := metrics.NewCollector("crop_yield_artifacts")

	store := artifacts.NewStore(*dir, logger, metricsCollector)

	bundle, err := store.LoadBundle(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Artifact check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Artifact bundle in %s is valid\n", *dir)
	fmt.Printf("  Model:        %d coefficients, intercept %.4f\n", bundle.Model.Arity(), bundle.Model.Intercept)
	fmt.Printf("  Scaler:       %d columns\n", bundle.Scaler.Arity())
	fmt.Printf("  Area encoder: %d classes\n", len(bundle.AreaEncoder.Classes()))
	fmt.Printf("  Item encoder: %d classes\n", len(bundle.ItemEncoder.Classes()))

	if len(bundle.AreaEncoder.Classes()) == 0 || len(bundle.ItemEncoder.Classes()) == 0 {
		fmt.Println("  WARNING: empty encoder class list, the server will disable predictions")
	}
}

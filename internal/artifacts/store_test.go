package artifacts

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"crop-yield-platform/pkg/logging"
	"crop-yield-platform/pkg/metrics"
)

// Shared across tests: promauto registers in the default registry, so the
// collector must only be constructed once per test binary.
var testMetrics = metrics.NewCollector("test_artifacts")

func testLogger() *logging.StructuredLogger {
	logger := logging.NewStructuredLogger("test", "test", logging.FatalLevel)
	logger.SetOutput(io.Discard)
	return logger
}

func TestStore_LoadBundle_Roundtrip(t *testing.T) {
	dir := t.TempDir()

	if err := WriteSampleBundle(dir); err != nil {
		t.Fatalf("WriteSampleBundle() error = %v", err)
	}

	store := NewStore(dir, testLogger(), testMetrics)

	bundle, err := store.LoadBundle(context.Background())
	if err != nil {
		t.Fatalf("LoadBundle() error = %v", err)
	}

	if bundle.Model.Arity() != 6 {
		t.Errorf("model arity = %d, want 6", bundle.Model.Arity())
	}

	if bundle.Scaler.Arity() != 6 {
		t.Errorf("scaler arity = %d, want 6", bundle.Scaler.Arity())
	}

	// The sample bundle pins the canonical codes: Nigeria -> 7, Maize -> 3
	areaCode, err := bundle.AreaEncoder.Transform("Nigeria")
	if err != nil {
		t.Fatalf("area Transform() error = %v", err)
	}
	if areaCode != 7 {
		t.Errorf("area code for Nigeria = %d, want 7", areaCode)
	}

	itemCode, err := bundle.ItemEncoder.Transform("Maize")
	if err != nil {
		t.Fatalf("item Transform() error = %v", err)
	}
	if itemCode != 3 {
		t.Errorf("item code for Maize = %d, want 3", itemCode)
	}
}

func TestStore_LoadBundle_MissingFile(t *testing.T) {
	dir := t.TempDir()

	if err := WriteSampleBundle(dir); err != nil {
		t.Fatalf("WriteSampleBundle() error = %v", err)
	}

	if err := os.Remove(filepath.Join(dir, ScalerFile)); err != nil {
		t.Fatalf("failed to remove scaler file: %v", err)
	}

	store := NewStore(dir, testLogger(), testMetrics)

	_, err := store.LoadBundle(context.Background())
	if err == nil {
		t.Fatal("LoadBundle() with missing file should return an error")
	}

	var loadErr *ArtifactLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("LoadBundle() error type = %T, want *ArtifactLoadError", err)
	}

	if loadErr.Artifact != ScalerFile {
		t.Errorf("ArtifactLoadError.Artifact = %q, want %q", loadErr.Artifact, ScalerFile)
	}
}

func TestStore_LoadBundle_CorruptFile(t *testing.T) {
	dir := t.TempDir()

	if err := WriteSampleBundle(dir); err != nil {
		t.Fatalf("WriteSampleBundle() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ModelFile), []byte("not json{"), 0644); err != nil {
		t.Fatalf("failed to corrupt model file: %v", err)
	}

	store := NewStore(dir, testLogger(), testMetrics)

	_, err := store.LoadBundle(context.Background())
	if err == nil {
		t.Fatal("LoadBundle() with corrupt file should return an error")
	}

	var loadErr *ArtifactLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("LoadBundle() error type = %T, want *ArtifactLoadError", err)
	}
}

func TestStore_LoadBundle_ArityMismatch(t *testing.T) {
	dir := t.TempDir()

	if err := WriteSampleBundle(dir); err != nil {
		t.Fatalf("WriteSampleBundle() error = %v", err)
	}

	// A well-formed model fitted on the wrong number of columns must not load
	short := `{"coefficients": [1.0, 2.0], "intercept": 0.0}`
	if err := os.WriteFile(filepath.Join(dir, ModelFile), []byte(short), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	store := NewStore(dir, testLogger(), testMetrics)

	_, err := store.LoadBundle(context.Background())
	if err == nil {
		t.Fatal("LoadBundle() with wrong model arity should return an error")
	}
}

func TestStore_LoadBundle_EmptyEncoderClasses(t *testing.T) {
	dir := t.TempDir()

	if err := WriteSampleBundle(dir); err != nil {
		t.Fatalf("WriteSampleBundle() error = %v", err)
	}

	// An encoder with no classes is a degraded state handled downstream, not
	// a load failure
	if err := os.WriteFile(filepath.Join(dir, AreaEncoderFile), []byte(`{"name": "area", "classes": []}`), 0644); err != nil {
		t.Fatalf("failed to write encoder file: %v", err)
	}

	store := NewStore(dir, testLogger(), testMetrics)

	bundle, err := store.LoadBundle(context.Background())
	if err != nil {
		t.Fatalf("LoadBundle() error = %v", err)
	}

	if len(bundle.AreaEncoder.Classes()) != 0 {
		t.Errorf("area classes = %d, want 0", len(bundle.AreaEncoder.Classes()))
	}
}

func TestStore_HealthCheck(t *testing.T) {
	dir := t.TempDir()

	if err := WriteSampleBundle(dir); err != nil {
		t.Fatalf("WriteSampleBundle() error = %v", err)
	}

	store := NewStore(dir, testLogger(), testMetrics)

	if err := store.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	if err := os.Remove(filepath.Join(dir, ItemEncoderFile)); err != nil {
		t.Fatalf("failed to remove encoder file: %v", err)
	}

	if err := store.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() with missing artifact should return an error")
	}
}

package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"crop-yield-platform/internal/ml"
	"crop-yield-platform/internal/models"
	"crop-yield-platform/pkg/logging"
	"crop-yield-platform/pkg/metrics"
)

// Artifact file names, fixed by the offline training exporter
const (
	ModelFile       = "crop_yield_model.json"
	ScalerFile      = "scaler.json"
	AreaEncoderFile = "le_area.json"
	ItemEncoderFile = "le_item.json"
)

// Bundle holds the four fitted artifacts. It is loaded once at startup and
// read-only afterwards, which is what makes sharing it across concurrent
// requests safe.
type Bundle struct {
	Model       *ml.LinearModel
	Scaler      *ml.StandardScaler
	AreaEncoder *ml.LabelEncoder
	ItemEncoder *ml.LabelEncoder
}

// ArtifactLoadError indicates a missing or corrupt artifact file. It is
// fatal: the process must not serve predictions without a complete bundle.
type ArtifactLoadError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *ArtifactLoadError) Error() string {
	return fmt.Sprintf("failed to load artifact %s from %s: %v", e.Artifact, e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error {
	return e.Err
}

// Store reads model artifacts from a filesystem directory
type Store struct {
	dir     string
	logger  *logging.StructuredLogger
	metrics *metrics.Collector
}

// NewStore creates a new artifact store
func NewStore(dir string, logger *logging.StructuredLogger, metricsCollector *metrics.Collector) *Store {
	return &Store{
		dir:     dir,
		logger:  logger,
		metrics: metricsCollector,
	}
}

// LoadBundle reads and decodes all four artifacts. Any missing file, decode
// failure, or per-artifact validation failure returns *ArtifactLoadError.
func (s *Store) LoadBundle(ctx context.Context) (*Bundle, error) {
	startTime := time.Now()

	s.logger.Info(ctx, "[ARTIFACT_LOAD_START] Loading model artifacts", logging.Fields{
		"dir": s.dir,
	})

	var model ml.LinearModel
	if err := s.loadArtifact(ctx, ModelFile, &model); err != nil {
		return nil, err
	}
	if err := model.Validate(); err != nil {
		return nil, s.loadError(ModelFile, err)
	}

	var scaler ml.StandardScaler
	if err := s.loadArtifact(ctx, ScalerFile, &scaler); err != nil {
		return nil, err
	}
	if err := scaler.Validate(); err != nil {
		return nil, s.loadError(ScalerFile, err)
	}

	var areaEncoder ml.LabelEncoder
	if err := s.loadArtifact(ctx, AreaEncoderFile, &areaEncoder); err != nil {
		return nil, err
	}
	if areaEncoder.Name == "" {
		areaEncoder.Name = "area"
	}

	var itemEncoder ml.LabelEncoder
	if err := s.loadArtifact(ctx, ItemEncoderFile, &itemEncoder); err != nil {
		return nil, err
	}
	if itemEncoder.Name == "" {
		itemEncoder.Name = "item"
	}

	// Decode-level arity check only. Whether the four files actually belong
	// to the same training run is unknowable here; a mismatched but
	// well-formed set still loads.
	if model.Arity() != len(models.FeatureNames) {
		return nil, s.loadError(ModelFile, fmt.Errorf(
			"model arity %d does not match feature vector length %d",
			model.Arity(), len(models.FeatureNames)))
	}
	if scaler.Arity() != len(models.FeatureNames) {
		return nil, s.loadError(ScalerFile, fmt.Errorf(
			"scaler arity %d does not match feature vector length %d",
			scaler.Arity(), len(models.FeatureNames)))
	}

	s.logger.Info(ctx, "[ARTIFACT_LOAD_COMPLETE] Model artifacts loaded", logging.Fields{
		"dir":          s.dir,
		"model_arity":  model.Arity(),
		"area_classes": len(areaEncoder.Classes()),
		"item_classes": len(itemEncoder.Classes()),
		"duration_ms":  time.Since(startTime).Milliseconds(),
	})

	return &Bundle{
		Model:       &model,
		Scaler:      &scaler,
		AreaEncoder: &areaEncoder,
		ItemEncoder: &itemEncoder,
	}, nil
}

// loadArtifact reads and JSON-decodes a single artifact file with timing
// metrics
func (s *Store) loadArtifact(ctx context.Context, name string, dest interface{}) error {
	timer := time.Now()
	path := filepath.Join(s.dir, name)

	defer func() {
		duration := time.Since(timer)
		s.metrics.ArtifactLoadDuration.WithLabelValues(name).Observe(duration.Seconds())
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		s.metrics.RecordArtifactLoadError(name)
		s.logger.Error(ctx, "[ARTIFACT_READ_ERROR] Failed to read artifact file", logging.Fields{
			"artifact": name,
			"path":     path,
		}, err)
		return &ArtifactLoadError{Artifact: name, Path: path, Err: err}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.metrics.RecordArtifactLoadError(name)
		s.logger.Error(ctx, "[ARTIFACT_DECODE_ERROR] Failed to decode artifact file", logging.Fields{
			"artifact": name,
			"path":     path,
		}, err)
		return &ArtifactLoadError{Artifact: name, Path: path, Err: err}
	}

	s.logger.Debug(ctx, "[ARTIFACT_LOADED] Artifact decoded", logging.Fields{
		"artifact": name,
		"bytes":    len(data),
	})

	return nil
}

// loadError wraps a validation failure as an *ArtifactLoadError
func (s *Store) loadError(name string, err error) error {
	s.metrics.RecordArtifactLoadError(name)
	return &ArtifactLoadError{
		Artifact: name,
		Path:     filepath.Join(s.dir, name),
		Err:      err,
	}
}

// HealthCheck verifies the artifact files are still present on disk
func (s *Store) HealthCheck(ctx context.Context) error {
	for _, name := range []string{ModelFile, ScalerFile, AreaEncoderFile, ItemEncoderFile} {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("artifact health check failed for %s: %w", name, err)
		}
	}

	return nil
}

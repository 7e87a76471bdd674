package services

import (
	"context"
	"fmt"
	"time"

	"crop-yield-platform/internal/artifacts"
	"crop-yield-platform/internal/models"
	"crop-yield-platform/pkg/logging"
	"crop-yield-platform/pkg/metrics"
)

// ConfigurationError indicates the service cannot predict because the
// encoder options are in the degraded error state
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// PredictionError wraps a failure inside the encode-scale-predict pipeline
type PredictionError struct {
	Stage string
	Err   error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed during %s: %v", e.Stage, e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

// PredictionService runs the yield prediction pipeline against the loaded
// artifact bundle. It holds no mutable state; every request is independent.
type PredictionService struct {
	bundle  *artifacts.Bundle
	options *OptionsService
	logger  *logging.StructuredLogger
	metrics *metrics.Collector
}

// NewPredictionService creates a new prediction service
func NewPredictionService(
	bundle *artifacts.Bundle,
	options *OptionsService,
	logger *logging.StructuredLogger,
	metricsCollector *metrics.Collector,
) *PredictionService {
	return &PredictionService{
		bundle:  bundle,
		options: options,
		logger:  logger,
		metrics: metricsCollector,
	}
}

// Predict validates the input, encodes the categorical choices, assembles
// the feature vector in the fitted column order, scales it, and invokes the
// model. Per-request failures are returned as typed errors and never affect
// the loaded artifacts.
func (s *PredictionService) Predict(ctx context.Context, input *models.PredictionInput) (*models.PredictionResult, error) {
	startTime := time.Now()

	defer func() {
		duration := time.Since(startTime)
		s.metrics.PredictionDuration.Observe(duration.Seconds())
	}()

	if s.options.Degraded() {
		s.metrics.RecordPredictionError("configuration")
		return nil, &ConfigurationError{
			Message: "cannot make prediction: encoders were not loaded correctly",
		}
	}

	if err := input.Validate(); err != nil {
		s.metrics.RecordPredictionError("validation")
		return nil, err
	}

	itemCode, err := s.bundle.ItemEncoder.Transform(input.Item)
	if err != nil {
		s.metrics.RecordEncodeError("item")
		s.metrics.RecordPredictionError("unknown_category")
		s.logger.Warn(ctx, "[PREDICT_ENCODE_ERROR] Unknown item category", logging.Fields{
			"item": input.Item,
		})
		return nil, err
	}

	areaCode, err := s.bundle.AreaEncoder.Transform(input.Area)
	if err != nil {
		s.metrics.RecordEncodeError("area")
		s.metrics.RecordPredictionError("unknown_category")
		s.logger.Warn(ctx, "[PREDICT_ENCODE_ERROR] Unknown area category", logging.Fields{
			"area": input.Area,
		})
		return nil, err
	}

	features := models.AssembleFeatures(input, areaCode, itemCode)

	scaled, err := s.bundle.Scaler.Transform(features)
	if err != nil {
		s.metrics.RecordPredictionError("scale")
		s.logger.Error(ctx, "[PREDICT_SCALE_ERROR] Feature scaling failed", logging.Fields{
			"features": features,
		}, err)
		return nil, &PredictionError{Stage: "scale", Err: err}
	}

	yield, err := s.bundle.Model.Predict(scaled)
	if err != nil {
		s.metrics.RecordPredictionError("predict")
		s.logger.Error(ctx, "[PREDICT_MODEL_ERROR] Model prediction failed", logging.Fields{
			"features": features,
		}, err)
		return nil, &PredictionError{Stage: "predict", Err: err}
	}

	result := models.NewPredictionResult(input, yield)

	s.metrics.RecordPrediction(yield)
	s.logger.Info(ctx, "[PREDICT_COMPLETE] Yield prediction computed", logging.Fields{
		"area":            input.Area,
		"item":            input.Item,
		"year":            input.Year,
		"yield_hg_per_ha": yield,
		"duration_ms":     time.Since(startTime).Milliseconds(),
	})

	return result, nil
}

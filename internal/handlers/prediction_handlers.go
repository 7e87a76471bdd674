package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"crop-yield-platform/internal/artifacts"
	"crop-yield-platform/internal/ml"
	"crop-yield-platform/internal/models"
	"crop-yield-platform/internal/services"
	"crop-yield-platform/pkg/logging"
	"crop-yield-platform/pkg/metrics"
)

// PredictionHandler handles the prediction API endpoints
type PredictionHandler struct {
	predictionService *services.PredictionService
	optionsService    *services.OptionsService
	store             *artifacts.Store
	logger            *logging.StructuredLogger
	metrics           *metrics.Collector
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(
	predictionService *services.PredictionService,
	optionsService *services.OptionsService,
	store *artifacts.Store,
	logger *logging.StructuredLogger,
	metricsCollector *metrics.Collector,
) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		optionsService:    optionsService,
		store:             store,
		logger:            logger,
		metrics:           metricsCollector,
	}
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// OptionsResponse lists the selectable categories for the two enum inputs
type OptionsResponse struct {
	Areas    []string `json:"areas"`
	Items    []string `json:"items"`
	Degraded bool     `json:"degraded"`
}

// Predict handles POST /api/predict
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	defer func() {
		duration := time.Since(startTime)
		h.metrics.HTTPRequestDuration.WithLabelValues("/api/predict").Observe(duration.Seconds())
	}()

	var input models.PredictionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.sendError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.predictionService.Predict(ctx, &input)
	if err != nil {
		h.sendPredictionError(w, r, err)
		return
	}

	h.sendJSON(w, result, http.StatusOK)
}

// sendPredictionError maps pipeline errors to HTTP statuses. Every response
// carries the underlying error text so failures stay diagnosable from the
// client side.
func (h *PredictionHandler) sendPredictionError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var validationErr *models.ValidationError
	var unknownErr *ml.UnknownCategoryError
	var configErr *services.ConfigurationError

	switch {
	case errors.As(err, &validationErr):
		h.sendError(w, validationErr.Message, http.StatusBadRequest)

	case errors.As(err, &unknownErr):
		h.sendError(w, err.Error(), http.StatusBadRequest)

	case errors.As(err, &configErr):
		h.sendError(w, err.Error(), http.StatusServiceUnavailable)

	default:
		h.logger.Error(ctx, "[API_PREDICT_ERROR] Prediction failed", logging.Fields{
			"path": r.URL.Path,
		}, err)
		h.sendError(w, "an error occurred during prediction: "+err.Error(), http.StatusInternalServerError)
	}
}

// GetOptions handles GET /api/options
func (h *PredictionHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	response := OptionsResponse{
		Areas:    h.optionsService.AreaOptions(),
		Items:    h.optionsService.ItemOptions(),
		Degraded: h.optionsService.Degraded(),
	}

	h.sendJSON(w, response, http.StatusOK)
}

// HealthCheck handles GET /health
func (h *PredictionHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.HealthCheck(ctx); err != nil {
		h.logger.Error(ctx, "[HEALTH_CHECK_ERROR] Artifact health check failed", logging.Fields{}, err)
		h.sendJSON(w, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		}, http.StatusServiceUnavailable)
		return
	}

	h.sendJSON(w, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// sendJSON sends a JSON response
func (h *PredictionHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// sendError sends an error response
func (h *PredictionHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	response := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	h.sendJSON(w, response, statusCode)
}

// RegisterRoutes registers all prediction API routes
func (h *PredictionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.FormPage).Methods("GET")
	router.HandleFunc("/api/predict", h.Predict).Methods("POST")
	router.HandleFunc("/api/options", h.GetOptions).Methods("GET")
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
	router.HandleFunc("/api/docs/openapi.json", OpenAPISpec).Methods("GET")
	router.HandleFunc("/docs", SwaggerUI).Methods("GET")
}

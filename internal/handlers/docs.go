package handlers

import (
	"encoding/json"
	"net/http"
)

// OpenAPISpec returns the OpenAPI 3.0 specification for the Crop Yield Platform API
func OpenAPISpec(w http.ResponseWriter, r *http.Request) {
	spec := map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       "Crop Yield Platform API",
			"description": "Inference front-end for a pre-trained crop yield regression model",
			"version":     "1.0.0",
			"contact": map[string]string{
				"name": "Crop Yield Platform Team",
			},
		},
		"servers": []map[string]string{
			{"url": "http://localhost:8080", "description": "Local development server"},
		},
		"paths": map[string]interface{}{
			"/api/predict": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Predict crop yield",
					"description": "Encode the categorical inputs, scale the feature vector, and run the regression model",
					"requestBody": map[string]interface{}{
						"required": true,
						"content": map[string]interface{}{
							"application/json": map[string]interface{}{
								"schema": map[string]interface{}{
									"type":     "object",
									"required": []string{"year", "rainfall_mm_per_year", "avg_temp_celsius", "pesticide_tonnes", "area", "item"},
									"properties": map[string]interface{}{
										"year":                 map[string]interface{}{"type": "integer", "minimum": 2010, "maximum": 2030},
										"rainfall_mm_per_year": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 8000},
										"avg_temp_celsius":     map[string]interface{}{"type": "number", "minimum": -10, "maximum": 45},
										"pesticide_tonnes":     map[string]interface{}{"type": "number", "minimum": 0, "maximum": 400000},
										"area":                 map[string]interface{}{"type": "string"},
										"item":                 map[string]interface{}{"type": "string"},
									},
								},
							},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "Prediction result",
							"content": map[string]interface{}{
								"application/json": map[string]interface{}{
									"schema": map[string]interface{}{
										"type": "object",
										"properties": map[string]interface{}{
											"yield_hg_per_ha": map[string]string{"type": "number"},
											"display":         map[string]string{"type": "string"},
											"headline":        map[string]string{"type": "string"},
											"advisory": map[string]interface{}{
												"type":  "array",
												"items": map[string]string{"type": "string"},
											},
										},
									},
								},
							},
						},
						"400": map[string]interface{}{"description": "Invalid input or unknown category"},
						"503": map[string]interface{}{"description": "Predictions disabled, encoder options degraded"},
						"500": map[string]interface{}{"description": "Prediction failed"},
					},
				},
			},
			"/api/options": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "List selectable categories",
					"description": "Area and crop class lists learned by the label encoders, in fit order",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "Option lists",
							"content": map[string]interface{}{
								"application/json": map[string]interface{}{
									"schema": map[string]interface{}{
										"type": "object",
										"properties": map[string]interface{}{
											"areas":    map[string]interface{}{"type": "array", "items": map[string]string{"type": "string"}},
											"items":    map[string]interface{}{"type": "array", "items": map[string]string{"type": "string"}},
											"degraded": map[string]string{"type": "boolean"},
										},
									},
								},
							},
						},
					},
				},
			},
			"/health": map[string]interface{}{
				"get": map[string]interface{}{
					"summary": "Health check",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Service healthy"},
						"503": map[string]interface{}{"description": "Artifact files missing"},
					},
				},
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spec)
}

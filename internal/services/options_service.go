package services

import (
	"context"

	"crop-yield-platform/internal/artifacts"
	"crop-yield-platform/pkg/logging"
)

// OptionSentinel is the single option offered when encoder class lists are
// unreadable. While it is in place predictions are disabled.
const OptionSentinel = "Error"

// OptionsService exposes the category choices learned by the label encoders.
// The lists are fixed at startup; if either encoder carries no classes the
// service degrades to a sentinel option and reports itself degraded.
type OptionsService struct {
	areaOptions []string
	itemOptions []string
	degraded    bool
}

// NewOptionsService derives the selectable options from the encoder class
// lists, in fit order
func NewOptionsService(bundle *artifacts.Bundle, logger *logging.StructuredLogger) *OptionsService {
	areaClasses := bundle.AreaEncoder.Classes()
	itemClasses := bundle.ItemEncoder.Classes()

	if len(areaClasses) == 0 || len(itemClasses) == 0 {
		logger.Error(context.Background(), "[OPTIONS_DEGRADED] Encoder class lists unreadable, predictions disabled", logging.Fields{
			"area_classes": len(areaClasses),
			"item_classes": len(itemClasses),
		}, nil)

		return &OptionsService{
			areaOptions: []string{OptionSentinel},
			itemOptions: []string{OptionSentinel},
			degraded:    true,
		}
	}

	return &OptionsService{
		areaOptions: areaClasses,
		itemOptions: itemClasses,
	}
}

// AreaOptions returns the selectable area names
func (s *OptionsService) AreaOptions() []string {
	return s.areaOptions
}

// ItemOptions returns the selectable crop names
func (s *OptionsService) ItemOptions() []string {
	return s.itemOptions
}

// Degraded reports whether the option lists are in the error state
func (s *OptionsService) Degraded() bool {
	return s.degraded
}

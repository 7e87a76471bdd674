package services

import (
	"testing"

	"crop-yield-platform/internal/artifacts"
)

func TestOptionsService_FitOrder(t *testing.T) {
	bundle := testBundle()
	options := NewOptionsService(bundle, testLogger())

	if options.Degraded() {
		t.Fatal("options should not be degraded for a well-formed bundle")
	}

	areas := options.AreaOptions()
	wantAreas := []string{"Albania", "Kenya", "Nigeria"}
	if len(areas) != len(wantAreas) {
		t.Fatalf("AreaOptions() length = %d, want %d", len(areas), len(wantAreas))
	}
	for i := range wantAreas {
		if areas[i] != wantAreas[i] {
			t.Errorf("AreaOptions()[%d] = %q, want %q", i, areas[i], wantAreas[i])
		}
	}

	items := options.ItemOptions()
	if len(items) != 2 || items[0] != "Maize" || items[1] != "Wheat" {
		t.Errorf("ItemOptions() = %v, want [Maize Wheat]", items)
	}
}

func TestOptionsService_DegradedSentinel(t *testing.T) {
	tests := []struct {
		name   string
		modify func(bundle *artifacts.Bundle)
	}{
		{
			name: "empty area classes",
			modify: func(b *artifacts.Bundle) {
				b.AreaEncoder.ClassNames = nil
			},
		},
		{
			name: "empty item classes",
			modify: func(b *artifacts.Bundle) {
				b.ItemEncoder.ClassNames = []string{}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := testBundle()
			tt.modify(bundle)

			options := NewOptionsService(bundle, testLogger())

			if !options.Degraded() {
				t.Fatal("options should be degraded")
			}

			// Both lists collapse to the single sentinel option
			areas := options.AreaOptions()
			if len(areas) != 1 || areas[0] != OptionSentinel {
				t.Errorf("AreaOptions() = %v, want [%s]", areas, OptionSentinel)
			}

			items := options.ItemOptions()
			if len(items) != 1 || items[0] != OptionSentinel {
				t.Errorf("ItemOptions() = %v, want [%s]", items, OptionSentinel)
			}
		})
	}
}

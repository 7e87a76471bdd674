package ml

import (
	"errors"
	"testing"
)

func TestLabelEncoder_Transform(t *testing.T) {
	encoder := &LabelEncoder{
		Name:       "area",
		ClassNames: []string{"Albania", "Kenya", "Nigeria"},
	}

	code, err := encoder.Transform("Nigeria")
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if code != 2 {
		t.Errorf("Transform() = %v, want %v", code, 2)
	}
}

// Encoding the same category twice must yield the same code
func TestLabelEncoder_Transform_Deterministic(t *testing.T) {
	encoder := &LabelEncoder{
		Name:       "item",
		ClassNames: []string{"Maize", "Wheat", "Yams"},
	}

	first, err := encoder.Transform("Wheat")
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	second, err := encoder.Transform("Wheat")
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if first != second {
		t.Errorf("Transform() not deterministic: %v != %v", first, second)
	}
}

func TestLabelEncoder_Transform_UnknownCategory(t *testing.T) {
	encoder := &LabelEncoder{
		Name:       "area",
		ClassNames: []string{"Albania", "Kenya"},
	}

	_, err := encoder.Transform("Atlantis")
	if err == nil {
		t.Fatal("Transform() with unknown category should return an error")
	}

	var unknownErr *UnknownCategoryError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("Transform() error = %T, want *UnknownCategoryError", err)
	}

	if unknownErr.Label != "Atlantis" || unknownErr.Encoder != "area" {
		t.Errorf("UnknownCategoryError = %+v, want label Atlantis for encoder area", unknownErr)
	}
}

func TestLabelEncoder_Inverse(t *testing.T) {
	encoder := &LabelEncoder{
		Name:       "item",
		ClassNames: []string{"Maize", "Wheat"},
	}

	label, err := encoder.Inverse(1)
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}

	if label != "Wheat" {
		t.Errorf("Inverse() = %v, want %v", label, "Wheat")
	}

	if _, err := encoder.Inverse(5); err == nil {
		t.Error("Inverse() with out-of-range code should return an error")
	}

	if _, err := encoder.Inverse(-1); err == nil {
		t.Error("Inverse() with negative code should return an error")
	}
}

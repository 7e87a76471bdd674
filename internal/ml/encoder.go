package ml

import "fmt"

// LabelEncoder maps category strings to the integer codes assigned during
// training. Codes are positions in the fitted class list, so encoding is
// deterministic for the lifetime of the artifact.
type LabelEncoder struct {
	Name       string   `json:"name"`
	ClassNames []string `json:"classes"`
}

// Classes returns the learned class list in fit order
func (e *LabelEncoder) Classes() []string {
	return e.ClassNames
}

// Transform returns the integer code for a category string
func (e *LabelEncoder) Transform(label string) (int, error) {
	for i, class := range e.ClassNames {
		if class == label {
			return i, nil
		}
	}

	return 0, &UnknownCategoryError{
		Encoder: e.Name,
		Label:   label,
	}
}

// Inverse returns the category string for an integer code
func (e *LabelEncoder) Inverse(code int) (string, error) {
	if code < 0 || code >= len(e.ClassNames) {
		return "", fmt.Errorf("code %d out of range for %s encoder with %d classes",
			code, e.Name, len(e.ClassNames))
	}

	return e.ClassNames[code], nil
}

// UnknownCategoryError indicates a category string that was not among the
// encoder's learned classes
type UnknownCategoryError struct {
	Encoder string
	Label   string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q for %s encoder", e.Label, e.Encoder)
}

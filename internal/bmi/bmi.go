// Package bmi computes body-mass-index values and maps them to WHO weight
// categories.
package bmi

import (
	"errors"
	"fmt"
	"math"
)

// Category is a WHO-standard weight classification.
type Category string

const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal weight"
	Overweight   Category = "Overweight"
	Obese        Category = "Obese"
)

// ErrInvalidInput is returned when a non-positive height reaches the
// formula. Validation upstream should make this unreachable.
var ErrInvalidInput = errors.New("invalid input")

// Compute returns weight(kg) / height(m)^2 at full precision. Rounding is
// the caller's responsibility so that the persisted and displayed values
// are produced by a single rounding step.
func Compute(weightKg, heightM float64) (float64, error) {
	if heightM <= 0 {
		return 0, fmt.Errorf("%w: height must be positive, got %g", ErrInvalidInput, heightM)
	}

	return weightKg / (heightM * heightM), nil
}

// Round rounds a BMI value to two decimal places.
func Round(value float64) float64 {
	return math.Round(value*100) / 100
}

// Classify maps a BMI value onto the WHO categories. The partition is
// half-open: 18.5 is Normal weight, 25 is Overweight, 30 is Obese.
func Classify(value float64) Category {
	switch {
	case value < 18.5:
		return Underweight
	case value < 25:
		return NormalWeight
	case value < 30:
		return Overweight
	default:
		return Obese
	}
}

// Package validate checks raw measurement input before a record may be
// constructed.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	MaxWeightKg = 500.0
	MaxHeightM  = 3.0
)

var (
	ErrEmptyName        = errors.New("empty name")
	ErrNotANumber       = errors.New("not a number")
	ErrWeightOutOfRange = errors.New("weight out of range")
	ErrHeightOutOfRange = errors.New("height out of range")
)

// Input is a validated measurement submission. No record exists yet at
// this point.
type Input struct {
	Name     string
	WeightKg float64
	HeightM  float64
}

// Measurement validates a raw submission. The name is trimmed of
// surrounding whitespace; weight and height must parse as finite numbers
// and fall within (0, 500] kg and (0, 3] m respectively.
func Measurement(name, weightText, heightText string) (Input, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Input{}, fmt.Errorf("%w: name cannot be empty", ErrEmptyName)
	}

	weight, err := parseNumber("weight", weightText)
	if err != nil {
		return Input{}, err
	}

	height, err := parseNumber("height", heightText)
	if err != nil {
		return Input{}, err
	}

	if weight <= 0 || weight > MaxWeightKg {
		return Input{}, fmt.Errorf("%w: weight must be between 0 and %g kg, got %g", ErrWeightOutOfRange, MaxWeightKg, weight)
	}

	if height <= 0 || height > MaxHeightM {
		return Input{}, fmt.Errorf("%w: height must be between 0 and %g meters, got %g", ErrHeightOutOfRange, MaxHeightM, height)
	}

	return Input{
		Name:     trimmed,
		WeightKg: weight,
		HeightM:  height,
	}, nil
}

func parseNumber(field, text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s must be a finite number, got %q", ErrNotANumber, field, text)
	}

	return value, nil
}

// Package history composes validation, BMI classification, and the entry
// store into the operations external collaborators call.
package history

import (
	"errors"
	"fmt"

	"github.com/monorkin/bmi-tracker/internal/bmi"
	"github.com/monorkin/bmi-tracker/internal/models"
	"github.com/monorkin/bmi-tracker/internal/store"
	"github.com/monorkin/bmi-tracker/internal/validate"
)

var (
	// ErrNoSuchSubject is returned when a series is requested for a
	// subject with no recorded entries.
	ErrNoSuchSubject = errors.New("no such subject")
	// ErrExportFailed is returned when the export destination cannot be
	// written. A partially written destination is possible on failure,
	// but never a silent success.
	ErrExportFailed = errors.New("export failed")
)

// Service is stateless apart from the store it was constructed with.
// Callers are expected to serialize access; the service adds no locking
// of its own.
type Service struct {
	store *store.EntryStore
}

func NewService(entryStore *store.EntryStore) *Service {
	return &Service{store: entryStore}
}

// SubmitMeasurement validates the raw input, computes and rounds the BMI,
// classifies it, and persists the resulting entry. Validator and store
// failures propagate unchanged.
func (s *Service) SubmitMeasurement(name, weightText, heightText string) (models.Entry, error) {
	input, err := validate.Measurement(name, weightText, heightText)
	if err != nil {
		return models.Entry{}, err
	}

	value, err := bmi.Compute(input.WeightKg, input.HeightM)
	if err != nil {
		return models.Entry{}, err
	}

	rounded := bmi.Round(value)
	category := bmi.Classify(rounded)

	return s.store.Insert(input.Name, input.WeightKg, input.HeightM, rounded, string(category))
}

// GetHistory returns the full history, newest first.
func (s *Service) GetHistory() ([]models.Entry, error) {
	return s.store.ListAll()
}

// SeriesPoint is one point of a subject's BMI trend.
type SeriesPoint struct {
	Timestamp string  `json:"timestamp"`
	BMI       float64 `json:"bmi"`
}

// GetSubjectSeries returns the subject's (timestamp, bmi) points oldest
// first, ready for trend plotting. Fails with ErrNoSuchSubject when the
// subject has no entries.
func (s *Service) GetSubjectSeries(name string) ([]SeriesPoint, error) {
	entries, err := s.store.ListBySubject(name)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries found for %q", ErrNoSuchSubject, name)
	}

	points := make([]SeriesPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, SeriesPoint{
			Timestamp: entry.Timestamp,
			BMI:       entry.BMI,
		})
	}

	return points, nil
}

// GetSubjects returns the distinct subjects in the store with their entry
// counts.
func (s *Service) GetSubjects() ([]store.SubjectCount, error) {
	return s.store.Subjects()
}

// Package store provides the durable, append-only table of BMI
// measurement entries.
package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/monorkin/bmi-tracker/internal/database"
	"github.com/monorkin/bmi-tracker/internal/models"
)

// ErrStorageUnavailable is returned when the underlying database cannot
// be opened, read, or written.
var ErrStorageUnavailable = errors.New("storage unavailable")

// EntryStore owns the entries table. There is no update or delete; the
// history only grows. A store is safe to close and reopen — ids remain
// unique and monotonic across sessions.
type EntryStore struct {
	db  *gorm.DB
	now func() time.Time
}

// Open opens the store backed by the SQLite file at path, creating the
// file and schema as needed.
func Open(path string) (*EntryStore, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return &EntryStore{db: db, now: time.Now}, nil
}

func (s *EntryStore) Close() error {
	return database.Close(s.db)
}

// Insert appends a new entry. The id and timestamp are assigned by the
// store; inputs are expected to have been validated upstream.
func (s *EntryStore) Insert(name string, weightKg, heightM, bmi float64, category string) (models.Entry, error) {
	entry := models.Entry{
		Name:      name,
		Weight:    weightKg,
		Height:    heightM,
		BMI:       bmi,
		Category:  category,
		Timestamp: s.now().Format(models.TimestampLayout),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return models.Entry{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return entry, nil
}

// ListAll returns every entry, newest first. Entries sharing a timestamp
// are ordered by descending id.
func (s *EntryStore) ListAll() ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.
		Order("timestamp DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return entries, nil
}

// ListBySubject returns the entries whose name exactly equals name,
// oldest first. Ascending order is what the trend consumers expect. An
// unknown subject yields an empty slice, not an error.
func (s *EntryStore) ListBySubject(name string) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.
		Where("name = ?", name).
		Order("timestamp ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return entries, nil
}

// SubjectCount pairs a subject name with the number of entries recorded
// for it.
type SubjectCount struct {
	Name    string `json:"name"`
	Entries int64  `json:"entries"`
}

// Subjects returns the distinct subject names in the store with their
// entry counts, sorted by name.
func (s *EntryStore) Subjects() ([]SubjectCount, error) {
	var subjects []SubjectCount
	err := s.db.
		Model(&models.Entry{}).
		Select("name, COUNT(*) AS entries").
		Group("name").
		Order("name ASC").
		Scan(&subjects).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return subjects, nil
}

package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monorkin/bmi-tracker/internal/bmi"
	"github.com/monorkin/bmi-tracker/internal/store"
	"github.com/monorkin/bmi-tracker/internal/validate"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	entryStore, err := store.Open(filepath.Join(t.TempDir(), "bmi_history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { entryStore.Close() })

	return NewService(entryStore)
}

func TestSubmitMeasurement(t *testing.T) {
	service := newTestService(t)

	entry, err := service.SubmitMeasurement("Bob", "70", "1.75")
	require.NoError(t, err)

	assert.NotZero(t, entry.ID)
	assert.Equal(t, "Bob", entry.Name)
	assert.Equal(t, 70.0, entry.Weight)
	assert.Equal(t, 1.75, entry.Height)
	assert.Equal(t, 22.86, entry.BMI)
	assert.Equal(t, string(bmi.NormalWeight), entry.Category)
	assert.NotEmpty(t, entry.Timestamp)
}

func TestSubmitMeasurement_TrimsName(t *testing.T) {
	service := newTestService(t)

	entry, err := service.SubmitMeasurement("  Bob  ", "70", "1.75")
	require.NoError(t, err)
	assert.Equal(t, "Bob", entry.Name)
}

func TestSubmitMeasurement_PropagatesValidationFailures(t *testing.T) {
	service := newTestService(t)

	_, err := service.SubmitMeasurement("", "70", "1.75")
	assert.ErrorIs(t, err, validate.ErrEmptyName)

	_, err = service.SubmitMeasurement("Bob", "abc", "1.75")
	assert.ErrorIs(t, err, validate.ErrNotANumber)

	_, err = service.SubmitMeasurement("Bob", "500.01", "1.75")
	assert.ErrorIs(t, err, validate.ErrWeightOutOfRange)

	_, err = service.SubmitMeasurement("Bob", "70", "3.01")
	assert.ErrorIs(t, err, validate.ErrHeightOutOfRange)

	// Nothing was persisted
	entries, err := service.GetHistory()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetSubjectSeries(t *testing.T) {
	service := newTestService(t)

	_, err := service.SubmitMeasurement("Bob", "70", "1.75")
	require.NoError(t, err)
	_, err = service.SubmitMeasurement("Alice", "55", "1.65")
	require.NoError(t, err)
	_, err = service.SubmitMeasurement("Bob", "90", "1.75")
	require.NoError(t, err)

	points, err := service.GetSubjectSeries("Bob")
	require.NoError(t, err)
	require.Len(t, points, 2)

	// Insertion order, oldest first
	assert.Equal(t, 22.86, points[0].BMI)
	assert.Equal(t, 29.39, points[1].BMI)
	assert.LessOrEqual(t, points[0].Timestamp, points[1].Timestamp)
}

func TestGetSubjectSeries_UnknownSubject(t *testing.T) {
	service := newTestService(t)

	_, err := service.GetSubjectSeries("Nobody")
	assert.ErrorIs(t, err, ErrNoSuchSubject)
}

func TestGetHistory_NewestFirst(t *testing.T) {
	service := newTestService(t)

	_, err := service.SubmitMeasurement("Bob", "70", "1.75")
	require.NoError(t, err)
	_, err = service.SubmitMeasurement("Bob", "90", "1.75")
	require.NoError(t, err)

	entries, err := service.GetHistory()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 29.39, entries[0].BMI)
	assert.Equal(t, 22.86, entries[1].BMI)
}

func TestGetSubjects(t *testing.T) {
	service := newTestService(t)

	_, err := service.SubmitMeasurement("Bob", "70", "1.75")
	require.NoError(t, err)
	_, err = service.SubmitMeasurement("Bob", "72", "1.75")
	require.NoError(t, err)
	_, err = service.SubmitMeasurement("Alice", "55", "1.65")
	require.NoError(t, err)

	subjects, err := service.GetSubjects()
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Alice", subjects[0].Name)
	assert.EqualValues(t, 2, subjects[1].Entries)
}

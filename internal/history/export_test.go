package history

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportAll(t *testing.T) {
	service := newTestService(t)

	_, err := service.SubmitMeasurement("Bob", "70", "1.75")
	require.NoError(t, err)
	_, err = service.SubmitMeasurement("Alice", "55", "1.65")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, service.ExportAll(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"id", "name", "weight", "height", "bmi", "category", "timestamp"}, records[0])

	// Newest first, matching GetHistory
	assert.Equal(t, "Alice", records[1][1])
	assert.Equal(t, "Bob", records[2][1])
	assert.Equal(t, "70", records[2][2])
	assert.Equal(t, "1.75", records[2][3])
	assert.Equal(t, "22.86", records[2][4])
	assert.Equal(t, "Normal weight", records[2][5])
}

func TestExportAll_EmptyStore(t *testing.T) {
	service := newTestService(t)

	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, service.ExportAll(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,name,weight,height,bmi,category,timestamp\n", string(data))
}

func TestExportAll_UnwritableDestination(t *testing.T) {
	service := newTestService(t)

	path := filepath.Join(t.TempDir(), "missing", "history.csv")
	err := service.ExportAll(path)
	assert.ErrorIs(t, err, ErrExportFailed)
}

func TestExportWorkbook(t *testing.T) {
	service := newTestService(t)

	_, err := service.SubmitMeasurement("Bob", "70", "1.75")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.xlsx")
	require.NoError(t, service.ExportWorkbook(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("History", "A1")
	require.NoError(t, err)
	assert.Equal(t, "id", header)

	name, err := f.GetCellValue("History", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Bob", name)

	category, err := f.GetCellValue("History", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Normal weight", category)
}

func TestExportWorkbook_UnwritableDestination(t *testing.T) {
	service := newTestService(t)

	path := filepath.Join(t.TempDir(), "missing", "history.xlsx")
	err := service.ExportWorkbook(path)
	assert.ErrorIs(t, err, ErrExportFailed)
}

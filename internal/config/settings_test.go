package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrInitializeSettings_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	created, settings := LoadOrInitializeSettings(path)
	assert.True(t, created)
	assert.Nil(t, settings.DefaultSubject)
	assert.Equal(t, ExportFormatCSV, settings.DefaultExportFormat)
}

func TestSettings_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	subject := "Bob"
	settings := &Settings{
		DefaultSubject:      &subject,
		DefaultExportFormat: ExportFormatXLSX,
	}
	require.NoError(t, settings.SaveTo(path))

	created, loaded := LoadOrInitializeSettings(path)
	assert.False(t, created)
	require.NotNil(t, loaded.DefaultSubject)
	assert.Equal(t, "Bob", *loaded.DefaultSubject)
	assert.Equal(t, ExportFormatXLSX, loaded.DefaultExportFormat)
}

func TestLoadSettings_DefaultsExportFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	require.NoError(t, (&Settings{}).SaveTo(path))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, ExportFormatCSV, loaded.DefaultExportFormat)
}

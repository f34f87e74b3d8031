package config

import (
	"os"
	"path/filepath"
)

const (
	DB_NAME = "bmi_history.db"
)

func DBPath() string {
	if dbPath := os.Getenv("BMI_TRACKER_DB_PATH"); dbPath != "" {
		return dbPath
	}

	return filepath.Join(DataDir(), DB_NAME)
}

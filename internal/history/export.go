package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// exportHeader fixes the column order for both export formats.
var exportHeader = []string{"id", "name", "weight", "height", "bmi", "category", "timestamp"}

// ExportAll writes the full history as UTF-8 CSV to the given path. An
// empty store produces a file containing only the header row.
func (s *Service) ExportAll(path string) error {
	entries, err := s.store.ListAll()
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	for _, entry := range entries {
		record := []string{
			strconv.FormatUint(uint64(entry.ID), 10),
			entry.Name,
			formatFloat(entry.Weight),
			formatFloat(entry.Height),
			formatFloat(entry.BMI),
			entry.Category,
			entry.Timestamp,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("%w: %v", ErrExportFailed, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	return nil
}

// ExportWorkbook writes the full history as an XLSX workbook with a bold,
// shaded header row.
func (s *Service) ExportWorkbook(path string) error {
	entries, err := s.store.ListAll()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "History"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	for col, title := range exportHeader {
		if err := setCellValue(f, sheetName, col+1, 1, title); err != nil {
			return fmt.Errorf("%w: %v", ErrExportFailed, err)
		}
	}

	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	for i, entry := range entries {
		row := i + 2
		values := []any{
			entry.ID,
			entry.Name,
			entry.Weight,
			entry.Height,
			entry.BMI,
			entry.Category,
			entry.Timestamp,
		}
		for col, value := range values {
			if err := setCellValue(f, sheetName, col+1, row, value); err != nil {
				return fmt.Errorf("%w: %v", ErrExportFailed, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	return nil
}

func setCellValue(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	return f.SetCellValue(sheet, cell, value)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

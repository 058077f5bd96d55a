// Package excel imports exercise content from Excel or CSV files into
// the catalog, so clinicians can maintain routines in a spreadsheet.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/616xold/rehab-budd-islem/internal/catalog"
	"github.com/616xold/rehab-budd-islem/pkg/models"
)

// ImportConfig defines the import configuration.
type ImportConfig struct {
	FilePath           string // Path to the Excel or CSV file
	IDColumn           string // Column with the exercise ID
	NameColumn         string // Column with the exercise name
	TypeColumn         string // Column with the exercise type
	DifficultyColumn   string // Column with the difficulty level
	InstructionsColumn string // Column with the spoken instructions
	RepetitionsColumn  string // Column with the repetition count
	DurationColumn     string // Column with the duration in seconds
	RestColumn         string // Column with the rest time in seconds
	PrecautionsColumn  string // Column with the safety precautions
	SheetName          string // Name of the sheet to import
	StartRow           int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		IDColumn:           "A",
		NameColumn:         "B",
		TypeColumn:         "C",
		DifficultyColumn:   "D",
		InstructionsColumn: "E",
		RepetitionsColumn:  "F",
		DurationColumn:     "G",
		RestColumn:         "H",
		PrecautionsColumn:  "I",
		SheetName:          "Sheet1",
		StartRow:           2, // skip the header row
	}
}

// ImportResult holds the result of an import operation.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// ImportExercises imports exercises from an Excel or CSV file into the
// database-backed catalog.
func ImportExercises(config ImportConfig, repo *catalog.Repository) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config, repo)
	}
	return importFromExcel(config, repo)
}

// importFromExcel imports exercises from an Excel file.
func importFromExcel(config ImportConfig, repo *catalog.Repository) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	position := 0
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		position++

		if err := processRow(row, config, repo, result, position); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

// importFromCSV imports exercises from a CSV file using the same column
// order as the Excel layout.
func importFromCSV(config ImportConfig, repo *catalog.Repository) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	position := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++
		position++

		if err := processRow(row, config, repo, result, position); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

// processRow converts one spreadsheet row to an exercise record and
// upserts it into the catalog.
func processRow(row []string, config ImportConfig, repo *catalog.Repository, result *ImportResult, position int) error {
	ex := models.ExerciseRecord{
		ID:           cell(row, config.IDColumn),
		Name:         cell(row, config.NameColumn),
		Type:         models.NormalizeExerciseType(cell(row, config.TypeColumn)),
		Difficulty:   strings.ToLower(cell(row, config.DifficultyColumn)),
		Instructions: cell(row, config.InstructionsColumn),
		Repetitions:  cellInt(row, config.RepetitionsColumn),
		Duration:     cellInt(row, config.DurationColumn),
		Rest:         cellInt(row, config.RestColumn),
		Precautions:  cell(row, config.PrecautionsColumn),
	}

	if ex.ID == "" || ex.Name == "" || ex.Instructions == "" {
		result.Skipped++
		return nil
	}
	if _, ok := parseDifficulty(ex.Difficulty); !ok {
		result.Skipped++
		return fmt.Errorf("unknown difficulty %q", ex.Difficulty)
	}

	if err := repo.Upsert(ex, position); err != nil {
		return fmt.Errorf("failed to import exercise %s: %v", ex.ID, err)
	}
	result.Imported++
	return nil
}

func parseDifficulty(s string) (string, bool) {
	switch s {
	case catalog.DifficultyBeginner, catalog.DifficultyIntermediate, catalog.DifficultyAdvanced:
		return s, true
	default:
		return "", false
	}
}

// cell returns the trimmed value at the lettered column, or "" when the
// row is too short.
func cell(row []string, column string) string {
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellInt(row []string, column string) int {
	v, err := strconv.Atoi(cell(row, column))
	if err != nil {
		return 0
	}
	return v
}

// columnToIndex converts a column letter like "A" or "AB" to a zero-based
// index.
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	index := 0
	for _, c := range column {
		if c < 'A' || c > 'Z' {
			return -1
		}
		index = index*26 + int(c-'A') + 1
	}
	return index - 1
}

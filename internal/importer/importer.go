// Package importer reads price books — named sets of unit prices — from CSV
// and Excel files. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/RenoQuote/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Presets  []model.CatalogPreset
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name         int
	WallCovering int
	Floor        int
	Baseboard    int
	Disposal     int
	LaborRate    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":          {"name", "label", "preset", "catalog", "price book", "book", "grade"},
	"wall_covering": {"wall", "wall covering", "wallcovering", "wallpaper", "cloth"},
	"floor":         {"floor", "flooring"},
	"baseboard":     {"baseboard", "base board", "trim", "skirting"},
	"disposal":      {"disposal", "waste", "removal"},
	"labor_rate":    {"labor", "labour", "labor rate", "labour rate", "rate"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV
// delimiter. It tries comma, semicolon, tab, and pipe. The delimiter that
// produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column
// role. Returns the mapping and true if a header was detected, or a default
// positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:         -1,
		WallCovering: -1,
		Floor:        -1,
		Baseboard:    -1,
		Disposal:     -1,
		LaborRate:    -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						if mapping.Name == -1 {
							mapping.Name = i
						}
					case "wall_covering":
						if mapping.WallCovering == -1 {
							mapping.WallCovering = i
						}
					case "floor":
						if mapping.Floor == -1 {
							mapping.Floor = i
						}
					case "baseboard":
						if mapping.Baseboard == -1 {
							mapping.Baseboard = i
						}
					case "disposal":
						if mapping.Disposal == -1 {
							mapping.Disposal = i
						}
					case "labor_rate":
						if mapping.LaborRate == -1 {
							mapping.LaborRate = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping:
		// Name, Wall, Floor, Baseboard, Disposal, Labor
		return ColumnMapping{
			Name:         0,
			WallCovering: 1,
			Floor:        2,
			Baseboard:    3,
			Disposal:     4,
			LaborRate:    5,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parsePrice parses one required price column.
func parsePrice(row []string, idx int, column, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s price", rowLabel, column)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s price '%s'", rowLabel, column, s)
	}
	return v, ""
}

// parseRow extracts a CatalogPreset from a row using the given column mapping.
// Returns the preset, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, presetCount int) (model.CatalogPreset, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Price book %d", presetCount+1)
	}

	var prices model.PriceCatalog
	var errMsg string

	if prices.WallCovering, errMsg = parsePrice(row, mapping.WallCovering, "wall covering", rowLabel); errMsg != "" {
		return model.CatalogPreset{}, errMsg, ""
	}
	if prices.Floor, errMsg = parsePrice(row, mapping.Floor, "floor", rowLabel); errMsg != "" {
		return model.CatalogPreset{}, errMsg, ""
	}
	if prices.Baseboard, errMsg = parsePrice(row, mapping.Baseboard, "baseboard", rowLabel); errMsg != "" {
		return model.CatalogPreset{}, errMsg, ""
	}
	if prices.Disposal, errMsg = parsePrice(row, mapping.Disposal, "disposal", rowLabel); errMsg != "" {
		return model.CatalogPreset{}, errMsg, ""
	}

	// Labor is optional; missing means 0.
	var warning string
	laborStr := getCell(row, mapping.LaborRate)
	if laborStr != "" {
		labor, err := strconv.ParseFloat(strings.TrimSuffix(laborStr, "%"), 64)
		if err != nil {
			return model.CatalogPreset{}, fmt.Sprintf("%s: Invalid labor rate '%s'", rowLabel, laborStr), ""
		}
		// Accept either a fraction (0.2) or a percentage (20).
		if labor > 1 && labor <= 100 {
			labor /= 100
			warning = fmt.Sprintf("%s: Labor rate given as percentage, using %g", rowLabel, labor)
		}
		prices.LaborRate = labor
	}

	if err := prices.Validate(); err != nil {
		return model.CatalogPreset{}, fmt.Sprintf("%s: %v", rowLabel, err), ""
	}

	return model.NewCatalogPreset(name, prices), "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports price books from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports price books from a CSV reader with a specific
// delimiter. Useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports price books from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into a preset.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.WallCovering == -1 {
			missing = append(missing, "Wall covering")
		}
		if mapping.Floor == -1 {
			missing = append(missing, "Floor")
		}
		if mapping.Baseboard == -1 {
			missing = append(missing, "Baseboard")
		}
		if mapping.Disposal == -1 {
			missing = append(missing, "Disposal")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 2 {
		// No recognized header: if the first data column is not numeric the
		// row is probably an unrecognized header. Skip it, keep positions.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		preset, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Presets))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Presets = append(result.Presets, preset)
	}

	if len(result.Presets) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No price books found in file")
	}

	return result
}

// Package excel reads column schedules from xlsx workbooks.
//
// Expected workbook layout: a "Settings" sheet with one value per row in
// column B (beam depth, beam extension, concrete cover, scale, column
// spacing, foundation depth, foundation cover, section scale), plus one
// "ColumnData<name>" sheet per column with a header row and one floor per
// data row.
package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"gocold/internal/model"
)

// SettingsSheet is the name of the worksheet carrying global settings.
const SettingsSheet = "Settings"

// columnSheetPrefix marks worksheets holding per-column floor tables.
const columnSheetPrefix = "ColumnData"

// RequiredColumns are the header names every column sheet must provide.
var RequiredColumns = []string{
	"Total Floor Height", "Column Length", "Column Width", "Floor Name",
	"Rebar Amount", "Rebar Amount X", "Rebar Amount Y", "Rebar Diameter",
	"Edge Stirrup Spacing", "Mid Stirrup Spacing", "Stirrup Diameter",
}

// ReadWorkbook loads every column schedule from the workbook at path.
// The map is keyed by column name derived from the sheet name.
func ReadWorkbook(path string) (map[string]model.ColumnData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	settings, err := readSettings(f)
	if err != nil {
		return nil, err
	}

	columns := make(map[string]model.ColumnData)
	for _, sheet := range f.GetSheetList() {
		if !strings.HasPrefix(sheet, columnSheetPrefix) {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(sheet, columnSheetPrefix))
		if name == "" {
			name = fmt.Sprintf("Column_%d", len(columns)+1)
		}
		data, err := readColumnSheet(f, sheet, settings)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		data.ColumnName = name
		columns[name] = data
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("no %s sheets found in %s", columnSheetPrefix, path)
	}
	return columns, nil
}

// readSettings parses the Settings sheet. The foundation depth cell may hold
// a textual placeholder instead of a number; that sets FoundationSymbolic and
// leaves the default depth in place.
func readSettings(f *excelize.File) (model.ColumnSettings, error) {
	var s model.ColumnSettings

	var err error
	if s.BeamDepth, err = numericCell(f, "B1", "beam depth"); err != nil {
		return s, err
	}
	if s.BeamExtension, err = numericCell(f, "B2", "beam extension"); err != nil {
		return s, err
	}
	if s.ConcreteCover, err = numericCell(f, "B3", "concrete cover"); err != nil {
		return s, err
	}
	if s.Scale, err = numericCell(f, "B4", "scale"); err != nil {
		return s, err
	}
	if s.ColumnSpacing, err = numericCell(f, "B5", "spacing between columns"); err != nil {
		return s, err
	}

	raw, err := f.GetCellValue(SettingsSheet, "B6")
	if err != nil {
		return s, fmt.Errorf("read foundation depth: %w", err)
	}
	s.FoundationDepth = 1000
	if depth, convErr := strconv.ParseFloat(strings.TrimSpace(raw), 64); convErr == nil {
		s.FoundationDepth = depth
	} else {
		s.FoundationSymbolic = true
	}

	if s.FoundationCover, err = numericCell(f, "B7", "foundation cover"); err != nil {
		return s, err
	}
	if s.SectionScale, err = numericCell(f, "B8", "section scale"); err != nil {
		return s, err
	}

	return s, nil
}

func numericCell(f *excelize.File, cell, field string) (float64, error) {
	raw, err := f.GetCellValue(SettingsSheet, cell)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", field, err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is missing", field)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", field, raw)
	}
	return v, nil
}

func readColumnSheet(f *excelize.File, sheet string, settings model.ColumnSettings) (model.ColumnData, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return model.ColumnData{}, err
	}
	if len(rows) < 2 {
		return model.ColumnData{}, fmt.Errorf("no floor rows")
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return model.ColumnData{}, err
	}

	var floors []model.FloorData
	for _, row := range rows[1:] {
		if cellAt(row, index["Total Floor Height"]) == "" {
			continue
		}
		floor, err := parseFloorRow(row, index)
		if err != nil {
			return model.ColumnData{}, fmt.Errorf("floor row %d: %w", len(floors)+1, err)
		}
		floors = append(floors, floor)
	}

	if len(floors) == 0 {
		return model.ColumnData{}, fmt.Errorf("no valid floor data")
	}

	return model.ColumnData{Settings: settings, Floors: floors}, nil
}

// headerIndex maps the required header names to their column positions.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func parseFloorRow(row []string, index map[string]int) (model.FloorData, error) {
	var f model.FloorData
	var err error

	if f.TotalHeight, err = floatField(row, index, "Total Floor Height"); err != nil {
		return f, err
	}
	if f.ColumnLength, err = floatField(row, index, "Column Length"); err != nil {
		return f, err
	}
	if f.ColumnWidth, err = floatField(row, index, "Column Width"); err != nil {
		return f, err
	}
	f.FloorName = cellAt(row, index["Floor Name"])
	if f.RebarAmount, err = intField(row, index, "Rebar Amount"); err != nil {
		return f, err
	}
	if f.RebarAmountX, err = intField(row, index, "Rebar Amount X"); err != nil {
		return f, err
	}
	if f.RebarAmountY, err = intField(row, index, "Rebar Amount Y"); err != nil {
		return f, err
	}
	if f.RebarDiameter, err = floatField(row, index, "Rebar Diameter"); err != nil {
		return f, err
	}
	if f.EdgeStirrupSpacing, err = floatField(row, index, "Edge Stirrup Spacing"); err != nil {
		return f, err
	}
	if f.MidStirrupSpacing, err = floatField(row, index, "Mid Stirrup Spacing"); err != nil {
		return f, err
	}
	if f.StirrupDiameter, err = floatField(row, index, "Stirrup Diameter"); err != nil {
		return f, err
	}

	// Optional section number
	if i, ok := index["Section Number"]; ok {
		if raw := cellAt(row, i); raw != "" {
			if n, convErr := strconv.Atoi(strings.TrimSpace(raw)); convErr == nil {
				f.SectionNumber = n
			}
		}
	}

	return f, nil
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func floatField(row []string, index map[string]int, name string) (float64, error) {
	raw := cellAt(row, index[name])
	if raw == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

func intField(row []string, index map[string]int, name string) (int, error) {
	v, err := floatField(row, index, name)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

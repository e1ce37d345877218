package excel

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeSettingsSheet(t *testing.T, f *excelize.File, foundationDepth interface{}) {
	t.Helper()
	if _, err := f.NewSheet(SettingsSheet); err != nil {
		t.Fatal(err)
	}
	values := map[string]interface{}{
		"B1": 500.0,  // beam depth
		"B2": 150.0,  // beam extension
		"B3": 25.0,   // concrete cover
		"B4": 1.0,    // scale
		"B5": 1000.0, // column spacing
		"B6": foundationDepth,
		"B7": 50.0, // foundation cover
		"B8": 1.0,  // section scale
	}
	for cell, v := range values {
		if err := f.SetCellValue(SettingsSheet, cell, v); err != nil {
			t.Fatal(err)
		}
	}
}

func writeColumnSheet(t *testing.T, f *excelize.File, sheet string, rows [][]interface{}) {
	t.Helper()
	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatal(err)
	}
	header := make([]interface{}, len(RequiredColumns))
	for i, name := range RequiredColumns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatal(err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
}

// floorRow orders values to match RequiredColumns.
func floorRow(height, length, width float64, name string, amount, amountX, amountY int,
	rebarD, edge, mid, stirrupD float64) []interface{} {
	return []interface{}{height, length, width, name, amount, amountX, amountY, rebarD, edge, mid, stirrupD}
}

func writeWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "columns.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	writeSettingsSheet(t, f, 1200.0)
	writeColumnSheet(t, f, "ColumnDataC1", [][]interface{}{
		floorRow(3000, 400, 400, "GF", 12, 4, 4, 20, 100, 150, 8),
		floorRow(3200, 400, 400, "2F", 12, 4, 4, 20, 100, 150, 8),
	})
	writeColumnSheet(t, f, "ColumnDataC2", [][]interface{}{
		floorRow(3000, 500, 0, "GF", 8, 8, 0, 25, 100, 150, 10),
	})

	columns, err := ReadWorkbook(writeWorkbook(t, f))
	if err != nil {
		t.Fatal(err)
	}
	if len(columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(columns))
	}

	c1, ok := columns["C1"]
	if !ok {
		t.Fatal("column C1 missing")
	}
	if c1.ColumnName != "C1" || len(c1.Floors) != 2 {
		t.Fatalf("C1 has %d floors, expected 2", len(c1.Floors))
	}

	s := c1.Settings
	if s.BeamDepth != 500 || s.ConcreteCover != 25 || s.FoundationDepth != 1200 {
		t.Errorf("settings not carried: beam %.0f cover %.0f foundation %.0f",
			s.BeamDepth, s.ConcreteCover, s.FoundationDepth)
	}
	if s.FoundationSymbolic {
		t.Error("numeric foundation depth flagged symbolic")
	}

	gf := c1.Floors[0]
	if gf.FloorName != "GF" || gf.TotalHeight != 3000 || gf.RebarAmount != 12 ||
		gf.RebarAmountX != 4 || gf.RebarDiameter != 20 || gf.StirrupDiameter != 8 {
		t.Errorf("GF floor misread: %+v", gf)
	}

	if !columns["C2"].Floors[0].IsCircular() {
		t.Error("zero-width floor not circular after read")
	}
}

func TestReadWorkbookSymbolicFoundation(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	writeSettingsSheet(t, f, "NONE")
	writeColumnSheet(t, f, "ColumnDataC1", [][]interface{}{
		floorRow(3000, 400, 400, "GF", 12, 4, 4, 20, 100, 150, 8),
	})

	columns, err := ReadWorkbook(writeWorkbook(t, f))
	if err != nil {
		t.Fatal(err)
	}

	s := columns["C1"].Settings
	if !s.FoundationSymbolic {
		t.Error("textual foundation depth not flagged symbolic")
	}
	if s.FoundationDepth != 1000 {
		t.Errorf("symbolic foundation depth %.0f, expected the 1000 default", s.FoundationDepth)
	}
}

func TestReadWorkbookSkipsBlankRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	writeSettingsSheet(t, f, 1000.0)
	writeColumnSheet(t, f, "ColumnDataC1", [][]interface{}{
		floorRow(3000, 400, 400, "GF", 12, 4, 4, 20, 100, 150, 8),
		{"", "", "", "", "", "", "", "", "", "", ""},
		floorRow(3200, 400, 400, "2F", 12, 4, 4, 20, 100, 150, 8),
	})

	columns, err := ReadWorkbook(writeWorkbook(t, f))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(columns["C1"].Floors); got != 2 {
		t.Errorf("expected blank row skipped, got %d floors", got)
	}
}

func TestReadWorkbookMissingHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	writeSettingsSheet(t, f, 1000.0)
	if _, err := f.NewSheet("ColumnDataC1"); err != nil {
		t.Fatal(err)
	}
	header := []interface{}{"Total Floor Height", "Column Length"}
	if err := f.SetSheetRow("ColumnDataC1", "A1", &header); err != nil {
		t.Fatal(err)
	}
	row := []interface{}{3000, 400}
	if err := f.SetSheetRow("ColumnDataC1", "A2", &row); err != nil {
		t.Fatal(err)
	}

	_, err := ReadWorkbook(writeWorkbook(t, f))
	if err == nil {
		t.Fatal("incomplete header accepted")
	}
	if !strings.Contains(err.Error(), "missing required columns") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReadWorkbookNoColumnSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	writeSettingsSheet(t, f, 1000.0)

	_, err := ReadWorkbook(writeWorkbook(t, f))
	if err == nil {
		t.Fatal("workbook without column sheets accepted")
	}
}

func TestReadWorkbookMissingFile(t *testing.T) {
	if _, err := ReadWorkbook(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Fatal("missing file accepted")
	}
}

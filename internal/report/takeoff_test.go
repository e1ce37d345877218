package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gocold/internal/model"
)

func takeoffData() model.ColumnData {
	return model.ColumnData{
		ColumnName: "C1",
		Settings: model.ColumnSettings{
			BeamDepth:     500,
			BeamExtension: 150,
			ConcreteCover: 25,
			Scale:         1,
			SectionScale:  1,
		},
		Floors: []model.FloorData{{
			FloorName:          "GF",
			TotalHeight:        3000,
			ColumnLength:       400,
			ColumnWidth:        400,
			RebarAmount:        12,
			RebarAmountX:       4,
			RebarAmountY:       4,
			RebarDiameter:      20,
			EdgeStirrupSpacing: 100,
			MidStirrupSpacing:  150,
			StirrupDiameter:    8,
		}},
	}
}

func TestBuildTakeoff(t *testing.T) {
	takeoff := BuildTakeoff(takeoffData(), model.Point3{})

	if takeoff.ColumnName != "C1" {
		t.Errorf("column name %q, expected C1", takeoff.ColumnName)
	}
	if len(takeoff.Floors) != 1 {
		t.Fatalf("expected 1 floor, got %d", len(takeoff.Floors))
	}

	f := takeoff.Floors[0]
	if f.MainBarCount != 4 {
		t.Errorf("main bar count %d, expected 4", f.MainBarCount)
	}
	if f.MainBarDiameter != 20 || f.StirrupDiameter != 8 {
		t.Errorf("diameters %.0f/%.0f, expected 20/8", f.MainBarDiameter, f.StirrupDiameter)
	}

	// Four 3 m bars of 20 steel at about 7.40 kg each.
	if math.Abs(f.MainBarWeight-29.59) > 0.05 {
		t.Errorf("main bar weight %.2f kg, expected about 29.59", f.MainBarWeight)
	}
	if f.StirrupCount != 21 {
		t.Errorf("stirrup count %d, expected 21", f.StirrupCount)
	}
	// 21 loops of 1400 mm perimeter each.
	if math.Abs(f.StirrupLength-29400) > 0.01 {
		t.Errorf("stirrup length %.0f, expected 29400", f.StirrupLength)
	}

	want := f.MainBarWeight + f.StirrupWeight
	if math.Abs(takeoff.TotalWeight-want) > 1e-9 {
		t.Errorf("total %.4f, expected %.4f", takeoff.TotalWeight, want)
	}
}

func TestBuildTakeoffMultiFloorTotal(t *testing.T) {
	data := takeoffData()
	second := data.Floors[0]
	second.FloorName = "2F"
	data.Floors = append(data.Floors, second)

	takeoff := BuildTakeoff(data, model.Point3{})
	if len(takeoff.Floors) != 2 {
		t.Fatalf("expected 2 floors, got %d", len(takeoff.Floors))
	}

	sum := 0.0
	for _, f := range takeoff.Floors {
		sum += f.MainBarWeight + f.StirrupWeight
	}
	if math.Abs(takeoff.TotalWeight-sum) > 1e-9 {
		t.Errorf("total %.4f does not match floor sum %.4f", takeoff.TotalWeight, sum)
	}
}

func TestWritePDF(t *testing.T) {
	takeoff := BuildTakeoff(takeoffData(), model.Point3{})
	path := filepath.Join(t.TempDir(), "takeoff.pdf")

	meta := Meta{Project: "Tower A", Author: "QS"}
	if err := WritePDF([]Takeoff{takeoff}, meta, path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("PDF file is empty")
	}
}

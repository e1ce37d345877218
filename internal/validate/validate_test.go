package validate

import (
	"strings"
	"testing"

	"gocold/internal/model"
)

func validFloor() model.FloorData {
	return model.FloorData{
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
	}
}

func validData(floors ...model.FloorData) model.ColumnData {
	return model.ColumnData{
		ColumnName: "C1",
		Settings: model.ColumnSettings{
			BeamDepth:     500,
			BeamExtension: 150,
			ConcreteCover: 25,
			Scale:         1,
			SectionScale:  1,
		},
		Floors: floors,
	}
}

func hasFinding(findings []string, substr string) bool {
	for _, f := range findings {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}

func TestCheckColumnValid(t *testing.T) {
	result := CheckColumn(validData(validFloor()))

	if !result.IsValid() {
		t.Fatalf("valid data rejected: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestCheckColumnRangeErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.FloorData)
		want   string
	}{
		{"low height", func(f *model.FloorData) { f.TotalHeight = 1000 }, "height"},
		{"long column", func(f *model.FloorData) { f.ColumnLength = 6000 }, "length"},
		{"thick rebar", func(f *model.FloorData) { f.RebarDiameter = 60 }, "rebar diameter"},
		{"thick stirrup", func(f *model.FloorData) { f.StirrupDiameter = 20 }, "stirrup diameter"},
		{"tight spacing", func(f *model.FloorData) { f.EdgeStirrupSpacing = 30 }, "spacing"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			floor := validFloor()
			c.mutate(&floor)
			result := CheckColumn(validData(floor))
			if result.IsValid() {
				t.Fatal("out-of-range value accepted")
			}
			if !hasFinding(result.Errors, c.want) {
				t.Errorf("no error mentioning %q in %v", c.want, result.Errors)
			}
		})
	}
}

func TestCheckColumnBarCountMismatch(t *testing.T) {
	floor := validFloor()
	floor.RebarAmount = 10 // 4x4 perimeter needs 12

	result := CheckColumn(validData(floor))
	if result.IsValid() {
		t.Fatal("mismatched bar count accepted")
	}
	if !hasFinding(result.Errors, "mismatch") {
		t.Errorf("no mismatch error in %v", result.Errors)
	}
}

func TestCheckColumnMinimumBarCounts(t *testing.T) {
	floor := validFloor()
	floor.RebarAmountX = 1
	floor.RebarAmount = 2

	result := CheckColumn(validData(floor))
	if result.IsValid() {
		t.Fatal("single-bar rectangular grid accepted")
	}

	circular := validFloor()
	circular.ColumnWidth = 0
	circular.RebarAmountX = 0
	circular.RebarAmountY = 0
	circular.RebarAmount = 0

	result = CheckColumn(validData(circular))
	if result.IsValid() {
		t.Fatal("bar-less circular section accepted")
	}
}

func TestCheckColumnCircularValid(t *testing.T) {
	floor := validFloor()
	floor.ColumnWidth = 0
	floor.ColumnLength = 500
	floor.RebarAmount = 8
	floor.RebarAmountX = 8
	floor.RebarAmountY = 0
	floor.RebarDiameter = 25

	result := CheckColumn(validData(floor))
	if !result.IsValid() {
		t.Fatalf("valid circular floor rejected: %v", result.Errors)
	}
}

func TestCheckColumnBeamDepthConsumesFloor(t *testing.T) {
	floor := validFloor()
	data := validData(floor)
	data.Settings.BeamDepth = 3200

	result := CheckColumn(data)
	if result.IsValid() {
		t.Fatal("beam depth above floor height accepted")
	}
	if !hasFinding(result.Errors, "usable") {
		t.Errorf("no usable-height error in %v", result.Errors)
	}
}

func TestWarningsDoNotBlock(t *testing.T) {
	floor := validFloor()
	floor.EdgeStirrupSpacing = 60 // within range but flagged
	floor.MidStirrupSpacing = 350
	floor.RebarDiameter = 13 // rolled sizes jump from 12 to 16

	result := CheckColumn(validData(floor))
	if !result.IsValid() {
		t.Fatalf("warnings escalated to errors: %v", result.Errors)
	}
	if !hasFinding(result.Warnings, "very small") {
		t.Errorf("no tight-spacing warning in %v", result.Warnings)
	}
	if !hasFinding(result.Warnings, "large") {
		t.Errorf("no loose-spacing warning in %v", result.Warnings)
	}
	if !hasFinding(result.Warnings, "standard bar size") {
		t.Errorf("no non-standard size warning in %v", result.Warnings)
	}
}

func TestCheckColumnNoFloors(t *testing.T) {
	result := CheckColumn(validData())
	if result.IsValid() {
		t.Fatal("column with no floors accepted")
	}
}

func TestExpectedBarCount(t *testing.T) {
	cases := []struct {
		x, y, want int
	}{
		{4, 4, 12},
		{2, 2, 4},
		{3, 2, 6},
		{2, 5, 10},
		{5, 0, 5},
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := ExpectedBarCount(c.x, c.y); got != c.want {
			t.Errorf("ExpectedBarCount(%d, %d) = %d, expected %d", c.x, c.y, got, c.want)
		}
	}
}

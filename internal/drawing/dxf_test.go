package drawing

import (
	"os"
	"path/filepath"
	"testing"

	"gocold/internal/model"
)

func drawingData() model.ColumnData {
	return model.ColumnData{
		ColumnName: "C1",
		Settings: model.ColumnSettings{
			BeamDepth:       500,
			BeamExtension:   150,
			ConcreteCover:   25,
			Scale:           1,
			ColumnSpacing:   1000,
			FoundationDepth: 1200,
			FoundationCover: 50,
			SectionScale:    1,
		},
		Floors: []model.FloorData{
			{
				FloorName: "GF", TotalHeight: 3000, ColumnLength: 400, ColumnWidth: 400,
				RebarAmount: 12, RebarAmountX: 4, RebarAmountY: 4, RebarDiameter: 20,
				EdgeStirrupSpacing: 100, MidStirrupSpacing: 150, StirrupDiameter: 8,
			},
			{
				FloorName: "2F", TotalHeight: 3200, ColumnLength: 500, ColumnWidth: 0,
				RebarAmount: 8, RebarAmountX: 8, RebarAmountY: 0, RebarDiameter: 25,
				EdgeStirrupSpacing: 100, MidStirrupSpacing: 150, StirrupDiameter: 10,
			},
		},
	}
}

func TestNewRegistersLayers(t *testing.T) {
	d, err := New()
	if err != nil {
		t.Fatal(err)
	}
	for _, layer := range StandardLayers {
		if err := d.ChangeLayer(layer.Name); err != nil {
			t.Errorf("layer %s not registered: %v", layer.Name, err)
		}
	}
}

func TestElevationAndSectionsSave(t *testing.T) {
	d, err := New()
	if err != nil {
		t.Fatal(err)
	}

	data := drawingData()
	if err := Elevation(d, data, model.Point3{}, 1); err != nil {
		t.Fatal(err)
	}
	sectionBase := model.Point3{Y: -2000}
	if err := Sections(d, data, sectionBase); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "column.dxf")
	if err := d.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("DXF file is empty")
	}
}

func TestElevationSymbolicFoundation(t *testing.T) {
	d, err := New()
	if err != nil {
		t.Fatal(err)
	}

	data := drawingData()
	data.Settings.FoundationSymbolic = true
	if err := Elevation(d, data, model.Point3{}, 1); err != nil {
		t.Fatal(err)
	}
}

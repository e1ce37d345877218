package model

import (
	"math"
	"testing"
)

func TestPoint3Offset(t *testing.T) {
	p := Point3{X: 100, Y: 200, Z: 5}
	q := p.Offset(-50, 300, 0)

	if q != (Point3{X: 50, Y: 500, Z: 5}) {
		t.Errorf("offset gave %+v", q)
	}
	if p != (Point3{X: 100, Y: 200, Z: 5}) {
		t.Error("Offset mutated the receiver")
	}
}

func TestFloorDataIsCircular(t *testing.T) {
	if (FloorData{ColumnLength: 400, ColumnWidth: 400}).IsCircular() {
		t.Error("rectangular floor reported circular")
	}
	if !(FloorData{ColumnLength: 500, ColumnWidth: 0}).IsCircular() {
		t.Error("zero-width floor not reported circular")
	}
}

func TestFloorDataSectionArea(t *testing.T) {
	rect := FloorData{ColumnLength: 400, ColumnWidth: 300}
	if rect.SectionArea() != 120000 {
		t.Errorf("rectangular area %.0f, expected 120000", rect.SectionArea())
	}

	circ := FloorData{ColumnLength: 500}
	want := math.Pi * 250 * 250
	if math.Abs(circ.SectionArea()-want) > 1e-6 {
		t.Errorf("circular area %.0f, expected %.0f", circ.SectionArea(), want)
	}
}

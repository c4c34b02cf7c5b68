package models

import (
	"encoding/json"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Number(0), "0"},
		{Number(math.Copysign(0, -1)), "0"},
		{Number(10), "10"},
		{Number(-2.5), "-2.5"},
		{Number(0.1), "0.1"},
		{Number(123456789), "123456789"},
		{Number(1e21), "1e+21"},
		{Number(1e-7), "1e-07"},
		{Number(math.NaN()), "NaN"},
		{Number(math.Inf(-1)), "-Infinity"},
		{Text("  North "), "North"},
		{Value{}, ""},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestValueIsEmpty(t *testing.T) {
	if !Text("   ").IsEmpty() {
		t.Error("whitespace text should be empty")
	}
	if Number(0).IsEmpty() {
		t.Error("zero is a value, not empty")
	}
	if Text("0").IsEmpty() {
		t.Error(`"0" text should not be empty`)
	}
}

func TestValueMarshal(t *testing.T) {
	row := Row{"n": Number(20), "s": Text("20"), "nan": Number(math.NaN())}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if got, want := string(data), `{"n":20,"nan":"NaN","s":"20"}`; got != want {
		t.Errorf("json = %s, want %s", got, want)
	}

	yamlTests := []struct {
		row  Row
		want string
	}{
		{Row{"num": Number(1.5), "s": Text("x")}, "num: 1.5\ns: x\n"},
		// Columns named like YAML 1.1 booleans keep their quoted keys.
		{Row{"n": Number(2), "y": Text("yes")}, "\"n\": 2\n\"y\": \"yes\"\n"},
	}
	for _, tt := range yamlTests {
		out, err := yaml.Marshal(tt.row)
		if err != nil {
			t.Fatalf("yaml.Marshal failed: %v", err)
		}
		if got := string(out); got != tt.want {
			t.Errorf("yaml = %q, want %q", got, tt.want)
		}
		var back map[string]interface{}
		if err := yaml.Unmarshal(out, &back); err != nil {
			t.Fatalf("yaml.Unmarshal failed: %v", err)
		}
		if len(back) != len(tt.row) {
			t.Errorf("round trip = %v", back)
		}
	}
}

func TestGridBounds(t *testing.T) {
	cells := map[Cell]Value{
		{Row: 2, Col: 1}: Text("a"),
		{Row: 5, Col: 3}: Number(1),
	}

	g := NewGrid(cells, nil)
	b, ok := g.Bounds()
	if !ok || b != (Range{MinRow: 2, MinCol: 1, MaxRow: 5, MaxCol: 3}) {
		t.Errorf("Bounds() = %+v, %v", b, ok)
	}
	if b.Rows() != 4 || b.Cols() != 3 {
		t.Errorf("Rows/Cols = %d/%d", b.Rows(), b.Cols())
	}

	declared := &Range{MaxRow: 9, MaxCol: 9}
	if b, _ := NewGrid(cells, declared).Bounds(); b != *declared {
		t.Errorf("declared Bounds() = %+v", b)
	}

	cells[Cell{Row: 0, Col: 0}] = Text("late")
	if _, ok := g.Value(0, 0); ok {
		t.Error("grid shares the caller's map")
	}

	if _, ok := NewGrid(nil, nil).Bounds(); ok {
		t.Error("empty grid reports bounds")
	}
	var nilGrid *Grid
	if _, ok := nilGrid.Value(0, 0); ok || nilGrid.Len() != 0 {
		t.Error("nil grid is not empty")
	}
}

func TestWorkbookSheet(t *testing.T) {
	wb := &Workbook{
		SheetNames: []string{"B", "A"},
		Sheets:     map[string]*Grid{"A": NewGrid(nil, nil), "B": NewGrid(nil, nil)},
	}
	if wb.FirstSheet() != "B" {
		t.Errorf("FirstSheet() = %q, want workbook order", wb.FirstSheet())
	}
	if _, ok := wb.Sheet("C"); ok {
		t.Error("Sheet(C) found a sheet")
	}
	var none *Workbook
	if none.FirstSheet() != "" {
		t.Error("nil workbook has a first sheet")
	}
}

package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/xuri/excelize/v2"
)

// saveWorkbook writes f to a temp file and returns its bytes.
func saveWorkbook(t *testing.T, f *excelize.File) []byte {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read test file: %v", err)
	}
	return data
}

func TestReadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "  Text  ")
	f.SetCellStr(sheetName, "B3", "00123")
	if _, err := f.NewSheet("Second"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}

	wb, err := ReadWorkbook(bytes.NewReader(saveWorkbook(t, f)))
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if len(wb.SheetNames) != 2 || wb.SheetNames[0] != "Sheet1" || wb.SheetNames[1] != "Second" {
		t.Fatalf("SheetNames = %v, want [Sheet1 Second]", wb.SheetNames)
	}

	grid, ok := wb.Sheet(sheetName)
	if !ok {
		t.Fatal("Sheet1 grid missing")
	}

	bounds, ok := grid.Bounds()
	if !ok {
		t.Fatal("Sheet1 grid has no bounds")
	}
	if bounds.MaxRow != 2 || bounds.MaxCol != 1 || bounds.MinRow != 0 || bounds.MinCol != 0 {
		t.Errorf("bounds = %+v, want rows 0-2, cols 0-1", bounds)
	}

	tests := []struct {
		row, col int
		want     models.Value
	}{
		{0, 0, models.Text("Header1")},
		{1, 0, models.Number(100)},
		{1, 1, models.Number(200.5)},
		{2, 0, models.Text("Text")},
		{2, 1, models.Text("00123")},
	}
	for _, tt := range tests {
		got, _ := grid.Value(tt.row, tt.col)
		if got != tt.want {
			t.Errorf("cell (%d,%d) = %#v, want %#v", tt.row, tt.col, got, tt.want)
		}
	}

	second, ok := wb.Sheet("Second")
	if !ok {
		t.Fatal("Second grid missing")
	}
	if _, ok := second.Bounds(); ok {
		t.Error("empty sheet should have no bounds")
	}
}

func TestReadWorkbookInvalid(t *testing.T) {
	if _, err := ReadWorkbook(bytes.NewReader([]byte("not a spreadsheet"))); err == nil {
		t.Error("ReadWorkbook should fail on non-xlsx input")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{"1e3", models.Number(1000)},
		{"hello", models.Text("hello")},
		{"NaN", models.Text("NaN")},
		{"", models.Text("")},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %#v, expected %#v", tt.input, result, tt.expected)
		}
	}
}

func TestCellValueByType(t *testing.T) {
	tests := []struct {
		raw      string
		cellType excelize.CellType
		expected models.Value
	}{
		{"42", excelize.CellTypeNumber, models.Number(42)},
		{"42", excelize.CellTypeSharedString, models.Text("42")},
		{"1", excelize.CellTypeBool, models.Text("true")},
		{"0", excelize.CellTypeBool, models.Text("false")},
		{" abc ", excelize.CellTypeInlineString, models.Text("abc")},
	}

	for _, tt := range tests {
		if got := cellValue(tt.raw, tt.cellType); got != tt.expected {
			t.Errorf("cellValue(%q, %v) = %#v, expected %#v", tt.raw, tt.cellType, got, tt.expected)
		}
	}
}

func TestParseRangeRef(t *testing.T) {
	tests := []struct {
		ref  string
		want *models.Range
	}{
		{"A1:D10", &models.Range{MinRow: 0, MinCol: 0, MaxRow: 9, MaxCol: 3}},
		{"$B$2:$C$3", &models.Range{MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 2}},
		{"C5", &models.Range{MinRow: 4, MinCol: 2, MaxRow: 4, MaxCol: 2}},
		{"", nil},
		{"bogus", nil},
	}

	for _, tt := range tests {
		got := parseRangeRef(tt.ref)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("parseRangeRef(%q) = %+v, want nil", tt.ref, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("parseRangeRef(%q) = %v, want %+v", tt.ref, got, *tt.want)
		}
	}
}

package parser

import (
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook decodes an xlsx container into one cell grid per sheet.
// Sheets keep workbook order.
func ReadWorkbook(r io.Reader) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names := f.GetSheetList()
	wb := &models.Workbook{
		SheetNames: names,
		Sheets:     make(map[string]*models.Grid, len(names)),
	}
	for _, name := range names {
		grid, err := ExtractGrid(f, name)
		if err != nil {
			return nil, err
		}
		wb.Sheets[name] = grid
	}
	return wb, nil
}

// ExtractGrid reads every populated cell of a sheet into a Grid.
// Raw cell values are used so number formats do not change the stored value.
func ExtractGrid(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	cells := make(map[models.Cell]models.Value)
	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				continue
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				cellType = excelize.CellTypeUnset
			}
			cells[models.Cell{Row: rowIdx, Col: colIdx}] = cellValue(raw, cellType)
		}
	}

	return models.NewGrid(cells, declaredBounds(f, sheetName, cells)), nil
}

// cellValue converts a raw cell string into a Value according to the stored
// cell type. Cells without an explicit type are numeric when they parse as one.
func cellValue(raw string, cellType excelize.CellType) models.Value {
	switch cellType {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return parseValue(raw)
	case excelize.CellTypeBool:
		switch raw {
		case "1", "TRUE", "true":
			return models.Text("true")
		case "0", "FALSE", "false":
			return models.Text("false")
		}
	}
	return models.Text(raw)
}

// parseValue attempts to parse a string value as a number.
// Returns a numeric Value for integers and decimals, or trimmed text otherwise.
func parseValue(s string) models.Value {
	trimmed := strings.TrimSpace(s)
	// Try integer first
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	// Try float, rejecting the spellings ParseFloat accepts that a sheet never stores
	if isDecimal(trimmed) {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return models.Number(f)
		}
	}
	return models.Text(s)
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}

package parser

import (
	"strings"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/xuri/excelize/v2"
)

// declaredBounds returns the sheet's occupied range: the declared dimension
// widened to cover every populated cell. It returns nil for a sheet without data.
func declaredBounds(f *excelize.File, sheetName string, cells map[models.Cell]models.Value) *models.Range {
	var declared *models.Range
	if ref, err := f.GetSheetDimension(sheetName); err == nil {
		declared = parseRangeRef(ref)
	}

	populated, ok := findDataBounds(cells)
	switch {
	case !ok:
		return nil
	case declared == nil:
		return &populated
	}

	return &models.Range{
		MinRow: min(declared.MinRow, populated.MinRow),
		MinCol: min(declared.MinCol, populated.MinCol),
		MaxRow: max(declared.MaxRow, populated.MaxRow),
		MaxCol: max(declared.MaxCol, populated.MaxCol),
	}
}

// findDataBounds finds the bounding box of cells holding a non-empty value.
func findDataBounds(cells map[models.Cell]models.Value) (models.Range, bool) {
	var r models.Range
	found := false
	for addr, v := range cells {
		if v.IsEmpty() {
			continue
		}
		if !found {
			r = models.Range{MinRow: addr.Row, MaxRow: addr.Row, MinCol: addr.Col, MaxCol: addr.Col}
			found = true
			continue
		}
		r.MinRow = min(r.MinRow, addr.Row)
		r.MaxRow = max(r.MaxRow, addr.Row)
		r.MinCol = min(r.MinCol, addr.Col)
		r.MaxCol = max(r.MaxCol, addr.Col)
	}
	return r, found
}

// parseRangeRef parses a reference like "$A$1:$D$10" or "B2" into a zero-based range.
func parseRangeRef(ref string) *models.Range {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if ref == "" {
		return nil
	}

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.Range{
		MinRow: min(startRow, endRow) - 1,
		MinCol: min(startCol, endCol) - 1,
		MaxRow: max(startRow, endRow) - 1,
		MaxCol: max(startCol, endCol) - 1,
	}
}

package parser

import (
	"fmt"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

// SyntheticColumnName is the name given to a header cell that is empty or
// repeats an earlier name. col is the zero-based grid column.
func SyntheticColumnName(col int) string {
	return fmt.Sprintf("Column %d", col+1)
}

// DeriveHeaders reads column names from headerRow across the grid's full column
// range, left to right. Empty names and names already taken by an earlier column
// are replaced with SyntheticColumnName, so the result never holds duplicates.
func DeriveHeaders(g *models.Grid, headerRow int) []string {
	bounds, ok := g.Bounds()
	if !ok {
		return nil
	}

	headers := make([]string, 0, bounds.Cols())
	seen := make(map[string]bool, bounds.Cols())
	for col := bounds.MinCol; col <= bounds.MaxCol; col++ {
		v, _ := g.Value(headerRow, col)
		name := v.String()
		if name == "" || seen[name] {
			name = uniqueName(SyntheticColumnName(col), seen)
		}
		seen[name] = true
		headers = append(headers, name)
	}
	return headers
}

// uniqueName returns base, or base with a numeric suffix when a raw header
// already claimed the synthetic name.
func uniqueName(base string, seen map[string]bool) string {
	name := base
	for n := 2; seen[name]; n++ {
		name = fmt.Sprintf("%s (%d)", base, n)
	}
	return name
}

// ExtractRows reads the records below headerRow. Each header reads the cell in
// its own grid column; absent cells become empty text. Rows where every field is
// empty are dropped.
func ExtractRows(g *models.Grid, headerRow int) []models.Row {
	bounds, ok := g.Bounds()
	if !ok {
		return nil
	}
	headers := DeriveHeaders(g, headerRow)

	var result []models.Row
	for row := headerRow + 1; row <= bounds.MaxRow; row++ {
		record := make(models.Row, len(headers))
		hasData := false
		for i, header := range headers {
			v, _ := g.Value(row, bounds.MinCol+i)
			if !v.IsEmpty() {
				hasData = true
			}
			record[header] = v
		}
		if hasData {
			result = append(result, record)
		}
	}
	return result
}

// HeaderCandidates returns the rows offered as header row choices: the first
// limit rows of the sheet, starting at row 0.
func HeaderCandidates(g *models.Grid, limit int) []int {
	bounds, ok := g.Bounds()
	if !ok || limit <= 0 {
		return nil
	}
	n := min(limit, bounds.MaxRow+1)
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// PreviewRows returns the display text of the top-left rows × cols block of the
// sheet, starting at cell A1, so a header row can be picked by eye.
func PreviewRows(g *models.Grid, rows, cols int) [][]string {
	bounds, ok := g.Bounds()
	if !ok || rows <= 0 || cols <= 0 {
		return nil
	}
	rows = min(rows, bounds.MaxRow+1)
	cols = min(cols, bounds.MaxCol+1)

	out := make([][]string, rows)
	for r := range out {
		line := make([]string, cols)
		for c := range line {
			v, _ := g.Value(r, c)
			line[c] = v.String()
		}
		out[r] = line
	}
	return out
}

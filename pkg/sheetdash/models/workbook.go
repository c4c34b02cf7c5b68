// Package models defines the data structures shared by ingestion, transformation
// and the canvas.
package models

// Workbook is a decoded spreadsheet container.
type Workbook struct {
	// Name is the workbook file name (no path).
	Name string `json:"name" yaml:"name"`
	// SheetNames lists the sheets in workbook order.
	SheetNames []string `json:"sheet_names" yaml:"sheet_names"`
	// Sheets maps sheet name to its cell grid.
	Sheets map[string]*Grid `json:"-" yaml:"-"`
}

// Sheet returns the grid for name.
func (w *Workbook) Sheet(name string) (*Grid, bool) {
	if w == nil {
		return nil, false
	}
	g, ok := w.Sheets[name]
	return g, ok
}

// FirstSheet returns the name of the first sheet, or "" for an empty workbook.
func (w *Workbook) FirstSheet() string {
	if w == nil || len(w.SheetNames) == 0 {
		return ""
	}
	return w.SheetNames[0]
}

package models

// Row is one record of the tabular model, keyed by column name.
type Row map[string]Value

// Get returns the value for column, or empty text when the column is absent.
func (r Row) Get(column string) Value {
	return r[column]
}

// Table is the tabular model derived from the current sheet and header row.
type Table struct {
	// Columns lists the unique column names in grid order.
	Columns []string `json:"columns" yaml:"columns"`
	// Rows holds the retained records below the header row.
	Rows []Row `json:"rows" yaml:"rows"`
	// HeaderRow is the zero-based grid row that supplied the column names.
	HeaderRow int `json:"header_row" yaml:"header_row"`
	// Sheets lists the sheet names the source workbook contained.
	Sheets []string `json:"sheets" yaml:"sheets"`
	// CurrentSheet is the sheet the table was derived from.
	CurrentSheet string `json:"current_sheet" yaml:"current_sheet"`
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

package models

// Cell is a zero-based grid address.
type Cell struct {
	// Row is the zero-based row index.
	Row int `json:"r"`
	// Col is the zero-based column index.
	Col int `json:"c"`
}

// Range is an inclusive, zero-based rectangle of cells.
type Range struct {
	// MinRow is the first row of the range.
	MinRow int `json:"min_row"`
	// MinCol is the first column of the range.
	MinCol int `json:"min_col"`
	// MaxRow is the last row of the range (inclusive).
	MaxRow int `json:"max_row"`
	// MaxCol is the last column of the range (inclusive).
	MaxCol int `json:"max_col"`
}

// Rows returns the number of rows covered by the range.
func (r Range) Rows() int { return r.MaxRow - r.MinRow + 1 }

// Cols returns the number of columns covered by the range.
func (r Range) Cols() int { return r.MaxCol - r.MinCol + 1 }

// Grid is a sparse, immutable cell address space decoded from one sheet.
// Absent cells read as empty text.
type Grid struct {
	cells  map[Cell]Value
	bounds Range
	empty  bool
}

// NewGrid builds a Grid from cells. If bounds is nil the bounding box of the
// populated cells is used. The cells map is copied.
func NewGrid(cells map[Cell]Value, bounds *Range) *Grid {
	g := &Grid{cells: make(map[Cell]Value, len(cells))}
	for addr, v := range cells {
		g.cells[addr] = v
	}
	switch {
	case bounds != nil:
		g.bounds = *bounds
	case len(g.cells) == 0:
		g.empty = true
	default:
		g.bounds = boundsOf(g.cells)
	}
	return g
}

// Bounds returns the declared occupied range and false when the grid has none.
func (g *Grid) Bounds() (Range, bool) {
	if g == nil || g.empty {
		return Range{}, false
	}
	return g.bounds, true
}

// Value returns the value at (row, col) and whether a cell is stored there.
func (g *Grid) Value(row, col int) (Value, bool) {
	if g == nil {
		return Value{}, false
	}
	v, ok := g.cells[Cell{Row: row, Col: col}]
	return v, ok
}

// Len returns the number of stored cells.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

func boundsOf(cells map[Cell]Value) Range {
	first := true
	var r Range
	for addr := range cells {
		if first {
			r = Range{MinRow: addr.Row, MaxRow: addr.Row, MinCol: addr.Col, MaxCol: addr.Col}
			first = false
			continue
		}
		r.MinRow = min(r.MinRow, addr.Row)
		r.MaxRow = max(r.MaxRow, addr.Row)
		r.MinCol = min(r.MinCol, addr.Col)
		r.MaxCol = max(r.MaxCol, addr.Col)
	}
	return r
}

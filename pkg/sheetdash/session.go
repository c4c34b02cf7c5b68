package sheetdash

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/canvas"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/layout"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/parser"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/roles"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/transform"
)

// HeaderCandidate is one row offered as the header row.
type HeaderCandidate struct {
	// Row is the zero-based grid row.
	Row int `json:"row" yaml:"row"`
	// Cells holds the display text of the row's leading cells.
	Cells []string `json:"cells" yaml:"cells"`
}

// Session is the single owner of a dashboard's state: the loaded workbook,
// the tabular model, the canvas items and the gesture controller. Chart data
// is re-derived whenever the model or an item's bindings change.
//
// A Session is not safe for concurrent use.
type Session struct {
	opts   Options
	logger *log.Logger

	workbook *models.Workbook
	table    *models.Table
	embedded []models.EmbeddedChart

	store   *canvas.Store
	layout  *layout.Controller
	outputs map[models.ItemID]transform.Output
}

// NewSession returns a session with an empty canvas and no workbook.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	store := canvas.NewStore()
	s := &Session{
		opts:    opts,
		logger:  logger,
		store:   store,
		layout:  layout.NewController(store, layout.Options{MinSize: opts.MinItemSize(), Pointer: opts.Pointer}),
		outputs: make(map[models.ItemID]transform.Output),
	}
	store.Subscribe(s.onChange)
	return s
}

// Store returns the canvas item store.
func (s *Session) Store() *canvas.Store { return s.store }

// Layout returns the pointer gesture controller.
func (s *Session) Layout() *layout.Controller { return s.layout }

// Workbook returns the loaded workbook, or nil.
func (s *Session) Workbook() *models.Workbook { return s.workbook }

// Table returns the current tabular model, or nil before a workbook is loaded.
func (s *Session) Table() *models.Table { return s.table }

// EmbeddedCharts returns the charts found in the loaded workbook's drawings.
func (s *Session) EmbeddedCharts() []models.EmbeddedChart {
	return append([]models.EmbeddedChart(nil), s.embedded...)
}

// LoadFile loads the workbook at path.
func (s *Session) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewIngestionError(path, "read", fmt.Errorf("%w: %s", ErrFileNotFound, path))
		}
		return NewIngestionError(path, "read", err)
	}
	return s.load(data, filepath.Base(path))
}

// Load reads a workbook from r. name labels the workbook in logs and errors.
// The first sheet becomes current with header row 0. On error the previous
// workbook and model stay in effect.
func (s *Session) Load(r io.Reader, name string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return NewIngestionError(name, "read", err)
	}
	return s.load(data, name)
}

func (s *Session) load(data []byte, name string) error {
	wb, err := parser.ReadWorkbook(bytes.NewReader(data))
	if err != nil {
		return NewIngestionError(name, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	if len(wb.SheetNames) == 0 {
		return NewIngestionError(name, "sheets", ErrNoSheets)
	}
	wb.Name = name

	embedded, err := parser.ReadEmbeddedCharts(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		s.logger.Debug("skipping embedded charts", "workbook", name, "err", err)
		embedded = nil
	}

	s.workbook = wb
	s.embedded = embedded
	s.setTable(tabulate(wb, wb.FirstSheet(), 0))
	s.logger.Debug("loaded workbook", "workbook", name, "sheets", len(wb.SheetNames),
		"columns", len(s.table.Columns), "rows", len(s.table.Rows))
	return nil
}

// SelectSheet makes name the current sheet, keeping the header row index.
func (s *Session) SelectSheet(name string) error {
	if s.workbook == nil {
		return ErrNoWorkbook
	}
	if _, ok := s.workbook.Sheet(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSheet, name)
	}
	s.setTable(tabulate(s.workbook, name, s.table.HeaderRow))
	s.logger.Debug("selected sheet", "sheet", name, "columns", len(s.table.Columns))
	return nil
}

// SelectHeaderRow re-derives the model with row as the header row.
func (s *Session) SelectHeaderRow(row int) error {
	if s.workbook == nil {
		return ErrNoWorkbook
	}
	if row < 0 {
		return fmt.Errorf("%w: %d", ErrHeaderRowOutOfRange, row)
	}
	s.setTable(tabulate(s.workbook, s.table.CurrentSheet, row))
	s.logger.Debug("selected header row", "row", row, "columns", len(s.table.Columns))
	return nil
}

// HeaderCandidates previews the leading rows of the current sheet.
func (s *Session) HeaderCandidates() []HeaderCandidate {
	if s.workbook == nil {
		return nil
	}
	grid, _ := s.workbook.Sheet(s.table.CurrentSheet)
	ingest := s.opts.Config.Ingest
	preview := parser.PreviewRows(grid, ingest.PreviewRows, ingest.PreviewColumns)

	out := make([]HeaderCandidate, 0, len(preview))
	for _, row := range parser.HeaderCandidates(grid, ingest.PreviewRows) {
		if row >= len(preview) {
			break
		}
		out = append(out, HeaderCandidate{Row: row, Cells: preview[row]})
	}
	return out
}

// AddVisualization places a new item of kind at the canvas origin with the
// configured default size and title.
func (s *Session) AddVisualization(kind roles.Kind) (models.ItemID, error) {
	return s.store.AddItem(kind, kind.DefaultTitle(), models.Point{}, s.opts.DefaultItemSize())
}

// Output returns the chart-ready data of item id. The result is not Ready
// while the item has unbound roles.
func (s *Session) Output(id models.ItemID) (transform.Output, bool) {
	out, ok := s.outputs[id]
	return out, ok
}

// ImportEmbeddedCharts adds one canvas item per embedded chart whose type has a
// matching kind, at the chart's position and size. Bindings start empty.
func (s *Session) ImportEmbeddedCharts() []models.ItemID {
	var ids []models.ItemID
	for _, c := range s.embedded {
		kind, ok := KindForEmbedded(c)
		if !ok {
			s.logger.Debug("skipping embedded chart", "name", c.Name, "type", c.Type)
			continue
		}
		title := c.Title
		if title == "" {
			title = kind.DefaultTitle()
		}
		size := c.Size
		if size.Width <= 0 || size.Height <= 0 {
			size = s.opts.DefaultItemSize()
		}
		id, err := s.store.AddItem(kind, title, c.Position, size)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// KindForEmbedded maps a workbook chart to the closest canvas kind. Vertical
// bars map to bar and horizontal bars to column, matching how the canvas draws
// them; stacked groupings select the stacked kinds.
func KindForEmbedded(c models.EmbeddedChart) (roles.Kind, bool) {
	stackedGroup := c.Grouping == "stacked" || c.Grouping == "percentStacked"
	switch c.Type {
	case "barChart", "bar3DChart":
		horizontal := c.BarDir == "bar"
		switch {
		case stackedGroup && horizontal:
			return roles.KindStackedColumn, true
		case stackedGroup:
			return roles.KindStackedBar, true
		case horizontal:
			return roles.KindColumn, true
		}
		return roles.KindBar, true
	case "lineChart", "line3DChart":
		return roles.KindLine, true
	case "pieChart", "pie3DChart", "ofPieChart":
		return roles.KindPie, true
	case "doughnutChart":
		return roles.KindDonut, true
	}
	return "", false
}

func (s *Session) setTable(t *models.Table) {
	s.table = t
	for _, item := range s.store.Items() {
		s.outputs[item.ID] = transform.ForItem(t, item)
	}
}

func (s *Session) onChange(c canvas.Change) {
	switch c.Kind {
	case canvas.ItemAdded, canvas.BindingsChanged:
		if item, ok := s.store.Item(c.ID); ok {
			s.outputs[c.ID] = transform.ForItem(s.table, item)
		}
	case canvas.ItemRemoved:
		delete(s.outputs, c.ID)
	}
}

// tabulate derives the tabular model of sheet with headerRow as the header row.
func tabulate(wb *models.Workbook, sheet string, headerRow int) *models.Table {
	grid, _ := wb.Sheet(sheet)
	return &models.Table{
		Columns:      parser.DeriveHeaders(grid, headerRow),
		Rows:         parser.ExtractRows(grid, headerRow),
		HeaderRow:    headerRow,
		Sheets:       append([]string(nil), wb.SheetNames...),
		CurrentSheet: sheet,
	}
}

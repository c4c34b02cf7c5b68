package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/layout"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/output"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/roles"
	"gopkg.in/yaml.v3"
)

// script is a recorded dashboard session:
//
//	workbook: sales.xlsx
//	sheet: Sheet1
//	header_row: 0
//	steps:
//	  - add: bar
//	    as: sales
//	  - activate: sales
//	  - drop: {item: sales, role: xAxis, column: Region}
//	  - down: {item: sales, target: body, x: 10, y: 10}
//	  - move: {x: 40, y: 25}
//	  - up: {x: 40, y: 25}
type script struct {
	Workbook  string `yaml:"workbook"`
	Sheet     string `yaml:"sheet"`
	HeaderRow int    `yaml:"header_row"`
	Steps     []step `yaml:"steps"`
}

// step holds exactly one operation.
type step struct {
	Add   string `yaml:"add,omitempty"`
	As    string `yaml:"as,omitempty"`
	Title string `yaml:"title,omitempty"`

	Activate   string `yaml:"activate,omitempty"`
	Deactivate bool   `yaml:"deactivate,omitempty"`
	Remove     string `yaml:"remove,omitempty"`

	Drop *dropStep     `yaml:"drop,omitempty"`
	Down *downStep     `yaml:"down,omitempty"`
	Move *models.Point `yaml:"move,omitempty"`
	Up   *models.Point `yaml:"up,omitempty"`

	SelectSheet     string `yaml:"select_sheet,omitempty"`
	SelectHeaderRow *int   `yaml:"select_header_row,omitempty"`
	ImportEmbedded  bool   `yaml:"import_embedded,omitempty"`
}

type dropStep struct {
	Item   string     `yaml:"item"`
	Role   roles.Role `yaml:"role"`
	Column string     `yaml:"column"`
}

type downStep struct {
	Item   string  `yaml:"item"`
	Target string  `yaml:"target"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

var errBadStep = errors.New("invalid step")

// ops counts the operations set on s.
func (s step) ops() int {
	n := 0
	for _, set := range []bool{
		s.Add != "", s.Activate != "", s.Deactivate, s.Remove != "",
		s.Drop != nil, s.Down != nil, s.Move != nil, s.Up != nil,
		s.SelectSheet != "", s.SelectHeaderRow != nil, s.ImportEmbedded,
	} {
		if set {
			n++
		}
	}
	return n
}

// decodeScript parses a session script and checks every step names exactly one
// operation.
func decodeScript(r io.Reader) (*script, error) {
	var sc script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, st := range sc.Steps {
		if n := st.ops(); n != 1 {
			return nil, fmt.Errorf("%w %d: has %d operations, want 1", errBadStep, i+1, n)
		}
		if st.As != "" && st.Add == "" {
			return nil, fmt.Errorf("%w %d: 'as' without 'add'", errBadStep, i+1)
		}
	}
	return &sc, nil
}

func parseTarget(s string) (layout.Target, error) {
	switch s {
	case "", "body":
		return layout.TargetBody, nil
	case "resize", "handle":
		return layout.TargetResizeHandle, nil
	}
	return 0, fmt.Errorf("unknown pointer target %q (want body or resize)", s)
}

// player replays script steps against a session. Pointer moves and releases go
// through the hub, the same way a host forwards document-level events.
type player struct {
	session *sheetdash.Session
	hub     *layout.Hub
	aliases map[string]models.ItemID
	logger  *log.Logger
}

func newPlayer(s *sheetdash.Session, hub *layout.Hub, logger *log.Logger) *player {
	return &player{session: s, hub: hub, aliases: make(map[string]models.ItemID), logger: logger}
}

// ref resolves an alias given with 'as', falling back to a literal item id.
func (p *player) ref(name string) models.ItemID {
	if id, ok := p.aliases[name]; ok {
		return id
	}
	return models.ItemID(name)
}

func (p *player) run(steps []step) error {
	for i, st := range steps {
		if err := p.apply(st); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (p *player) apply(st step) error {
	s := p.session
	store := s.Store()
	ctl := s.Layout()

	switch {
	case st.Add != "":
		kind, err := roles.ParseKind(st.Add)
		if err != nil {
			return err
		}
		id, err := s.AddVisualization(kind)
		if err != nil {
			return err
		}
		if st.Title != "" {
			store.UpdateTitle(id, st.Title)
		}
		if st.As != "" {
			p.aliases[st.As] = id
		}
		p.logger.Debug("added item", "kind", kind, "id", id)

	case st.Activate != "":
		if !store.SetActive(p.ref(st.Activate)) {
			p.logger.Warn("activate: unknown item", "item", st.Activate)
		}

	case st.Deactivate:
		store.ClearActive()

	case st.Remove != "":
		store.RemoveItem(p.ref(st.Remove))

	case st.Drop != nil:
		id := p.ref(st.Drop.Item)
		if !ctl.Drop(id, st.Drop.Role, layout.Payload{Column: st.Drop.Column}) {
			p.logger.Debug("drop ignored", "item", st.Drop.Item, "role", st.Drop.Role)
		}

	case st.Down != nil:
		target, err := parseTarget(st.Down.Target)
		if err != nil {
			return err
		}
		at := models.Point{X: st.Down.X, Y: st.Down.Y}
		if !ctl.PointerDown(p.ref(st.Down.Item), target, at) {
			p.logger.Warn("pointer down: unknown item", "item", st.Down.Item)
		}

	case st.Move != nil:
		p.hub.Move(*st.Move)

	case st.Up != nil:
		p.hub.Up(*st.Up)

	case st.SelectSheet != "":
		return s.SelectSheet(st.SelectSheet)

	case st.SelectHeaderRow != nil:
		return s.SelectHeaderRow(*st.SelectHeaderRow)

	case st.ImportEmbedded:
		ids := s.ImportEmbeddedCharts()
		p.logger.Debug("imported embedded charts", "count", len(ids))
	}
	return nil
}

// dashboard is the canvas state printed after a replay.
type dashboard struct {
	Workbook string        `json:"workbook" yaml:"workbook"`
	Sheet    string        `json:"sheet" yaml:"sheet"`
	Active   models.ItemID `json:"active,omitempty" yaml:"active,omitempty"`
	Export   string        `json:"export" yaml:"export"`
	Items    []itemView    `json:"items" yaml:"items"`
}

func dashboardOf(s *sheetdash.Session) dashboard {
	d := dashboard{
		Workbook: s.Workbook().Name,
		Sheet:    s.Table().CurrentSheet,
		Export:   output.DashboardFileName,
		Items:    []itemView{},
	}
	d.Active, _ = s.Store().Active()
	for _, item := range s.Store().Items() {
		d.Items = append(d.Items, viewOf(s, item))
	}
	return d
}

func newSessionCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "session <script.yaml>",
		Short: "Replay a dashboard session script and print the canvas",
		Long: `Replay a YAML script of canvas operations (add, activate, drop, pointer
down/move/up, remove) against a workbook and print every item with its
chart-ready data. A relative workbook path is resolved against the script.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			sc, err := decodeScript(f)
			f.Close()
			if err != nil {
				return err
			}
			if sc.Workbook == "" {
				return errors.New("script has no workbook")
			}
			path := sc.Workbook
			if !filepath.IsAbs(path) {
				path = filepath.Join(filepath.Dir(args[0]), path)
			}

			hub := layout.NewHub()
			s, err := openSession(cmd.Context(), path, sourceFlags{sheet: sc.Sheet, headerRow: sc.HeaderRow}, hub)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			if err := newPlayer(s, hub, logger).run(sc.Steps); err != nil {
				return err
			}
			logger.Debug("replayed session", "steps", len(sc.Steps), "items", s.Store().Len())
			return out.write(cmd, dashboardOf(s))
		},
	}
	out.register(cmd)
	return cmd
}

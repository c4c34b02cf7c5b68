package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/layout"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/output"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/roles"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/transform"
)

// sourceFlags select the sheet and header row a command reads.
type sourceFlags struct {
	sheet     string
	headerRow int
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "sheet to read (default: first sheet)")
	cmd.Flags().IntVar(&f.headerRow, "header-row", 0, "zero-based header row")
}

// outputFlags control how results are encoded.
type outputFlags struct {
	path   string
	format string
	pretty bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: json or yaml (default from config)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "pretty-print JSON output")
}

// write encodes v to the output file or the command's stdout. Unset flags fall
// back to the config's output settings.
func (f *outputFlags) write(cmd *cobra.Command, v interface{}) error {
	cfg := configFromContext(cmd.Context())

	name := f.format
	if name == "" {
		name = cfg.Output.Format
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return err
	}
	pretty := f.pretty || cfg.Output.Pretty

	if f.path == "" {
		return output.Encode(cmd.OutOrStdout(), v, format, pretty)
	}
	out, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := output.Encode(out, v, format, pretty); err != nil {
		out.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	loggerFromContext(cmd.Context()).Info("wrote output", "path", f.path)
	return nil
}

// openSession loads path and applies the sheet and header row selection.
func openSession(ctx context.Context, path string, src sourceFlags, pointer layout.Pointer) (*sheetdash.Session, error) {
	opts := sheetdash.DefaultOptions()
	opts.Config = configFromContext(ctx)
	opts.Logger = loggerFromContext(ctx)
	opts.Pointer = pointer

	s := sheetdash.NewSession(opts)
	if err := s.LoadFile(path); err != nil {
		return nil, err
	}
	if src.sheet != "" {
		if err := s.SelectSheet(src.sheet); err != nil {
			return nil, err
		}
	}
	if src.headerRow != 0 {
		if err := s.SelectHeaderRow(src.headerRow); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <input.xlsx>",
		Short: "List the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0], sourceFlags{}, nil)
			if err != nil {
				return err
			}
			t := s.Table()
			printSheets(cmd.OutOrStdout(), s.Workbook().Name, t.Sheets, t.CurrentSheet)
			return nil
		},
	}
}

func newHeadersCmd() *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "headers <input.xlsx>",
		Short: "Preview the rows that can serve as the header row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0], src, nil)
			if err != nil {
				return err
			}
			t := s.Table()
			printHeaderCandidates(cmd.OutOrStdout(), t.CurrentSheet, s.HeaderCandidates(), t.HeaderRow)
			return nil
		},
	}
	src.register(cmd)
	return cmd
}

func newColumnsCmd() *cobra.Command {
	var (
		src  sourceFlags
		out  outputFlags
		rows bool
	)
	cmd := &cobra.Command{
		Use:   "columns <input.xlsx>",
		Short: "Show the column names of the tabular model",
		Long: `Show the column names derived from the header row. With --rows the
whole tabular model is encoded instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0], src, nil)
			if err != nil {
				return err
			}
			if rows {
				return out.write(cmd, s.Table())
			}
			printColumns(cmd.OutOrStdout(), s.Table())
			return nil
		},
	}
	src.register(cmd)
	out.register(cmd)
	cmd.Flags().BoolVar(&rows, "rows", false, "encode the full tabular model")
	return cmd
}

// binding is one --bind flag value.
type binding struct {
	role   roles.Role
	column string
}

// parseBinding parses "role=column". The column may itself contain '='.
func parseBinding(s string) (binding, error) {
	role, column, ok := strings.Cut(s, "=")
	role = strings.TrimSpace(role)
	if !ok || role == "" || column == "" {
		return binding{}, fmt.Errorf("invalid binding %q (want role=column)", s)
	}
	return binding{role: roles.Role(role), column: column}, nil
}

// applyBinding binds column to role of item id. Table items accept the
// columns role any number of times.
func applyBinding(s *sheetdash.Session, id models.ItemID, kind roles.Kind, b binding) error {
	if !roles.Accepts(kind, b.role) {
		return fmt.Errorf("kind %s has no role %q", kind, b.role)
	}
	store := s.Store()
	if kind == roles.KindTable {
		store.AppendTableColumn(id, b.column)
		return nil
	}
	store.UpdateRoleBinding(id, b.role, b.column)
	return nil
}

// itemView is an item with its derived data, as printed by chart and session.
type itemView struct {
	Item   models.Item      `json:"item" yaml:"item"`
	Output transform.Output `json:"output" yaml:"output"`
	Export string           `json:"export" yaml:"export"`
}

func viewOf(s *sheetdash.Session, item models.Item) itemView {
	out, _ := s.Output(item.ID)
	return itemView{Item: item, Output: out, Export: output.ExportFileName(item.ID)}
}

func newChartCmd() *cobra.Command {
	var (
		src   sourceFlags
		out   outputFlags
		kind  string
		title string
		binds []string
	)
	cmd := &cobra.Command{
		Use:   "chart <input.xlsx>",
		Short: "Build chart-ready data from column bindings",
		Example: `  sheetdash chart sales.xlsx --kind bar --bind xAxis=Region --bind yAxis=Sales
  sheetdash chart sales.xlsx --kind table --bind columns=Region --bind columns=Sales`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := roles.ParseKind(kind)
			if err != nil {
				return err
			}
			parsed := make([]binding, 0, len(binds))
			for _, raw := range binds {
				b, err := parseBinding(raw)
				if err != nil {
					return err
				}
				parsed = append(parsed, b)
			}

			s, err := openSession(cmd.Context(), args[0], src, nil)
			if err != nil {
				return err
			}
			id, err := s.AddVisualization(k)
			if err != nil {
				return err
			}
			if title != "" {
				s.Store().UpdateTitle(id, title)
			}
			for _, b := range parsed {
				if err := applyBinding(s, id, k, b); err != nil {
					return err
				}
			}

			item, _ := s.Store().Item(id)
			if missing := item.Bindings.Missing(); len(missing) > 0 {
				return fmt.Errorf("%w: %s needs %s", errUnbound, k, joinRoles(missing))
			}
			return out.write(cmd, viewOf(s, item))
		},
	}
	src.register(cmd)
	out.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", string(roles.KindBar), "visualization kind: "+joinKinds(roles.Kinds()))
	cmd.Flags().StringVar(&title, "title", "", "item title (default: derived from kind)")
	cmd.Flags().StringArrayVar(&binds, "bind", nil, "role=column binding (repeatable)")
	return cmd
}

var errUnbound = errors.New("unbound roles")

func joinRoles(rs []roles.Role) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

func joinKinds(ks []roles.Kind) string {
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

func newEmbeddedCmd() *cobra.Command {
	var (
		out        outputFlags
		importThem bool
	)
	cmd := &cobra.Command{
		Use:   "embedded <input.xlsx>",
		Short: "List the charts embedded in a workbook",
		Long: `List the charts anchored in the workbook's drawings. With --import each
chart with a matching kind becomes a canvas item at the chart's position.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), args[0], sourceFlags{}, nil)
			if err != nil {
				return err
			}
			if !importThem {
				return out.write(cmd, s.EmbeddedCharts())
			}
			s.ImportEmbeddedCharts()
			return out.write(cmd, s.Store().Items())
		},
	}
	out.register(cmd)
	cmd.Flags().BoolVar(&importThem, "import", false, "import the charts as canvas items")
	return cmd
}

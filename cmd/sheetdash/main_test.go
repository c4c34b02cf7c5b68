package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/roles"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// writeFixture saves a small sales workbook into dir and returns its path.
func writeFixture(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Region", "Sales"},
		{"North", 10},
		{"South", 20},
		{"North", 30},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	path := filepath.Join(dir, "sales.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

// execute runs the CLI with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		in      string
		role    roles.Role
		column  string
		wantErr bool
	}{
		{"xAxis=Region", roles.RoleXAxis, "Region", false},
		{" values =Sales", roles.RoleValues, "Sales", false},
		{"category=a=b", roles.RoleCategory, "a=b", false},
		{"xAxis", "", "", true},
		{"=Region", "", "", true},
		{"xAxis=", "", "", true},
	}
	for _, tt := range tests {
		got, err := parseBinding(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseBinding(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got.role != tt.role || got.column != tt.column {
			t.Errorf("parseBinding(%q) = %+v", tt.in, got)
		}
	}
}

func TestDecodeScript(t *testing.T) {
	valid := `
workbook: sales.xlsx
header_row: 0
steps:
  - add: bar
    as: a
  - down: {item: a, target: resize, x: 1, y: 2}
  - move: {x: 3, y: 4}
  - up: {x: 3, y: 4}
  - select_header_row: 0
`
	sc, err := decodeScript(strings.NewReader(valid))
	if err != nil {
		t.Fatalf("decodeScript failed: %v", err)
	}
	if len(sc.Steps) != 5 || sc.Steps[1].Down.Target != "resize" || sc.Steps[2].Move.X != 3 {
		t.Errorf("script = %+v", sc)
	}
	if sc.Steps[4].SelectHeaderRow == nil || *sc.Steps[4].SelectHeaderRow != 0 {
		t.Error("select_header_row: 0 was not decoded")
	}

	invalid := map[string]string{
		"two operations": "steps:\n  - add: bar\n    remove: a\n",
		"no operation":   "steps:\n  - as: a\n",
		"unknown field":  "steps:\n  - explode: true\n",
	}
	for name, src := range invalid {
		if _, err := decodeScript(strings.NewReader(src)); err == nil {
			t.Errorf("%s: decodeScript succeeded", name)
		}
	}
}

func TestParseTarget(t *testing.T) {
	if _, err := parseTarget("corner"); err == nil {
		t.Error("parseTarget(corner) succeeded")
	}
	for _, s := range []string{"", "body", "resize", "handle"} {
		if _, err := parseTarget(s); err != nil {
			t.Errorf("parseTarget(%q) err = %v", s, err)
		}
	}
}

func TestSheetsCommand(t *testing.T) {
	path := writeFixture(t, t.TempDir())
	out, err := execute(t, "sheets", path)
	if err != nil {
		t.Fatalf("sheets failed: %v", err)
	}
	if !strings.Contains(out, "sales.xlsx") || !strings.Contains(out, "Sheet1") {
		t.Errorf("output = %q", out)
	}
}

func TestChartCommand(t *testing.T) {
	path := writeFixture(t, t.TempDir())

	out, err := execute(t, "chart", path, "--kind", "pie",
		"--bind", "category=Region", "--bind", "values=Sales", "--format", "yaml")
	if err != nil {
		t.Fatalf("chart failed: %v", err)
	}

	var view struct {
		Item struct {
			Kind  string `yaml:"kind"`
			Title string `yaml:"title"`
		} `yaml:"item"`
		Output struct {
			Chart struct {
				Labels []string `yaml:"labels"`
				Values []string `yaml:"values"`
			} `yaml:"chart"`
		} `yaml:"output"`
		Export string `yaml:"export"`
	}
	if err := yaml.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if view.Item.Kind != "pie" || view.Item.Title != "Pie Chart" {
		t.Errorf("item = %+v", view.Item)
	}
	if strings.Join(view.Output.Chart.Labels, ",") != "North,South" ||
		strings.Join(view.Output.Chart.Values, ",") != "10,20" {
		t.Errorf("chart = %+v", view.Output.Chart)
	}
	if !strings.HasPrefix(view.Export, "visualization-") {
		t.Errorf("export = %q", view.Export)
	}
}

func TestChartCommandErrors(t *testing.T) {
	path := writeFixture(t, t.TempDir())

	if _, err := execute(t, "chart", path, "--kind", "bar", "--bind", "xAxis=Region"); !errors.Is(err, errUnbound) {
		t.Errorf("incomplete bindings err = %v, want errUnbound", err)
	}
	if _, err := execute(t, "chart", path, "--kind", "bar", "--bind", "series=Region"); err == nil {
		t.Error("role outside the kind was accepted")
	}
	if _, err := execute(t, "chart", path, "--kind", "radar"); err == nil {
		t.Error("unknown kind was accepted")
	}
}

func TestChartCommandTableToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir)
	dest := filepath.Join(dir, "table.json")

	if _, err := execute(t, "chart", path, "--kind", "table",
		"--bind", "columns=Sales", "--bind", "columns=Sales", "-o", dest); err != nil {
		t.Fatalf("chart failed: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	var view struct {
		Output struct {
			Table struct {
				Columns []string        `json:"columns"`
				Rows    [][]interface{} `json:"rows"`
			} `json:"table"`
		} `json:"output"`
	}
	if err := json.Unmarshal(data, &view); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	table := view.Output.Table
	if len(table.Columns) != 2 || len(table.Rows) != 3 {
		t.Fatalf("table = %+v", table)
	}
	if table.Rows[2][0] != float64(30) {
		t.Errorf("Rows[2][0] = %v, want 30", table.Rows[2][0])
	}
}

func TestSessionCommand(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)
	script := `
workbook: sales.xlsx
steps:
  - add: bar
    as: a
  - drop: {item: a, role: xAxis, column: Region}
  - down: {item: a, x: 100, y: 100}
  - move: {x: 130, y: 120}
  - up: {x: 130, y: 120}
  - drop: {item: a, role: xAxis, column: Region}
  - drop: {item: a, role: yAxis, column: Sales}
  - down: {item: a, target: resize, x: 0, y: 0}
  - move: {x: -500, y: 50}
  - up: {x: -500, y: 50}
  - move: {x: 900, y: 900}
`
	scriptPath := filepath.Join(dir, "session.yaml")
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "session", scriptPath)
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}

	var d struct {
		Workbook string `json:"workbook"`
		Active   string `json:"active"`
		Export   string `json:"export"`
		Items    []struct {
			Item struct {
				ID       string             `json:"id"`
				Bindings map[string]string  `json:"bindings"`
				Position map[string]float64 `json:"position"`
				Size     map[string]float64 `json:"size"`
			} `json:"item"`
			Output struct {
				Chart *struct {
					Labels []string `json:"labels"`
					Values []string `json:"values"`
				} `json:"chart"`
			} `json:"output"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if d.Workbook != "sales.xlsx" || d.Export != "dashboard.png" || len(d.Items) != 1 {
		t.Fatalf("dashboard = %+v", d)
	}

	item := d.Items[0]
	if d.Active != item.Item.ID {
		t.Errorf("active = %q, want %q", d.Active, item.Item.ID)
	}
	if item.Item.Position["x"] != 30 || item.Item.Position["y"] != 20 {
		t.Errorf("position = %v, want (30, 20)", item.Item.Position)
	}
	if item.Item.Size["width"] != 300 || item.Item.Size["height"] != 450 {
		t.Errorf("size = %v, want 300x450", item.Item.Size)
	}
	if item.Item.Bindings["xAxis"] != "Region" || item.Item.Bindings["yAxis"] != "Sales" {
		t.Errorf("bindings = %v", item.Item.Bindings)
	}
	if item.Output.Chart == nil || strings.Join(item.Output.Chart.Labels, ",") != "North,South" {
		t.Errorf("chart = %+v", item.Output.Chart)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir)
	cfg := filepath.Join(dir, "sheetdash.toml")
	if err := os.WriteFile(cfg, []byte("[output]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", cfg, "columns", path, "--rows")
	if err != nil {
		t.Fatalf("columns failed: %v", err)
	}
	if !strings.Contains(out, "current_sheet: Sheet1") {
		t.Errorf("expected YAML output, got %q", out)
	}

	if _, err := execute(t, "--config", filepath.Join(dir, "missing.toml"), "sheets", path); err == nil {
		t.Error("missing explicit config was accepted")
	}
}

func TestEmbeddedCommand(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Region")
	f.SetCellValue("Sheet1", "B1", "Share")
	f.SetCellValue("Sheet1", "A2", "North")
	f.SetCellValue("Sheet1", "B2", 3)
	err := f.AddChart("Sheet1", "D2", &excelize.Chart{
		Type: excelize.Doughnut,
		Series: []excelize.ChartSeries{{
			Categories: "Sheet1!$A$2:$A$2",
			Values:     "Sheet1!$B$2:$B$2",
		}},
	})
	if err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}
	path := filepath.Join(dir, "share.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "embedded", path)
	if err != nil {
		t.Fatalf("embedded failed: %v", err)
	}
	var charts []struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(out), &charts); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(charts) != 1 || charts[0].Type != "doughnutChart" {
		t.Fatalf("charts = %+v", charts)
	}

	out, err = execute(t, "embedded", path, "--import")
	if err != nil {
		t.Fatalf("embedded --import failed: %v", err)
	}
	var items []struct {
		Kind  string `json:"kind"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(items) != 1 || items[0].Kind != "donut" || items[0].Title == "" {
		t.Errorf("items = %+v", items)
	}
}

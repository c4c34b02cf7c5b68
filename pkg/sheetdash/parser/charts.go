package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"strings"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

// ChartTypes lists the OOXML plot elements recognised as charts.
var ChartTypes = map[string]bool{
	"lineChart":      true,
	"line3DChart":    true,
	"barChart":       true,
	"bar3DChart":     true,
	"areaChart":      true,
	"area3DChart":    true,
	"pieChart":       true,
	"pie3DChart":     true,
	"doughnutChart":  true,
	"scatterChart":   true,
	"bubbleChart":    true,
	"radarChart":     true,
	"surfaceChart":   true,
	"surface3DChart": true,
	"stockChart":     true,
	"ofPieChart":     true,
}

// Default cell extent used to turn cell anchors into pixels.
const (
	defaultColWidthPx  = 64
	defaultRowHeightPx = 20
)

type xmlWorkbook struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

type xmlRelationships struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xmlMarker struct {
	Col    int   `xml:"col"`
	ColOff int64 `xml:"colOff"`
	Row    int   `xml:"row"`
	RowOff int64 `xml:"rowOff"`
}

type xmlAnchor struct {
	From *xmlMarker `xml:"from"`
	To   *xmlMarker `xml:"to"`
	Pos  *struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"pos"`
	Ext *struct {
		CX int64 `xml:"cx,attr"`
		CY int64 `xml:"cy,attr"`
	} `xml:"ext"`
	Frame *struct {
		Props struct {
			Name string `xml:"name,attr"`
		} `xml:"nvGraphicFramePr>cNvPr"`
		Chart struct {
			RID string `xml:"id,attr"`
		} `xml:"graphic>graphicData>chart"`
	} `xml:"graphicFrame"`
}

type xmlDrawing struct {
	TwoCell  []xmlAnchor `xml:"twoCellAnchor"`
	OneCell  []xmlAnchor `xml:"oneCellAnchor"`
	Absolute []xmlAnchor `xml:"absoluteAnchor"`
}

type xmlVal struct {
	Val string `xml:"val,attr"`
}

type xmlPlot struct {
	XMLName  xml.Name
	BarDir   xmlVal `xml:"barDir"`
	Grouping xmlVal `xml:"grouping"`
}

type xmlChartSpace struct {
	Chart struct {
		Title *struct {
			Runs []string `xml:"tx>rich>p>r>t"`
		} `xml:"title"`
		PlotArea struct {
			Plots []xmlPlot `xml:",any"`
		} `xml:"plotArea"`
	} `xml:"chart"`
}

// ReadEmbeddedCharts lists the charts anchored on each sheet of an xlsx
// container, in workbook sheet order. Sheets without drawings are skipped and
// unreadable chart parts are ignored.
func ReadEmbeddedCharts(r io.ReaderAt, size int64) ([]models.EmbeddedChart, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	var wb xmlWorkbook
	if ok, err := readZipXML(zr, "xl/workbook.xml", &wb); err != nil || !ok {
		return nil, err
	}
	var wbRels xmlRelationships
	if _, err := readZipXML(zr, "xl/_rels/workbook.xml.rels", &wbRels); err != nil {
		return nil, err
	}

	var result []models.EmbeddedChart
	for _, sheet := range wb.Sheets {
		sheetPath := findTarget(wbRels, "xl", func(id, _ string) bool { return id == sheet.RID })
		if sheetPath == "" {
			continue
		}

		var sheetRels xmlRelationships
		if ok, _ := readZipXML(zr, relsPath(sheetPath), &sheetRels); !ok {
			continue
		}
		drawingPath := findTarget(sheetRels, path.Dir(sheetPath), func(_, typ string) bool {
			return strings.HasSuffix(typ, "/drawing")
		})
		if drawingPath == "" {
			continue
		}

		result = append(result, readDrawingCharts(zr, sheet.Name, drawingPath)...)
	}
	return result, nil
}

func readDrawingCharts(zr *zip.Reader, sheetName, drawingPath string) []models.EmbeddedChart {
	var drawing xmlDrawing
	if ok, _ := readZipXML(zr, drawingPath, &drawing); !ok {
		return nil
	}
	var rels xmlRelationships
	if ok, _ := readZipXML(zr, relsPath(drawingPath), &rels); !ok {
		return nil
	}

	anchors := make([]xmlAnchor, 0, len(drawing.TwoCell)+len(drawing.OneCell)+len(drawing.Absolute))
	anchors = append(anchors, drawing.TwoCell...)
	anchors = append(anchors, drawing.OneCell...)
	anchors = append(anchors, drawing.Absolute...)

	var charts []models.EmbeddedChart
	for _, a := range anchors {
		if a.Frame == nil || a.Frame.Chart.RID == "" {
			continue
		}
		chartPath := findTarget(rels, path.Dir(drawingPath), func(id, _ string) bool {
			return id == a.Frame.Chart.RID
		})
		if chartPath == "" {
			continue
		}

		var space xmlChartSpace
		if ok, err := readZipXML(zr, chartPath, &space); !ok || err != nil {
			continue
		}
		chart, ok := chartFromSpace(space)
		if !ok {
			continue
		}
		chart.Sheet = sheetName
		chart.Name = a.Frame.Props.Name
		chart.Position, chart.Size = anchorGeometry(a)
		charts = append(charts, chart)
	}
	return charts
}

func chartFromSpace(space xmlChartSpace) (models.EmbeddedChart, bool) {
	var chart models.EmbeddedChart
	for _, p := range space.Chart.PlotArea.Plots {
		if !ChartTypes[p.XMLName.Local] {
			continue
		}
		chart.Type = p.XMLName.Local
		chart.BarDir = p.BarDir.Val
		chart.Grouping = p.Grouping.Val
		break
	}
	if chart.Type == "" {
		return chart, false
	}
	if t := space.Chart.Title; t != nil {
		chart.Title = strings.TrimSpace(strings.Join(t.Runs, ""))
	}
	return chart, true
}

// anchorGeometry converts a drawing anchor into a pixel position and size.
// Cell anchors assume default column widths and row heights.
func anchorGeometry(a xmlAnchor) (models.Point, models.Size) {
	var pos models.Point
	var size models.Size

	switch {
	case a.From != nil:
		pos = markerPixels(*a.From)
	case a.Pos != nil:
		pos = models.Point{X: float64(EMUToPixels(a.Pos.X)), Y: float64(EMUToPixels(a.Pos.Y))}
	}

	switch {
	case a.Ext != nil:
		size = models.Size{Width: float64(EMUToPixels(a.Ext.CX)), Height: float64(EMUToPixels(a.Ext.CY))}
	case a.From != nil && a.To != nil:
		end := markerPixels(*a.To)
		size = models.Size{Width: max(0, end.X-pos.X), Height: max(0, end.Y-pos.Y)}
	}
	return pos, size
}

func markerPixels(m xmlMarker) models.Point {
	return models.Point{
		X: float64(m.Col*defaultColWidthPx + EMUToPixels(m.ColOff)),
		Y: float64(m.Row*defaultRowHeightPx + EMUToPixels(m.RowOff)),
	}
}

// findTarget returns the part path of the first relationship matching, resolved
// against baseDir.
func findTarget(rels xmlRelationships, baseDir string, match func(id, typ string) bool) string {
	for _, rel := range rels.Rels {
		if match(rel.ID, rel.Type) {
			return resolvePartPath(baseDir, rel.Target)
		}
	}
	return ""
}

// resolvePartPath resolves a relationship target against the directory of the
// part that owns the relationship. Absolute targets are package-rooted.
func resolvePartPath(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// relsPath returns the relationships part of partPath, e.g.
// xl/worksheets/sheet1.xml → xl/worksheets/_rels/sheet1.xml.rels.
func relsPath(partPath string) string {
	return path.Join(path.Dir(partPath), "_rels", path.Base(partPath)+".rels")
}

// readZipXML decodes the named part into v. It reports false when the part
// does not exist.
func readZipXML(r *zip.Reader, name string, v interface{}) (bool, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return false, err
		}
		defer rc.Close()
		if err := xml.NewDecoder(rc).Decode(v); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

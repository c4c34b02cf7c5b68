// Package transform turns the tabular model and an item's role bindings into
// the data shape its chart kind renders.
//
// Values are looked up by first match: for every distinct label the value is
// taken from the first row carrying that label. Nothing is summed or averaged,
// so repeated labels keep only their first value. All values are carried as
// display strings.
package transform

import (
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/roles"
)

// Output is the chart-ready result for one item. At most one field is set; both
// are nil while the item still has unbound required roles.
type Output struct {
	Chart *models.ChartData `json:"chart,omitempty" yaml:"chart,omitempty"`
	Table *models.TableData `json:"table,omitempty" yaml:"table,omitempty"`
}

// Ready reports whether there is anything to render.
func (o Output) Ready() bool {
	return o.Chart != nil || o.Table != nil
}

// ForItem transforms the model for item's kind and bindings.
func ForItem(t *models.Table, item models.Item) Output {
	if tb, ok := item.Bindings.(roles.TableBindings); ok {
		return Output{Table: Project(t, tb)}
	}
	return Output{Chart: Transform(t, item.Bindings)}
}

// Transform returns the chart data for b, or nil when a required role is
// unbound. Table bindings are not charts and always yield nil; see Project.
func Transform(t *models.Table, b roles.Bindings) *models.ChartData {
	if !roles.Complete(b) {
		return nil
	}
	rows := rowsOf(t)

	switch b := b.(type) {
	case roles.AxisBindings:
		return pairs(rows, b.XAxis, b.YAxis)
	case roles.CategoryBindings:
		return pairs(rows, b.Category, b.Values)
	case roles.StackedBindings:
		return stacked(rows, b.XAxis, b.YAxis, b.Series)
	}
	return nil
}

// Project returns every row of the model restricted to b's columns, in binding
// order. It returns nil while no column is bound.
func Project(t *models.Table, b roles.TableBindings) *models.TableData {
	if len(b.Columns) == 0 {
		return nil
	}
	rows := rowsOf(t)

	out := &models.TableData{
		Columns: append([]string(nil), b.Columns...),
		Rows:    make([][]models.Value, len(rows)),
	}
	for i, row := range rows {
		projected := make([]models.Value, len(b.Columns))
		for j, col := range b.Columns {
			projected[j] = row.Get(col)
		}
		out.Rows[i] = projected
	}
	return out
}

// pairs builds parallel label/value sequences: distinct labels in first
// occurrence order, each with the value column of its first row.
func pairs(rows []models.Row, labelCol, valueCol string) *models.ChartData {
	out := &models.ChartData{Labels: []string{}, Values: []string{}}
	seen := make(map[string]bool)
	for _, row := range rows {
		label := row.Get(labelCol).String()
		if seen[label] {
			continue
		}
		seen[label] = true
		out.Labels = append(out.Labels, label)
		out.Values = append(out.Values, row.Get(valueCol).String())
	}
	return out
}

type cellKey struct {
	label, series string
}

// stacked builds one value sequence per distinct series value, aligned to the
// distinct labels. Combinations with no row yield "".
func stacked(rows []models.Row, labelCol, valueCol, seriesCol string) *models.ChartData {
	labels := distinct(rows, labelCol)
	names := distinct(rows, seriesCol)

	first := make(map[cellKey]string)
	for _, row := range rows {
		key := cellKey{label: row.Get(labelCol).String(), series: row.Get(seriesCol).String()}
		if _, ok := first[key]; !ok {
			first[key] = row.Get(valueCol).String()
		}
	}

	series := make([]models.Series, len(names))
	for i, name := range names {
		data := make([]string, len(labels))
		for j, label := range labels {
			data[j] = first[cellKey{label: label, series: name}]
		}
		series[i] = models.Series{Name: name, Data: data}
	}
	return &models.ChartData{Labels: labels, Values: []string{}, Series: series}
}

// distinct returns the display values of col in first-occurrence order.
func distinct(rows []models.Row, col string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, row := range rows {
		s := row.Get(col).String()
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func rowsOf(t *models.Table) []models.Row {
	if t == nil {
		return nil
	}
	return t.Rows
}

// Package roles is the static registry of chart kinds and the field roles each
// kind needs filled before it can render.
package roles

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind is a visualization type.
type Kind string

const (
	KindBar           Kind = "bar"
	KindLine          Kind = "line"
	KindColumn        Kind = "column"
	KindStackedBar    Kind = "stackedBar"
	KindStackedColumn Kind = "stackedColumn"
	KindPie           Kind = "pie"
	KindDonut         Kind = "donut"
	KindTreemap       Kind = "treemap"
	KindTable         Kind = "table"
)

// Family groups kinds that share a binding shape and transformation.
type Family int

const (
	// FamilyAxis covers bar, line and column charts.
	FamilyAxis Family = iota + 1
	// FamilyStacked covers stacked bar and stacked column charts.
	FamilyStacked
	// FamilyCategory covers pie, donut and treemap charts.
	FamilyCategory
	// FamilyTable is the table view.
	FamilyTable
)

var kindOrder = []Kind{
	KindBar, KindLine, KindColumn, KindStackedBar, KindStackedColumn,
	KindPie, KindDonut, KindTreemap, KindTable,
}

var kindLabels = map[Kind]string{
	KindBar:           "Bar Chart",
	KindLine:          "Line Chart",
	KindColumn:        "Column Chart",
	KindStackedBar:    "Stacked Bar Chart",
	KindStackedColumn: "Stacked Column Chart",
	KindPie:           "Pie Chart",
	KindDonut:         "Donut Chart",
	KindTreemap:       "Treemap",
	KindTable:         "Table View",
}

// Kinds returns every kind in presentation order.
func Kinds() []Kind {
	return append([]Kind(nil), kindOrder...)
}

// ParseKind resolves s to a Kind. Matching ignores case.
func ParseKind(s string) (Kind, error) {
	for _, k := range kindOrder {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown chart kind %q", s)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

// Label is the human name shown in a kind picker.
func (k Kind) Label() string {
	return kindLabels[k]
}

// DefaultTitle is the title given to a freshly added item, e.g. "StackedBar Chart".
func (k Kind) DefaultTitle() string {
	if k == "" {
		return "Chart"
	}
	r := []rune(string(k))
	r[0] = unicode.ToUpper(r[0])
	return string(r) + " Chart"
}

// Family returns the binding family of k, or 0 for an unknown kind.
func (k Kind) Family() Family {
	switch k {
	case KindBar, KindLine, KindColumn:
		return FamilyAxis
	case KindStackedBar, KindStackedColumn:
		return FamilyStacked
	case KindPie, KindDonut, KindTreemap:
		return FamilyCategory
	case KindTable:
		return FamilyTable
	}
	return 0
}

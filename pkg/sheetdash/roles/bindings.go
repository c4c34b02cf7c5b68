package roles

// Bindings is the role→column assignment of one item. It is a closed union:
// AxisBindings, StackedBindings, CategoryBindings and TableBindings are the only
// implementations. Values are immutable; With returns an updated copy.
type Bindings interface {
	// Kind returns the kind the bindings belong to.
	Kind() Kind
	// Lookup returns the column bound to role.
	Lookup(role Role) (string, bool)
	// With binds role to column. It returns false and the receiver unchanged
	// when role is not a slot of this shape.
	With(role Role, column string) (Bindings, bool)
	// Missing lists the required roles that are still unbound, in slot order.
	Missing() []Role

	sealed()
}

// NewBindings returns empty bindings shaped for kind, or nil for an unknown kind.
func NewBindings(kind Kind) Bindings {
	switch kind.Family() {
	case FamilyAxis:
		return AxisBindings{kind: kind}
	case FamilyStacked:
		return StackedBindings{kind: kind}
	case FamilyCategory:
		return CategoryBindings{kind: kind}
	case FamilyTable:
		return TableBindings{}
	}
	return nil
}

// Complete reports whether every required role of b is bound.
func Complete(b Bindings) bool {
	return b != nil && len(b.Missing()) == 0
}

// AxisBindings holds the slots of bar, line and column charts.
type AxisBindings struct {
	kind  Kind
	XAxis string `json:"xAxis,omitempty" yaml:"xAxis,omitempty"`
	YAxis string `json:"yAxis,omitempty" yaml:"yAxis,omitempty"`
}

// NewAxisBindings returns bindings for an axis-family kind.
func NewAxisBindings(kind Kind, x, y string) AxisBindings {
	return AxisBindings{kind: kind, XAxis: x, YAxis: y}
}

func (b AxisBindings) Kind() Kind { return b.kind }

func (b AxisBindings) Lookup(role Role) (string, bool) {
	switch role {
	case RoleXAxis:
		return b.XAxis, b.XAxis != ""
	case RoleYAxis:
		return b.YAxis, b.YAxis != ""
	}
	return "", false
}

func (b AxisBindings) With(role Role, column string) (Bindings, bool) {
	switch role {
	case RoleXAxis:
		b.XAxis = column
	case RoleYAxis:
		b.YAxis = column
	default:
		return b, false
	}
	return b, true
}

func (b AxisBindings) Missing() []Role {
	return missing(b, axisRequirements)
}

func (AxisBindings) sealed() {}

// StackedBindings holds the slots of stacked bar and stacked column charts.
type StackedBindings struct {
	kind   Kind
	XAxis  string `json:"xAxis,omitempty" yaml:"xAxis,omitempty"`
	YAxis  string `json:"yAxis,omitempty" yaml:"yAxis,omitempty"`
	Series string `json:"series,omitempty" yaml:"series,omitempty"`
}

// NewStackedBindings returns bindings for a stacked-family kind.
func NewStackedBindings(kind Kind, x, y, series string) StackedBindings {
	return StackedBindings{kind: kind, XAxis: x, YAxis: y, Series: series}
}

func (b StackedBindings) Kind() Kind { return b.kind }

func (b StackedBindings) Lookup(role Role) (string, bool) {
	switch role {
	case RoleXAxis:
		return b.XAxis, b.XAxis != ""
	case RoleYAxis:
		return b.YAxis, b.YAxis != ""
	case RoleSeries:
		return b.Series, b.Series != ""
	}
	return "", false
}

func (b StackedBindings) With(role Role, column string) (Bindings, bool) {
	switch role {
	case RoleXAxis:
		b.XAxis = column
	case RoleYAxis:
		b.YAxis = column
	case RoleSeries:
		b.Series = column
	default:
		return b, false
	}
	return b, true
}

func (b StackedBindings) Missing() []Role {
	return missing(b, stackedRequirements)
}

func (StackedBindings) sealed() {}

// CategoryBindings holds the slots of pie, donut and treemap charts.
type CategoryBindings struct {
	kind     Kind
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Values   string `json:"values,omitempty" yaml:"values,omitempty"`
}

// NewCategoryBindings returns bindings for a category-family kind.
func NewCategoryBindings(kind Kind, category, values string) CategoryBindings {
	return CategoryBindings{kind: kind, Category: category, Values: values}
}

func (b CategoryBindings) Kind() Kind { return b.kind }

func (b CategoryBindings) Lookup(role Role) (string, bool) {
	switch role {
	case RoleCategory:
		return b.Category, b.Category != ""
	case RoleValues:
		return b.Values, b.Values != ""
	}
	return "", false
}

func (b CategoryBindings) With(role Role, column string) (Bindings, bool) {
	switch role {
	case RoleCategory:
		b.Category = column
	case RoleValues:
		b.Values = column
	default:
		return b, false
	}
	return b, true
}

func (b CategoryBindings) Missing() []Role {
	return missing(b, categoryRequirements)
}

func (CategoryBindings) sealed() {}

// TableBindings is the free, ordered column list of a table view.
// Columns may repeat.
type TableBindings struct {
	Columns []string `json:"columns" yaml:"columns"`
}

func (TableBindings) Kind() Kind { return KindTable }

// Lookup returns the first bound column for RoleColumns.
func (b TableBindings) Lookup(role Role) (string, bool) {
	if role != RoleColumns || len(b.Columns) == 0 {
		return "", false
	}
	return b.Columns[0], true
}

// With appends column for RoleColumns.
func (b TableBindings) With(role Role, column string) (Bindings, bool) {
	if role != RoleColumns {
		return b, false
	}
	return b.Append(column), true
}

// Append returns a copy of b with column added to the end of the list.
func (b TableBindings) Append(column string) TableBindings {
	cols := make([]string, len(b.Columns), len(b.Columns)+1)
	copy(cols, b.Columns)
	return TableBindings{Columns: append(cols, column)}
}

func (b TableBindings) Missing() []Role {
	if len(b.Columns) == 0 {
		return []Role{RoleColumns}
	}
	return nil
}

func (TableBindings) sealed() {}

func missing(b Bindings, reqs []Requirement) []Role {
	var out []Role
	for _, r := range reqs {
		if _, ok := b.Lookup(r.Role); !ok {
			out = append(out, r.Role)
		}
	}
	return out
}

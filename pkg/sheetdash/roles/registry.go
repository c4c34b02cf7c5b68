package roles

// Role is a named slot a column can be bound to.
type Role string

const (
	RoleXAxis    Role = "xAxis"
	RoleYAxis    Role = "yAxis"
	RoleCategory Role = "category"
	RoleValues   Role = "values"
	RoleSeries   Role = "series"
	RoleColumns  Role = "columns"
)

// Requirement is one slot of a kind's drop-zone panel.
type Requirement struct {
	// Role is the slot name.
	Role Role `json:"role"`
	// Label is the display label of the slot.
	Label string `json:"label"`
	// MaxBindings is the number of columns the slot holds; 0 means unbounded.
	MaxBindings int `json:"max_bindings,omitempty"`
}

var (
	axisRequirements = []Requirement{
		{Role: RoleXAxis, Label: "X Axis", MaxBindings: 1},
		{Role: RoleYAxis, Label: "Y Axis", MaxBindings: 1},
	}
	stackedRequirements = []Requirement{
		{Role: RoleXAxis, Label: "X Axis", MaxBindings: 1},
		{Role: RoleYAxis, Label: "Y Axis", MaxBindings: 1},
		{Role: RoleSeries, Label: "Series", MaxBindings: 1},
	}
	categoryRequirements = []Requirement{
		{Role: RoleCategory, Label: "Category", MaxBindings: 1},
		{Role: RoleValues, Label: "Values", MaxBindings: 1},
	}
	tableRequirements = []Requirement{
		{Role: RoleColumns, Label: "Table Columns"},
	}
)

// Requirements returns the ordered slots for kind. The result is a copy.
// Unknown kinds have no slots.
func Requirements(kind Kind) []Requirement {
	var reqs []Requirement
	switch kind.Family() {
	case FamilyAxis:
		reqs = axisRequirements
	case FamilyStacked:
		reqs = stackedRequirements
	case FamilyCategory:
		reqs = categoryRequirements
	case FamilyTable:
		reqs = tableRequirements
	}
	return append([]Requirement(nil), reqs...)
}

// Accepts reports whether kind has a slot named role.
func Accepts(kind Kind, role Role) bool {
	for _, r := range Requirements(kind) {
		if r.Role == role {
			return true
		}
	}
	return false
}

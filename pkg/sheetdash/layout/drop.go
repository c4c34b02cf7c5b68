package layout

import (
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/roles"
)

// Payload is what a column chip carries while dragged: the column name only.
type Payload struct {
	Column string
}

// DropZone is one role slot rendered on the active item.
type DropZone struct {
	roles.Requirement
	// Columns holds the bound columns; at most one for chart roles.
	Columns []string
}

// DropZones returns the role slots of id, or nil unless id is the active item.
func (c *Controller) DropZones(id models.ItemID) []DropZone {
	if !c.store.IsActive(id) {
		return nil
	}
	item, ok := c.store.Item(id)
	if !ok {
		return nil
	}

	reqs := roles.Requirements(item.Kind)
	zones := make([]DropZone, len(reqs))
	for i, req := range reqs {
		zones[i] = DropZone{Requirement: req}
		if tb, ok := item.Bindings.(roles.TableBindings); ok {
			zones[i].Columns = append([]string(nil), tb.Columns...)
		} else if col, ok := item.Bindings.Lookup(req.Role); ok {
			zones[i].Columns = []string{col}
		}
	}
	return zones
}

// Drop handles a column dropped on role of item id. Table items append the
// column; other kinds bind it. Drops without a column name, on inactive items
// or on roles the kind does not have are ignored.
func (c *Controller) Drop(id models.ItemID, role roles.Role, payload Payload) bool {
	if payload.Column == "" || !c.store.IsActive(id) {
		return false
	}
	item, ok := c.store.Item(id)
	if !ok {
		return false
	}
	if item.Kind == roles.KindTable {
		return c.store.AppendTableColumn(id, payload.Column)
	}
	return c.store.UpdateRoleBinding(id, role, payload.Column)
}

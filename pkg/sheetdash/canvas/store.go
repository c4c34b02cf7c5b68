// Package canvas owns the visualization items placed on a dashboard canvas
// and the single active-item selection.
package canvas

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/roles"
)

// ErrUnknownKind is returned by AddItem for a kind outside the registry.
var ErrUnknownKind = errors.New("unknown chart kind")

// ChangeKind says which part of the store a Change touched.
type ChangeKind int

const (
	ItemAdded ChangeKind = iota + 1
	ItemRemoved
	BindingsChanged
	PositionChanged
	SizeChanged
	ActiveChanged
	TitleChanged
)

func (k ChangeKind) String() string {
	switch k {
	case ItemAdded:
		return "added"
	case ItemRemoved:
		return "removed"
	case BindingsChanged:
		return "bindings"
	case PositionChanged:
		return "position"
	case SizeChanged:
		return "size"
	case ActiveChanged:
		return "active"
	case TitleChanged:
		return "title"
	}
	return fmt.Sprintf("ChangeKind(%d)", int(k))
}

// Change is published to subscribers after every successful mutation.
type Change struct {
	Kind ChangeKind
	// ID is the item concerned. For ActiveChanged it is the new active item,
	// or "" when the selection was cleared.
	ID models.ItemID
}

// Store is the single source of truth for canvas items. Mutations apply
// synchronously and are visible to the next read. Operations on unknown ids
// are no-ops and report false.
//
// A Store is meant to be owned by one event loop and is not safe for
// concurrent use.
type Store struct {
	items  []models.Item
	active models.ItemID
	newID  func() models.ItemID

	subs    map[int]func(Change)
	nextSub int
}

// NewStore returns an empty store that assigns random UUIDs to new items.
func NewStore() *Store {
	return &Store{
		newID: func() models.ItemID { return models.ItemID(uuid.NewString()) },
		subs:  make(map[int]func(Change)),
	}
}

// Subscribe registers fn to be called after each mutation. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (cancel func()) {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Store) publish(kind ChangeKind, id models.ItemID) {
	for _, fn := range s.subs {
		fn(Change{Kind: kind, ID: id})
	}
}

// AddItem appends a new item with empty bindings and clears the active
// selection. It returns the new item's id.
func (s *Store) AddItem(kind roles.Kind, title string, pos models.Point, size models.Size) (models.ItemID, error) {
	bindings := roles.NewBindings(kind)
	if bindings == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	item := models.Item{
		ID:       s.newID(),
		Kind:     kind,
		Title:    title,
		Bindings: bindings,
		Position: pos,
		Size:     size,
	}
	s.items = append(s.items, item)
	s.publish(ItemAdded, item.ID)

	if s.active != "" {
		s.active = ""
		s.publish(ActiveChanged, "")
	}
	return item.ID, nil
}

// UpdateRoleBinding binds role to column on the item, replacing any earlier
// binding of that role. Table items append instead. It reports false when the
// item is unknown or its kind has no such role.
func (s *Store) UpdateRoleBinding(id models.ItemID, role roles.Role, column string) bool {
	item := s.find(id)
	if item == nil || item.Bindings == nil {
		return false
	}
	next, ok := item.Bindings.With(role, column)
	if !ok {
		return false
	}
	item.Bindings = next
	s.publish(BindingsChanged, id)
	return true
}

// AppendTableColumn adds column to the end of a table item's column list.
// Duplicates are kept. It reports false for unknown ids and non-table items.
func (s *Store) AppendTableColumn(id models.ItemID, column string) bool {
	item := s.find(id)
	if item == nil {
		return false
	}
	tb, ok := item.Bindings.(roles.TableBindings)
	if !ok {
		return false
	}
	item.Bindings = tb.Append(column)
	s.publish(BindingsChanged, id)
	return true
}

// UpdatePosition replaces the item's position.
func (s *Store) UpdatePosition(id models.ItemID, pos models.Point) bool {
	item := s.find(id)
	if item == nil {
		return false
	}
	item.Position = pos
	s.publish(PositionChanged, id)
	return true
}

// UpdateSize replaces the item's size.
func (s *Store) UpdateSize(id models.ItemID, size models.Size) bool {
	item := s.find(id)
	if item == nil {
		return false
	}
	item.Size = size
	s.publish(SizeChanged, id)
	return true
}

// UpdateTitle replaces the item's display title.
func (s *Store) UpdateTitle(id models.ItemID, title string) bool {
	item := s.find(id)
	if item == nil {
		return false
	}
	item.Title = title
	s.publish(TitleChanged, id)
	return true
}

// SetActive makes id the only active item.
func (s *Store) SetActive(id models.ItemID) bool {
	if s.find(id) == nil {
		return false
	}
	if s.active != id {
		s.active = id
		s.publish(ActiveChanged, id)
	}
	return true
}

// ClearActive deselects the active item, if any.
func (s *Store) ClearActive() {
	if s.active == "" {
		return
	}
	s.active = ""
	s.publish(ActiveChanged, "")
}

// RemoveItem deletes the item, clearing the selection if it was active.
func (s *Store) RemoveItem(id models.ItemID) bool {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		wasActive := s.active == id
		if wasActive {
			s.active = ""
		}
		s.publish(ItemRemoved, id)
		if wasActive {
			s.publish(ActiveChanged, "")
		}
		return true
	}
	return false
}

// Active returns the active item id.
func (s *Store) Active() (models.ItemID, bool) {
	return s.active, s.active != ""
}

// IsActive reports whether id is the active item.
func (s *Store) IsActive(id models.ItemID) bool {
	return id != "" && s.active == id
}

// Item returns a copy of the item with id.
func (s *Store) Item(id models.ItemID) (models.Item, bool) {
	if item := s.find(id); item != nil {
		return *item, true
	}
	return models.Item{}, false
}

// Items returns a copy of all items in insertion order.
func (s *Store) Items() []models.Item {
	return append([]models.Item(nil), s.items...)
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) find(id models.ItemID) *models.Item {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

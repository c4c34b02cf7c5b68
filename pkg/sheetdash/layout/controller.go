// Package layout implements the pointer protocol that moves, resizes and
// binds columns to canvas items.
//
// A Controller is a small state machine:
//
//	Idle ──down on body──────▶ Dragging ──up──▶ Idle
//	Idle ──down on handle────▶ Resizing ──up──▶ Idle
//
// Dragging is incremental: every move adds the delta since the previous move
// to the item's current position. Resizing is absolute: every move sets the
// size to the size at gesture start plus the delta since gesture start.
// Releasing the pointer always commits; there is no cancel gesture.
package layout

import (
	"fmt"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/canvas"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

// DefaultMinSize is the smallest size a resize can produce.
var DefaultMinSize = models.Size{Width: 300, Height: 200}

// State is the gesture state of a Controller.
type State int

const (
	Idle State = iota
	Dragging
	Resizing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Target is the part of an item a pointer-down landed on.
type Target int

const (
	TargetBody Target = iota
	TargetResizeHandle
)

// Pointer is a document-wide pointer event source. Listen registers move and
// up handlers and returns a function that unregisters them.
type Pointer interface {
	Listen(move func(models.Point), up func(models.Point)) (stop func())
}

// Options configures a Controller.
type Options struct {
	// MinSize floors resize results. Zero fields fall back to DefaultMinSize.
	MinSize models.Size
	// Pointer receives listener registrations while a gesture is in progress.
	// It may be nil when the host forwards events itself.
	Pointer Pointer
}

// Controller drives gestures against a canvas store.
type Controller struct {
	store   *canvas.Store
	pointer Pointer
	minSize models.Size

	state     State
	item      models.ItemID
	start     models.Point
	last      models.Point
	startSize models.Size
	stop      func()
}

// NewController returns an idle controller mutating store.
func NewController(store *canvas.Store, opts Options) *Controller {
	minSize := opts.MinSize
	if minSize.Width <= 0 {
		minSize.Width = DefaultMinSize.Width
	}
	if minSize.Height <= 0 {
		minSize.Height = DefaultMinSize.Height
	}
	return &Controller{store: store, pointer: opts.Pointer, minSize: minSize}
}

// State returns the current gesture state.
func (c *Controller) State() State { return c.state }

// Item returns the item of the gesture in progress.
func (c *Controller) Item() (models.ItemID, bool) {
	return c.item, c.state != Idle
}

// PointerDown activates the item and starts a drag (body) or resize (handle)
// gesture at p. A gesture already in progress is ended first. It reports false
// for an unknown item.
func (c *Controller) PointerDown(id models.ItemID, target Target, p models.Point) bool {
	item, ok := c.store.Item(id)
	if !ok {
		return false
	}
	c.toIdle()
	c.store.SetActive(id)

	c.item = id
	c.start = p
	c.last = p
	c.startSize = item.Size
	if target == TargetResizeHandle {
		c.state = Resizing
	} else {
		c.state = Dragging
	}

	if c.pointer != nil {
		c.stop = c.pointer.Listen(c.PointerMove, c.PointerUp)
	}
	return true
}

// PointerMove applies a pointer move at p to the gesture in progress.
func (c *Controller) PointerMove(p models.Point) {
	switch c.state {
	case Dragging:
		item, ok := c.store.Item(c.item)
		if !ok {
			c.toIdle()
			return
		}
		next := item.Position.Add(p.Sub(c.last))
		c.store.UpdatePosition(c.item, models.Point{X: max(0, next.X), Y: max(0, next.Y)})
		c.last = p
	case Resizing:
		delta := p.Sub(c.start)
		if !c.store.UpdateSize(c.item, models.Size{
			Width:  max(c.minSize.Width, c.startSize.Width+delta.X),
			Height: max(c.minSize.Height, c.startSize.Height+delta.Y),
		}) {
			c.toIdle()
		}
	}
}

// PointerUp ends the gesture in progress, keeping its last move.
func (c *Controller) PointerUp(models.Point) {
	c.toIdle()
}

// toIdle is the only way back to Idle; it always releases pointer listeners.
func (c *Controller) toIdle() {
	if c.stop != nil {
		stop := c.stop
		c.stop = nil
		stop()
	}
	c.state = Idle
	c.item = ""
}

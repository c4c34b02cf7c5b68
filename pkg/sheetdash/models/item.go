package models

import "github.com/ukaji3/sheetdash-go/pkg/sheetdash/roles"

// ItemID identifies a canvas item for its whole lifetime.
type ItemID string

// Item is one visualization placed on the canvas.
type Item struct {
	// ID is assigned at creation and never changes.
	ID ItemID `json:"id" yaml:"id"`
	// Kind is the visualization type.
	Kind roles.Kind `json:"kind" yaml:"kind"`
	// Title is the display title.
	Title string `json:"title" yaml:"title"`
	// Bindings holds the role→column assignment shaped for Kind.
	Bindings roles.Bindings `json:"bindings" yaml:"bindings"`
	// Position is the top-left corner on the canvas.
	Position Point `json:"position" yaml:"position"`
	// Size is the item's extent.
	Size Size `json:"size" yaml:"size"`
}

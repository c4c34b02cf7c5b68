// Package sheetdash builds chart-ready data from spreadsheets for a free-form
// dashboard canvas.
//
// A Session owns the loaded workbook, the tabular model derived from the
// current sheet and header row, and the canvas items bound to its columns.
package sheetdash

import (
	"github.com/charmbracelet/log"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/config"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/layout"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

// Options configures a Session.
type Options struct {
	// Config holds canvas and ingestion settings.
	Config config.Config
	// Logger receives debug logs. If nil, logging is discarded.
	Logger *log.Logger
	// Pointer is the document-wide pointer source gestures listen on.
	// If nil, callers forward pointer events to the layout controller directly.
	Pointer layout.Pointer
}

// DefaultOptions returns default session options.
func DefaultOptions() Options {
	return Options{
		Config: config.Default(),
	}
}

// DefaultItemSize returns the size given to new canvas items.
func (o Options) DefaultItemSize() models.Size {
	return models.Size{Width: o.Config.Canvas.DefaultWidth, Height: o.Config.Canvas.DefaultHeight}
}

// MinItemSize returns the smallest size a resize gesture can produce.
func (o Options) MinItemSize() models.Size {
	return models.Size{Width: o.Config.Canvas.MinWidth, Height: o.Config.Canvas.MinHeight}
}

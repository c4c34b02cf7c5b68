// Package parser decodes xlsx workbooks into cell grids and derives the
// tabular model (column names and row records) from them.
package parser

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 914400 EMU = 1 inch = 96 pixels.
const EMUPerPixel = 9525

// EMUToPixels converts a drawing coordinate in EMU to whole pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

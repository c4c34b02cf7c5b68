package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleCurrent = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconError   = "✗"
	iconCurrent = "›"
	iconBullet  = "•"
)

// printSheets lists sheet names, marking current.
func printSheets(w io.Writer, book string, names []string, current string) {
	fmt.Fprintln(w, styleTitle.Render(book))
	for _, name := range names {
		if name == current {
			fmt.Fprintf(w, " %s %s\n", styleCurrent.Render(iconCurrent), styleCurrent.Render(name))
			continue
		}
		fmt.Fprintf(w, "   %s\n", styleValue.Render(name))
	}
}

// printHeaderCandidates renders the header row preview, marking the selected row.
func printHeaderCandidates(w io.Writer, sheet string, rows []sheetdash.HeaderCandidate, selected int) {
	fmt.Fprintln(w, styleTitle.Render(sheet))
	for _, row := range rows {
		marker := " "
		if row.Row == selected {
			marker = styleCurrent.Render(iconCurrent)
		}
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			if c == "" {
				c = styleDim.Render("·")
			}
			cells[i] = c
		}
		fmt.Fprintf(w, "%s %s %s\n", marker, styleNumber.Render(fmt.Sprintf("%3d", row.Row)),
			strings.Join(cells, styleDim.Render(" │ ")))
	}
}

// printColumns lists the model's column names with the row count.
func printColumns(w io.Writer, t *models.Table) {
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render(t.CurrentSheet),
		styleDim.Render(fmt.Sprintf("(header row %d, %d rows)", t.HeaderRow, len(t.Rows))))
	for _, col := range t.Columns {
		fmt.Fprintf(w, " %s %s\n", styleDim.Render(iconBullet), styleValue.Render(col))
	}
}

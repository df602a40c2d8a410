package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/subdivide/internal/domain/partition"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Static output: no row is selected.
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// LayoutTableColumns returns columns for the layout entry table.
func LayoutTableColumns() []table.Column {
	return []table.Column{
		{Title: "Entry", Width: 14},
		{Title: "X", Width: 8},
		{Title: "Y", Width: 8},
		{Title: "W", Width: 8},
		{Title: "H", Width: 8},
		{Title: "Axis", Width: 8},
	}
}

// LayoutRow converts a layout entry to a table row.
func LayoutRow(e partition.Entry) table.Row {
	axis := ""
	if e.Kind == partition.EntryDivider {
		axis = e.Axis.String()
	}
	return table.Row{
		e.Key(),
		formatPercent(e.Rect.X),
		formatPercent(e.Rect.Y),
		formatPercent(e.Rect.W),
		formatPercent(e.Rect.H),
		axis,
	}
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MatrixTable renders an integer grid inside a rounded border with
// right-aligned, equally wide columns.
type MatrixTable struct {
	Title string
	Rows  [][]int
}

// NewMatrixTable creates a table for rows.
func NewMatrixTable(title string, rows [][]int) *MatrixTable {
	return &MatrixTable{Title: title, Rows: rows}
}

// View renders the table using the provided styles.
func (t *MatrixTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	cells := make([][]string, len(t.Rows))
	width := 0
	for i, row := range t.Rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			s := strconv.Itoa(v)
			cells[i][j] = s
			if w := lipgloss.Width(s); w > width {
				width = w
			}
		}
	}
	// Cell padding adds one column on each side
	width += 2

	lines := make([]string, len(cells))
	for i, row := range cells {
		rendered := make([]string, len(row))
		for j, c := range row {
			rendered[j] = styles.Cell.Width(width).Render(c)
		}
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Table.Render(strings.Join(lines, "\n")))
	return sb.String()
}

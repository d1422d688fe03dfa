package dashboard

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type column struct {
	title string
	right bool
}

const columnGap = 2

func renderTable(s styles, columns []column, rows [][]string) string {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.title
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Wrap(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle()
			if row == table.HeaderRow {
				style = s.column
			}
			if col < len(columns)-1 {
				style = style.PaddingRight(columnGap)
			}
			if col < len(columns) && columns[col].right {
				style = style.Align(lipgloss.Right)
			}

			return style
		})

	lines := strings.Split(t.Render(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}

	return strings.Join(lines, "\n")
}

func renderProgressBar(fraction float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := barCells(fraction, width)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

// renderValueBar draws a solid bar scaled against the largest value in the chart.
func renderValueBar(value, largest int64, width int, color string) string {
	if width <= 0 || largest <= 0 || value <= 0 {
		return ""
	}

	filled := max(barCells(float64(value)/float64(largest), width), 1)
	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}

	return style.Render(strings.Repeat("█", filled))
}

func barCells(fraction float64, width int) int {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	return int(math.Round(float64(width) * fraction))
}

package cli

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// table renders rows under headers with a normal border.
func (c *CLI) table(headers []string, rows [][]string) {
	cell := c.renderer.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.renderer.NewStyle().Foreground(lipgloss.Color("#00FFFF"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(c.out, t.Render())
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "INF"
	}
	return fmt.Sprintf("%.2f", d)
}

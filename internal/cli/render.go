package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubekit"
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	movesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// faceletStyles colors each facelet letter like its sticker.
var faceletStyles = map[cubekit.Color]lipgloss.Style{
	cubekit.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	cubekit.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	cubekit.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	cubekit.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	cubekit.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	cubekit.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
}

// renderCube renders the planar cross with colored facelet letters.
func renderCube(c cubekit.Cube) string {
	var b strings.Builder

	writeRow := func(f cubekit.Face, row int) {
		for col := 0; col < 3; col++ {
			color := c.ColorAt(f, row, col)
			b.WriteString(faceletStyles[color].Render(color.String()))
			if col < 2 {
				b.WriteByte(' ')
			}
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("        ")
		writeRow(cubekit.Up, row)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for row := 0; row < 3; row++ {
		for i, f := range []cubekit.Face{cubekit.Left, cubekit.Front, cubekit.Right, cubekit.Back} {
			if i > 0 {
				b.WriteString("   ")
			}
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for row := 0; row < 3; row++ {
		b.WriteString("        ")
		writeRow(cubekit.Down, row)
		b.WriteByte('\n')
	}

	return b.String()
}

// solvedLabel renders the solved/scrambled status line.
func solvedLabel(c cubekit.Cube) string {
	if c.IsSolved() {
		return solvedStyle.Render("solved")
	}
	return dimStyle.Render("scrambled")
}

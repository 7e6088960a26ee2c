package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-fire/internal/core"
)

// ansiCodes holds the 256-colour code of every core.Color.
// An empty code renders with the terminal's default foreground.
var ansiCodes = [core.ColorCount]string{
	core.ColorRed:          "1",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorDarkOrange:   "166",
	core.ColorGray:         "245",
	core.ColorDarkGray:     "238",
}

var palette = newPalette()

func newPalette() [core.ColorCount]lipgloss.Style {
	var p [core.ColorCount]lipgloss.Style
	for c, code := range ansiCodes {
		p[c] = lipgloss.NewStyle()
		if code != "" {
			p[c] = p[c].Foreground(lipgloss.Color(code))
		}
	}
	return p
}

func styleFor(c core.Color) lipgloss.Style {
	if c >= core.ColorCount {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// RenderScreen turns the screen into styled text. Cells of one colour on a
// row are emitted as a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(run.String()))
				run.Reset()
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(color).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}

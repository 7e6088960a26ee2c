// Package tui runs Star Fire in the terminal with Bubble Tea.
// It owns the tick loop, turns key presses into held intents and draws the
// game screen next to the session panel.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-fire/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	tickRate = core.RuntimeConfig{TickRate: tickRate}.Rate()
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-fire/internal/storage"
)

const (
	// panelWidth is the outer width of the session panel.
	panelWidth = 34
	// minWidthForPanel is the narrowest terminal that still shows the panel.
	minWidthForPanel = 80
	// maxRuns is how many runs the panel lists.
	maxRuns = 10
)

var (
	panelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	panelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	panelMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// sessionPanel lists the best runs of this session beside the arena.
type sessionPanel struct {
	store   *storage.Store
	table   table.Model
	summary storage.SessionSummary
	err     error
	height  int
}

func newSessionPanel(store *storage.Store, height int) *sessionPanel {
	p := &sessionPanel{store: store}
	p.resize(height)
	p.refresh()
	return p
}

// createTable builds the runs table for the current height.
func (p *sessionPanel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 6},
		{Title: "Kills", Width: 6},
	}

	// Border, title, summary and table header take eight rows.
	h := p.height - 8
	if h < 1 {
		h = 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(h),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

func (p *sessionPanel) resize(height int) {
	p.height = height
	p.table = p.createTable()
	p.updateRows(nil)
}

// refresh reloads runs and the summary from the store.
func (p *sessionPanel) refresh() {
	if p.store == nil {
		return
	}

	runs, err := p.store.TopRuns(maxRuns)
	if err != nil {
		p.err = err
		return
	}
	summary, err := p.store.Summary()
	if err != nil {
		p.err = err
		return
	}

	p.err = nil
	p.summary = summary
	p.updateRows(runs)
}

func (p *sessionPanel) updateRows(runs []storage.RunRecord) {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%ds", r.ElapsedMillis/1000),
			fmt.Sprintf("%d", r.Kills),
		}
	}
	p.table.SetRows(rows)
}

// View renders the panel.
func (p *sessionPanel) View() string {
	var b strings.Builder

	b.WriteString(panelTitle.Render("THIS SESSION"))
	b.WriteString("\n")

	switch {
	case p.store == nil:
		b.WriteString(panelMuted.Render("Run log unavailable"))
	case p.err != nil:
		b.WriteString(panelMuted.Render("Run log error"))
	default:
		b.WriteString(panelMuted.Render(fmt.Sprintf("Runs: %d  Best: %d", p.summary.Runs, p.summary.BestScore)))
		b.WriteString("\n")
		b.WriteString(panelMuted.Render(fmt.Sprintf("Kills: %d  Longest: %ds", p.summary.TotalKills, p.summary.LongestMs/1000)))
		b.WriteString("\n\n")
		b.WriteString(p.table.View())
	}

	return panelBorder.
		Width(panelWidth - 2).
		Height(p.height - 2).
		Render(b.String())
}

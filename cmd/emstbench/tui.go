package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vortessa/emst"
)

var (
	watchTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	watchDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// progressMsg carries one Borůvka round's outcome into the TUI, sent by
// the Config.ProgressFunc hook the driver invokes once per round.
type progressMsg struct {
	round         int
	numComponents int
}

// doneMsg carries the final MST (or its error) once the background
// computation finishes.
type doneMsg struct {
	edges []emst.WeightedEdge
	err   error
}

// progressModel is the bubbletea model backing `emstbench mst --watch`.
type progressModel struct {
	totalPoints int
	round       int
	components  int
	done        bool
	edges       []emst.WeightedEdge
	err         error
}

func newProgressModel(totalPoints int) progressModel {
	return progressModel{totalPoints: totalPoints, components: totalPoints}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.round = msg.round
		m.components = msg.numComponents
		return m, nil
	case doneMsg:
		m.done = true
		m.edges = msg.edges
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("MST failed: %v\n", m.err)
		}
		return watchTitleStyle.Render("MST complete") + "\n"
	}
	status := fmt.Sprintf("round %d  components remaining: %d/%d", m.round, m.components, m.totalPoints)
	return watchTitleStyle.Render("Computing MST...") + "\n" + watchDimStyle.Render(status) + "\n"
}

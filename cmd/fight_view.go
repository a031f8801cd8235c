package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dilemma/internal/adapters/render/standings"
	"dilemma/internal/application"
)

type batchDoneMsg struct {
	played uint64
}

// fightModel shows the live ladder. Matches run in step batches issued as
// sequential tea commands: only one batch is ever outstanding, so the
// tournament is still accessed by one goroutine at a time.
type fightModel struct {
	tournament *application.Tournament
	refresh    time.Duration
	spinner    spinner.Model
	board      string
	quitting   bool
}

func newFightModel(tournament *application.Tournament, refresh time.Duration) fightModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return fightModel{
		tournament: tournament,
		refresh:    refresh,
		spinner:    s,
		board:      standings.View(tournament.Standings(), standings.RenderOptions{}),
	}
}

func (m fightModel) runBatch() tea.Cmd {
	return func() tea.Msg {
		return batchDoneMsg{played: m.tournament.RunFor(m.refresh)}
	}
}

func (m fightModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runBatch())
}

func (m fightModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case batchDoneMsg:
		m.board = standings.View(m.tournament.Standings(), standings.RenderOptions{
			MatchesPlayed: m.tournament.MatchesPlayed(),
		})
		return m, m.runBatch()
	default:
		return m, nil
	}
}

func (m fightModel) View() string {
	if m.quitting {
		return m.board + "\n"
	}

	return fmt.Sprintf("%s\n\n%s playing... (press q to quit)\n", m.board, m.spinner.View())
}

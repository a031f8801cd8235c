package standings

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"dilemma/internal/application"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	rows   []application.Standing
	opts   RenderOptions
	styles styles
	output string
}

func newModel(rows []application.Standing, opts RenderOptions) model {
	return model{
		rows:   rows,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.rows, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render produces the leaderboard once, without taking over the terminal.
func Render(rows []application.Standing, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(rows, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

package standings

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"dilemma/internal/application"
)

type RenderOptions struct {
	MatchesPlayed uint64
}

// View renders the leaderboard as plain styled text. It is shared by the
// one-shot Render and the live fight screen.
func View(rows []application.Standing, opts RenderOptions) string {
	return renderView(rows, opts, newStyles())
}

func renderView(rows []application.Standing, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Iterated Prisoner's Dilemma ladder"),
		s.header.Render(fmt.Sprintf("strategies: %d  matches: %d", len(rows), opts.MatchesPlayed)),
	}

	if len(rows) == 0 {
		lines = append(lines, s.empty.Render("No strategies in the pool."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	nameWidth := 0
	for _, row := range rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
	}

	for i, row := range rows {
		lines = append(lines, renderRow(i+1, row, nameWidth, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(rank int, row application.Standing, nameWidth int, s styles) string {
	nameStyle := s.name
	if rank == 1 {
		nameStyle = s.leader
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.rank.Render(fmt.Sprintf("%2d.", rank)),
		" ",
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, row.Name)),
		" ",
		s.rating.Render(fmt.Sprintf("%6d", row.Rating)),
		"  ",
		s.desc.Render("("+row.Description+")"),
	)
}

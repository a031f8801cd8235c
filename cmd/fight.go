package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dilemma/internal/application"
	"dilemma/internal/domain"
)

func newFightCmd(app *app) *cobra.Command {
	var flags poolFlags
	var refreshSecs uint64

	cmd := &cobra.Command{
		Use:   "fight",
		Short: "Run the endless tournament with a live ladder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if refreshSecs < 1 {
				return fmt.Errorf("refresh %d: must be at least 1 second", refreshSecs)
			}

			cfg, err := resolvePoolConfig(cmd, app, &flags)
			if err != nil {
				return err
			}

			pool, err := domain.NewEloPool(cfg)
			if err != nil {
				return err
			}

			tournament := application.NewTournament(pool, newRand(cmd, flags.seed), app.clock)

			p := tea.NewProgram(
				newFightModel(tournament, time.Duration(refreshSecs)*time.Second),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
			)

			_, err = p.Run()
			return err
		},
	}

	addPoolFlags(cmd, &flags)
	cmd.Flags().Uint64VarP(&refreshSecs, "refresh", "r", 2, "seconds between ladder refreshes")

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dilemma/internal/adapters/render/standings"
	"dilemma/internal/application"
	"dilemma/internal/domain"
)

func newSimulateCmd(app *app) *cobra.Command {
	var flags poolFlags
	var steps int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a fixed number of matches and print the ladder once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 0 {
				return fmt.Errorf("steps %d: must be non-negative", steps)
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
			tournament.RunSteps(steps)

			rendered, err := app.standingsRenderer(tournament.Standings(), standings.RenderOptions{
				MatchesPlayed: tournament.MatchesPlayed(),
			})
			if err != nil {
				return fmt.Errorf("render standings: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	addPoolFlags(cmd, &flags)
	cmd.Flags().IntVarP(&steps, "steps", "n", 10_000, "number of matches to play")

	return cmd
}

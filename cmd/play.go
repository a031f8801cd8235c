package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dilemma/internal/application"
	"dilemma/internal/domain"
)

func newPlayCmd() *cobra.Command {
	var weights string
	var turns int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "play <strategy-a> <strategy-b>",
		Short: "Play one exhibition match and print the normalized score",
		Long:  "Play one match between two named strategies (e.g. titfortat, grim, random:0.9) and print the score from the first strategy's perspective, in [-1, 1].",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindA, err := domain.ParseStrategyKind(args[0])
			if err != nil {
				return err
			}
			kindB, err := domain.ParseStrategyKind(args[1])
			if err != nil {
				return err
			}

			w, err := domain.ParseWeights(weights)
			if err != nil {
				return err
			}

			score, err := application.Exhibition(kindA, kindB, w, turns, newRand(cmd, seed))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s vs %s over %d turns: %+.3f\n",
				kindA.Name(), kindB.Name(), turns, score)
			return err
		},
	}

	cmd.Flags().StringVarP(&weights, "weights", "w", "2,3-0,1", `payoff weights as "dd,dcWin-dcLose,cc"`)
	cmd.Flags().IntVarP(&turns, "turns", "t", 100, "number of turns to play")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the random source for a reproducible match")

	return cmd
}

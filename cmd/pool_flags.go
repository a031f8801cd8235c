package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"dilemma/internal/domain"
)

// The CLI ships a more aggressive default k-factor than the library; both
// defaults are intentional.
const cliDefaultKFactor = 32

type poolFlags struct {
	weights     string
	startingPts int
	scale       float64
	kFactor     float64
	minTurns    int
	maxTurns    int
	seed        uint64
}

func addPoolFlags(cmd *cobra.Command, f *poolFlags) {
	defaults := domain.DefaultPoolConfig()

	cmd.Flags().StringVarP(&f.weights, "weights", "w", "2,3-0,1", `payoff weights as "dd,dcWin-dcLose,cc"`)
	cmd.Flags().IntVarP(&f.startingPts, "starting-pts", "p", defaults.StartingPoints, "starting rating for every strategy")
	cmd.Flags().Float64VarP(&f.scale, "scale", "s", defaults.Scale, "rating gap at which one side is expected to dominate")
	cmd.Flags().Float64VarP(&f.kFactor, "k-factor", "k", cliDefaultKFactor, "rating correction factor")
	cmd.Flags().IntVarP(&f.minTurns, "min-turns", "t", defaults.MinTurns, "minimum turns per match")
	cmd.Flags().IntVarP(&f.maxTurns, "max-turns", "T", defaults.MaxTurns, "maximum turns per match")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed the random source for a reproducible run")
}

// resolvePoolConfig layers configuration: library defaults (with the CLI
// k-factor), then the config file, then any flag the user set explicitly.
func resolvePoolConfig(cmd *cobra.Command, a *app, f *poolFlags) (domain.PoolConfig, error) {
	base := domain.DefaultPoolConfig()
	base.KFactor = cliDefaultKFactor

	cfg, err := a.configLoader.Load(cmd.Context(), base)
	if err != nil {
		return domain.PoolConfig{}, fmt.Errorf("load pool config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("weights") {
		w, err := domain.ParseWeights(f.weights)
		if err != nil {
			return domain.PoolConfig{}, err
		}
		cfg.Weights = w
	}
	if flags.Changed("starting-pts") {
		cfg.StartingPoints = f.startingPts
	}
	if flags.Changed("scale") {
		cfg.Scale = f.scale
	}
	if flags.Changed("k-factor") {
		cfg.KFactor = f.kFactor
	}
	if flags.Changed("min-turns") {
		cfg.MinTurns = f.minTurns
	}
	if flags.Changed("max-turns") {
		cfg.MaxTurns = f.maxTurns
	}

	return cfg, nil
}

// newRand builds the single random stream threaded through the whole run:
// seeded when the user asked for reproducibility, from system entropy
// otherwise.
func newRand(cmd *cobra.Command, seed uint64) *rand.Rand {
	if cmd.Flags().Changed("seed") {
		return rand.New(rand.NewPCG(seed, 0))
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dilemma",
		Short:         "Iterated Prisoner's Dilemma tournament with Elo ratings",
		Long:          "dilemma runs an endless tournament between fixed strategies playing the iterated Prisoner's Dilemma, keeps an Elo-style rating per strategy, and shows the ladder in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newFightCmd(app),
		newSimulateCmd(app),
		newPlayCmd(),
	)

	return rootCmd
}

package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sts",
		Short:         "SpaceTraders stats (sts): reset leaderboards and jump-gate progress",
		Long:          "sts shows leaderboards, jump-gate construction progress, material delivery records and all-time ranks for SpaceTraders resets, in the terminal or as JSON.",
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
		newResetsCmd(app),
		newLeaderboardCmd(app),
		newDashboardCmd(app),
		newJumpGateCmd(app),
		newMaterialsCmd(app),
		newHistoryCmd(app),
		newRanksCmd(app),
		newSelectCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}

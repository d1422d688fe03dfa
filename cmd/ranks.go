package cmd

import (
	"context"

	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRanksCmd(app *app) *cobra.Command {
	var maxRankFlag string
	var resetsFlag string
	var asJSON bool

	defaults := domain.DefaultHistoryFilter()

	cmd := &cobra.Command{
		Use:   "ranks",
		Short: "Show all-time top ranks across resets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			maxRank, err := domain.ParseMaxRank(maxRankFlag)
			if err != nil {
				return err
			}
			window, err := domain.ParseResetWindow(resetsFlag)
			if err != nil {
				return err
			}
			filter := domain.HistoryFilter{MaxRank: maxRank, ResetWindow: window}

			view, err := fetch(cmd, asJSON, "Fetching all-time ranks...", func(ctx context.Context) (application.RanksView, error) {
				return app.service.Ranks(ctx, filter)
			})
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, view, app.renderer.Ranks)
		},
	}

	cmd.Flags().StringVar(&maxRankFlag, "max-rank", defaults.MaxRank.String(), "Highest rank shown: all, 1, 3, 5 or 10")
	cmd.Flags().StringVar(&resetsFlag, "resets", defaults.ResetWindow.String(), "Most recent resets included: all, 1, 3, 5 or 10")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

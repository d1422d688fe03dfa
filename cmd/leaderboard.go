package cmd

import (
	"context"

	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLeaderboardCmd(app *app) *cobra.Command {
	var resetFlag string
	var byFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top agents of a reset by credits or ships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			field, err := domain.ParseLeaderboardField(byFlag)
			if err != nil {
				return err
			}

			view, err := fetch(cmd, asJSON, "Fetching leaderboard...", func(ctx context.Context) (application.LeaderboardView, error) {
				reset, err := resolveResetID(ctx, app, resetFlag)
				if err != nil {
					return application.LeaderboardView{}, err
				}
				return app.service.Leaderboard(ctx, reset, field)
			})
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, view, app.renderer.Leaderboard)
		},
	}

	addResetFlag(cmd, &resetFlag)
	addByFlag(cmd, &byFlag)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func addByFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "by", string(domain.LeaderboardFieldCredits), "Sort field: credits or ships")
}

package cmd

import (
	"context"

	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	var resetFlag string
	var byFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show leaderboard, jump gates and materials of a reset at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			field, err := domain.ParseLeaderboardField(byFlag)
			if err != nil {
				return err
			}

			view, err := fetch(cmd, asJSON, "Fetching reset statistics...", func(ctx context.Context) (application.DashboardView, error) {
				reset, err := resolveResetID(ctx, app, resetFlag)
				if err != nil {
					return application.DashboardView{}, err
				}
				return app.service.Dashboard(ctx, reset, field)
			})
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, view, app.renderer.Dashboard)
		},
	}

	addResetFlag(cmd, &resetFlag)
	addByFlag(cmd, &byFlag)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

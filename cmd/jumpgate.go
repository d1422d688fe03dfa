package cmd

import (
	"context"

	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/spf13/cobra"
)

func newJumpGateCmd(app *app) *cobra.Command {
	var resetFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "jumpgate",
		Aliases: []string{"gates"},
		Short:   "Show jump-gate construction progress of a reset",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := fetch(cmd, asJSON, "Fetching jump gates...", func(ctx context.Context) (application.JumpGateView, error) {
				reset, err := resolveResetID(ctx, app, resetFlag)
				if err != nil {
					return application.JumpGateView{}, err
				}
				return app.service.JumpGates(ctx, reset)
			})
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, view, app.renderer.JumpGates)
		},
	}

	addResetFlag(cmd, &resetFlag)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

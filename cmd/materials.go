package cmd

import (
	"context"

	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/spf13/cobra"
)

func newMaterialsCmd(app *app) *cobra.Command {
	var resetFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Show delivery counts and fastest delivery times per material",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := fetch(cmd, asJSON, "Fetching construction progress...", func(ctx context.Context) (application.MaterialsView, error) {
				reset, err := resolveResetID(ctx, app, resetFlag)
				if err != nil {
					return application.MaterialsView{}, err
				}
				return app.service.Materials(ctx, reset)
			})
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, view, app.renderer.Materials)
		},
	}

	addResetFlag(cmd, &resetFlag)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

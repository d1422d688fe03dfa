package cmd

import (
	"context"

	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newResetsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resets",
		Short: "List resets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resets, err := fetch(cmd, asJSON, "Fetching resets...", app.service.ListResets)
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, resets, app.renderer.Resets)
		},
	}

	addJSONFlag(cmd, &asJSON)

	return cmd
}

func resolveResetID(ctx context.Context, app *app, raw string) (domain.ResetID, error) {
	reset, err := app.service.ResolveReset(ctx, raw)
	if err != nil {
		return "", err
	}

	return reset.ID, nil
}

func addResetFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "reset", "", "Reset date, e.g. 2024-03-10 (default: newest reset)")
}

func addJSONFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "json", false, "Render JSON output")
}

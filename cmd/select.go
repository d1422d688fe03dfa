package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/spf13/cobra"
)

func newSelectCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Manage the agents followed per reset",
	}

	cmd.AddCommand(
		newSelectListCmd(app),
		newSelectAddCmd(app),
		newSelectRemoveCmd(app),
		newSelectClearCmd(app),
	)

	return cmd
}

func newSelectListCmd(app *app) *cobra.Command {
	var resetFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List selected agents (top 10 by credits when nothing is saved)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := fetch(cmd, asJSON, "Loading selection...", func(ctx context.Context) (application.SelectionView, error) {
				reset, err := resolveResetID(ctx, app, resetFlag)
				if err != nil {
					return application.SelectionView{}, err
				}
				return app.selections.Get(ctx, reset)
			})
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, view, app.renderer.Selection)
		},
	}

	addResetFlag(cmd, &resetFlag)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newSelectAddCmd(app *app) *cobra.Command {
	var resetFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "add AGENT...",
		Short: "Add agents to the selection, partial symbols allowed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := fetch(cmd, asJSON, "Resolving agents...", func(ctx context.Context) (application.SelectionView, error) {
				reset, err := resolveResetID(ctx, app, resetFlag)
				if err != nil {
					return application.SelectionView{}, err
				}
				return app.selections.Add(ctx, reset, args)
			})
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, view, app.renderer.Selection)
		},
	}

	addResetFlag(cmd, &resetFlag)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newSelectRemoveCmd(app *app) *cobra.Command {
	var resetFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "remove AGENT...",
		Aliases: []string{"rm"},
		Short:   "Remove agents from the selection",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := fetch(cmd, asJSON, "Updating selection...", func(ctx context.Context) (application.SelectionView, error) {
				reset, err := resolveResetID(ctx, app, resetFlag)
				if err != nil {
					return application.SelectionView{}, err
				}
				return app.selections.Remove(ctx, reset, args)
			})
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, view, app.renderer.Selection)
		},
	}

	addResetFlag(cmd, &resetFlag)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newSelectClearCmd(app *app) *cobra.Command {
	var resetFlag string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved selection and go back to the top 10 agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reset, err := resolveResetID(cmd.Context(), app, resetFlag)
			if err != nil {
				return err
			}

			if err := app.selections.Clear(cmd.Context(), reset); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cleared agent selection for reset %s\n", reset)
			return err
		},
	}

	addResetFlag(cmd, &resetFlag)

	return cmd
}

package cmd

import (
	"context"

	"github.com/bnema/spacetraders-stats-cli/internal/application"
	"github.com/bnema/spacetraders-stats-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var resetFlag string
	var agentFlags []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show credit history of selected agents during a reset",
		Long:  "history shows the credit history of the agents given with --agent. Partial symbols are matched against the reset's leaderboard. Without --agent the reset's agent selection is used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := fetch(cmd, asJSON, "Fetching agent history...", func(ctx context.Context) (application.HistoryView, error) {
				reset, err := resolveResetID(ctx, app, resetFlag)
				if err != nil {
					return application.HistoryView{}, err
				}

				agents, err := historyAgents(ctx, app, reset, agentFlags)
				if err != nil {
					return application.HistoryView{}, err
				}

				return app.service.History(ctx, reset, agents)
			})
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, view, app.renderer.History)
		},
	}

	addResetFlag(cmd, &resetFlag)
	cmd.Flags().StringSliceVar(&agentFlags, "agent", nil, "Agent symbol, partial symbols allowed (repeatable)")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func historyAgents(ctx context.Context, app *app, reset domain.ResetID, queries []string) ([]domain.AgentSymbol, error) {
	if len(queries) > 0 {
		return app.service.ResolveAgents(ctx, reset, queries)
	}

	selection, err := app.selections.Get(ctx, reset)
	if err != nil {
		return nil, err
	}

	return selection.Agents, nil
}

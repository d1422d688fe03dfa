package cmd

import (
	"fmt"

	"github.com/bnema/spacetraders-stats-cli/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"version": version.Version})
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "sts %s\n", version.Version)
			return err
		},
	}

	addJSONFlag(cmd, &asJSON)

	return cmd
}

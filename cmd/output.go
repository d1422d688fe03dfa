package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func writeJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// writeView prints view as indented JSON or through render.
func writeView[T any](cmd *cobra.Command, asJSON bool, view T, render func(T) (string, error)) error {
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), view)
	}

	rendered, err := render(view)
	if err != nil {
		return fmt.Errorf("render view: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// fetch runs load behind a spinner on stderr. JSON output skips the spinner
// so scripts only ever see the payload.
func fetch[T any](cmd *cobra.Command, asJSON bool, label string, load func(context.Context) (T, error)) (T, error) {
	if asJSON {
		return load(cmd.Context())
	}

	return runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), label, load)
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-secret-share/internal/ui"
)

func newHistoryCommand() *cobra.Command {
	var (
		activeOnly bool
		limit      uint64
		prune      bool
	)

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "List secrets created from this machine",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, log, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer closeApp(app, log)

			if prune {
				if n := app.Pruner.PruneOnce(cmd.Context()); n > 0 {
					fmt.Fprintln(cmd.ErrOrStderr(), ui.Muted.Sprintf("pruned %d expired entries", n))
				}
			}

			entries, err := app.Services.HistoryService.List(cmd.Context(), activeOnly, limit)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}
			return ui.RenderHistory(cmd.OutOrStdout(), entries, time.Now())
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "hide burned and expired secrets")
	cmd.Flags().Uint64VarP(&limit, "limit", "n", 50, "maximum number of entries, 0 for all")
	cmd.Flags().BoolVar(&prune, "prune", false, "remove expired entries first")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-secret-share/internal/service"
	"github.com/MKhiriev/go-secret-share/internal/ui"
)

func newBurnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "burn <secret-id | share-link>",
		Short: "Destroy a secret before anyone reads it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secretID := args[0]
			// A pasted share link works too.
			if id, _, err := service.ParseShareURL(secretID); err == nil {
				secretID = id
			}

			app, log, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer closeApp(app, log)

			if err := app.Services.BurnService.Burn(cmd.Context(), secretID); err != nil {
				ui.RenderFeedback(cmd.ErrOrStderr(), service.NewFeedback(err))
				return ErrReported
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Secret %s burned\n", ui.Success.Sprint("✓"), ui.Highlight.Sprint(secretID))
			return nil
		},
	}
}

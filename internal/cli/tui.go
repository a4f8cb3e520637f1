package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-secret-share/internal/tui"
	"github.com/MKhiriev/go-secret-share/models"
)

func newTUICommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, buildInfo)
		},
	}
}

func runTUI(cmd *cobra.Command, buildInfo models.AppBuildInfo) error {
	app, log, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(app, log)

	ui := tui.New(app.Services, app.Runner, app.Origin(), buildInfo, log)
	if err := app.RunUI(cmd.Context(), ui); err != nil {
		log.Error().Err(err).Msg("client run error")
		return err
	}
	return nil
}

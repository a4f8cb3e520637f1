// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the command-line front end. Every command builds its own
// client.App from the merged configuration and closes it before returning.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-secret-share/internal/client"
	"github.com/MKhiriev/go-secret-share/internal/config"
	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/models"
)

// ErrReported is returned when the command already printed why it failed.
// Callers should exit non-zero without printing it again.
var ErrReported = errors.New("command failed")

const clientRole = "secret-share-client"

// NewRootCommand assembles the command tree.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "secret-share",
		Short: "Share secrets through one-time links",
		Long: `secret-share encrypts text and files on this machine and uploads only
ciphertext. The decryption key travels in the link fragment, which is never
sent to the server.

Running without a command opens the interactive interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, buildInfo)
		},
	}

	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newCreateCommand(),
		newBurnCommand(),
		newHistoryCommand(),
		newTUICommand(buildInfo),
		newVersionCommand(buildInfo),
	)
	return root
}

// Execute runs the command tree with args taken from os.Args.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo) error {
	return NewRootCommand(buildInfo).ExecuteContext(ctx)
}

// openApp resolves the configuration from cmd's flags, environment and
// config file, and builds the client app.
func openApp(cmd *cobra.Command) (*client.App, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger(clientRole, cfg.Log.Level)
	app, err := client.NewApp(cmd.Context(), cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return nil, nil, err
	}
	return app, log, nil
}

func closeApp(app *client.App, log *logger.Logger) {
	if err := app.Close(); err != nil {
		log.Error().Err(err).Msg("close client app")
	}
}

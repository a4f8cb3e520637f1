package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secret-share/internal/crypto"
	"github.com/MKhiriev/go-secret-share/internal/lifecycle"
	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/internal/service"
	"github.com/MKhiriev/go-secret-share/models"
)

const (
	pageCreate  = "create"
	pageHistory = "history"
)

// lifecycleRunner is the part of lifecycle.Runner the create page needs.
type lifecycleRunner interface {
	NewAttemptID() string
	Submit(ctx context.Context, attemptID string, form models.SecretForm) lifecycle.Event
	Burn(ctx context.Context, secretID string) lifecycle.Event
}

type TUI struct {
	services  *service.ClientServices
	runner    lifecycleRunner
	origin    string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, runner *lifecycle.Runner, origin string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		runner:    runner,
		origin:    origin,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the create page until the user quits. Quitting with ctrl+c is
// not an error.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageCreate:  NewCreateModel(ctx, t.runner, t.origin, t.services.SessionService.Authenticated(), crypto.GeneratePassword),
		pageHistory: NewHistoryModel(ctx, t.services.HistoryService, t.services.BurnService),
	}

	root := NewRootModel(pages, pageCreate, t.buildInfo)
	if _, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		// Cancelling ctx kills the program; that is a normal shutdown.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}

	t.logger.Debug().Msg("tui closed")
	return nil
}

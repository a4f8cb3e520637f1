package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-share/internal/adapter"
	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/internal/store"
)

type burnService struct {
	api    adapter.SecretAPI
	ledger store.LedgerRepository
	now    func() time.Time
	logger *logger.Logger
}

func NewBurnService(api adapter.SecretAPI, ledger store.LedgerRepository, logger *logger.Logger) BurnService {
	return &burnService{api: api, ledger: ledger, now: time.Now, logger: logger}
}

func (b *burnService) Burn(ctx context.Context, secretID string) error {
	if secretID == "" {
		return fmt.Errorf("%w: no secret to burn", ErrInvalidState)
	}

	if err := b.api.BurnSecret(ctx, secretID); err != nil {
		b.logger.Err(err).Str("secret_id", secretID).Msg("burn request failed")
		return fmt.Errorf("burn secret %s: %w", secretID, err)
	}

	err := b.ledger.MarkBurned(ctx, secretID, b.now())
	switch {
	case err == nil:
	case errors.Is(err, store.ErrLedgerEntryNotFound):
		b.logger.Debug().Str("secret_id", secretID).Msg("burned secret is not in the ledger")
	default:
		b.logger.Err(err).Str("secret_id", secretID).Msg("failed to mark secret burned in ledger")
	}

	b.logger.Info().Str("secret_id", secretID).Msg("secret burned")
	return nil
}

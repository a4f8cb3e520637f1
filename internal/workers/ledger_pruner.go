// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/internal/store"
)

// LedgerPruner periodically deletes ledger entries whose lifetime elapsed.
// The server forgets those secrets on its own; the rows only clutter the
// history.
type LedgerPruner struct {
	repo     store.LedgerRepository
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

// NewLedgerPruner returns a pruner running every interval.
func NewLedgerPruner(repo store.LedgerRepository, interval time.Duration, logger *logger.Logger) *LedgerPruner {
	return &LedgerPruner{
		repo:     repo,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run prunes once immediately and then on every tick until ctx is done.
func (p *LedgerPruner) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.PruneOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Msg("ledger pruner stopped")
			return
		case <-ticker.C:
			p.PruneOnce(ctx)
		}
	}
}

// PruneOnce deletes expired entries and returns how many were removed.
// Failures are logged; the next tick tries again.
func (p *LedgerPruner) PruneOnce(ctx context.Context) int64 {
	n, err := p.repo.DeleteExpired(ctx, p.now())
	if err != nil {
		p.logger.Err(err).Msg("failed to prune ledger")
		return 0
	}
	if n > 0 {
		p.logger.Info().Int64("removed", n).Msg("pruned expired ledger entries")
	}
	return n
}

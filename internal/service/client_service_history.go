package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-share/internal/store"
	"github.com/MKhiriev/go-secret-share/models"
)

type historyService struct {
	ledger store.LedgerRepository
	now    func() time.Time
}

func NewHistoryService(ledger store.LedgerRepository) HistoryService {
	return &historyService{ledger: ledger, now: time.Now}
}

func (h *historyService) List(ctx context.Context, activeOnly bool, limit uint64) ([]models.LedgerEntry, error) {
	filter := store.LedgerFilter{Limit: limit}
	if activeOnly {
		filter.ActiveAt = h.now()
	}

	entries, err := h.ledger.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	return entries, nil
}

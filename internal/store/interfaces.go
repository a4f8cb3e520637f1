// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local persistence of the client: a SQLite
// ledger of the secrets this client created, so they can be listed and
// burned later. The ledger never holds key material, passwords or
// plaintext.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_repository_mock.go -package=mock

// LedgerFilter narrows [LedgerRepository.List].
type LedgerFilter struct {
	// ActiveAt, when non-zero, keeps only entries that are neither burned
	// nor expired at that instant.
	ActiveAt time.Time

	// Limit caps the number of rows; zero means no cap.
	Limit uint64
}

// LedgerRepository persists [models.LedgerEntry] values.
type LedgerRepository interface {
	// Save inserts entry. Saving an existing SecretID replaces the row.
	Save(ctx context.Context, entry models.LedgerEntry) error

	// Get returns the entry for secretID or [ErrLedgerEntryNotFound].
	Get(ctx context.Context, secretID string) (models.LedgerEntry, error)

	// List returns entries newest first.
	List(ctx context.Context, filter LedgerFilter) ([]models.LedgerEntry, error)

	// MarkBurned stamps burnedAt on the entry. Returns
	// [ErrLedgerEntryNotFound] if no such entry exists.
	MarkBurned(ctx context.Context, secretID string, burnedAt time.Time) error

	// DeleteExpired removes entries whose expiry is not after now and
	// reports how many rows were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

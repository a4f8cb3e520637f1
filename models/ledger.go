// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LedgerEntry is the local record of a secret this client created. It keeps
// only what is needed to list and burn secrets later. Key material, passwords
// and plaintext are never part of it.
type LedgerEntry struct {
	// SecretID is the opaque server identifier.
	SecretID string

	// Origin is the public origin the share URL was composed with.
	Origin string

	// TTL is the requested lifetime in seconds.
	TTL int64

	// MaxViews is the requested view budget.
	MaxViews int

	// PreventBurn mirrors [SecretPolicy.PreventBurn].
	PreventBurn bool

	// HasPassword reports whether a password was required to read the secret.
	HasPassword bool

	// CreatedAt is when the server accepted the secret.
	CreatedAt time.Time

	// ExpiresAt is CreatedAt plus TTL.
	ExpiresAt time.Time

	// BurnedAt is set once the secret was burned from this client.
	BurnedAt *time.Time
}

// NewLedgerEntry builds the ledger record for a successful submission.
func NewLedgerEntry(origin string, s Submission, createdAt time.Time) LedgerEntry {
	return LedgerEntry{
		SecretID:    s.SecretID,
		Origin:      origin,
		TTL:         s.Policy.TTL,
		MaxViews:    s.Policy.MaxViews,
		PreventBurn: s.Policy.PreventBurn,
		HasPassword: s.HasPassword,
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(time.Duration(s.Policy.TTL) * time.Second),
	}
}

// Active reports whether the entry is neither burned nor expired at now.
func (e LedgerEntry) Active(now time.Time) bool {
	return e.BurnedAt == nil && now.Before(e.ExpiresAt)
}

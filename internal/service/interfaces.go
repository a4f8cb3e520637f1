// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client use cases: turning a secret form into a
// created secret and a share link, burning secrets, and listing the local
// history. Front ends talk to these interfaces only.
package service

import (
	"context"

	"github.com/MKhiriev/go-secret-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SubmissionService creates secrets.
type SubmissionService interface {
	// Submit validates form, encrypts it locally and asks the server to store
	// the ciphertext. Validation failures never reach the network.
	//
	// The attempt id is taken from ctx (see utils.WithAttemptID) or generated
	// when absent; it is echoed in the returned Submission.
	//
	// Errors: *ValidationError, *SubmissionRejectedError,
	// *SubmissionFailedError, crypto.ErrEntropyUnavailable, ErrInvalidState.
	Submit(ctx context.Context, form models.SecretForm) (models.Submission, error)
}

// BurnService destroys secrets before their lifetime ends.
type BurnService interface {
	// Burn asks the server to destroy secretID and stamps the local ledger.
	// Server errors are returned; a missing ledger row is not an error.
	Burn(ctx context.Context, secretID string) error
}

// HistoryService reads the local ledger.
type HistoryService interface {
	// List returns ledger entries newest first. activeOnly drops burned and
	// expired entries; limit 0 means no limit.
	List(ctx context.Context, activeOnly bool, limit uint64) ([]models.LedgerEntry, error)
}

// SessionService exposes the bearer token of the current session.
type SessionService interface {
	// SetToken replaces the session token. Empty means anonymous.
	SetToken(token string)

	// Authenticated reports whether the token is a non-expired session.
	Authenticated() bool

	// TTLOptions returns the lifetimes the session may choose.
	TTLOptions() []models.TTLOption
}

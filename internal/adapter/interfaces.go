// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the secret server.
//
// The primary abstraction is [SecretAPI], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPSecretAPI]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-secret-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_api_mock.go -package=mock

// SecretAPI defines communication with the secret server. Implementations
// are responsible for serialisation, the authorization header, and mapping
// transport-level errors to the sentinel values defined in this package.
type SecretAPI interface {
	// SetToken stores the bearer token of a logged-in session. It is
	// attached to all subsequent requests. An empty token means anonymous.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// CreateSecret posts a sealed secret. Any answer the server gives is
	// decoded into [models.CreateSecretResponse] with StatusCode set, and
	// err is nil; only transport failures (no answer at all) return an
	// error. Interpreting the status is up to the caller.
	CreateSecret(ctx context.Context, req models.CreateSecretRequest) (models.CreateSecretResponse, error)

	// BurnSecret asks the server to destroy a secret immediately. Non-2xx
	// answers are mapped to the sentinels of this package.
	BurnSecret(ctx context.Context, secretID string) error
}

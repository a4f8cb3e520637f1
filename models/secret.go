// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Ciphertext is a base64-encoded sealed blob (nonce ‖ box). Only values of this
// type are ever placed into the text, title and file content fields of a
// create-secret request.
type Ciphertext string

// FileInput is a single user-selected file before archiving.
type FileInput struct {
	// Name is the original file name. Only the base name is kept inside the
	// archive.
	Name string

	// Content is the raw file content.
	Content []byte
}

// SecretPolicy holds the lifetime and access rules of a secret. The policy
// is sent to the server in plaintext because the server enforces it.
type SecretPolicy struct {
	// TTL is the secret lifetime in seconds. Must be one of the values
	// returned by [TTLOptions] for the current session.
	TTL int64 `json:"ttl"`

	// MaxViews is how many times the secret may be read before it is
	// destroyed. Must be at least 1.
	MaxViews int `json:"maxViews"`

	// AllowedIP optionally restricts reads to a single IP address or CIDR
	// range. Empty means no restriction.
	AllowedIP string `json:"allowedIp"`

	// PreventBurn disables burn-after-read so the secret lives until its TTL
	// or view budget runs out.
	PreventBurn bool `json:"preventBurn"`
}

// DefaultPolicy returns the policy a fresh form starts with.
func DefaultPolicy() SecretPolicy {
	return SecretPolicy{
		TTL:      DefaultTTL,
		MaxViews: 1,
	}
}

// SecretForm is everything a user enters to create a secret.
type SecretForm struct {
	Text     string
	Title    string
	Files    []FileInput
	Password string
	Policy   SecretPolicy
}

// NewSecretForm returns an empty form with the default policy.
func NewSecretForm() SecretForm {
	return SecretForm{Policy: DefaultPolicy()}
}

// SealedFile is one encrypted file entry of a [SealedPayload].
type SealedFile struct {
	// Type is the MIME type of the plaintext blob (always "application/zip"
	// for archived bundles).
	Type string `json:"type"`

	// Ext is the file extension of the plaintext blob, including the dot.
	Ext string `json:"ext"`

	// Content is the sealed blob.
	Content Ciphertext `json:"content"`
}

// SealedPayload is the ciphertext bundle produced on the client. Files holds
// zero or one entries today; it is a slice so more entries can be added
// without a wire change.
type SealedPayload struct {
	Text  Ciphertext   `json:"text"`
	Title Ciphertext   `json:"title"`
	Files []SealedFile `json:"files"`
}

// CreateSecretRequest is the JSON body of POST /api/secret.
//
// Password is the server-side access password. It is the same string that
// strengthens the encryption key, but KeyMaterial is never part of this
// request, so the server cannot rebuild the effective key.
type CreateSecretRequest struct {
	SealedPayload
	SecretPolicy

	Password string `json:"password"`
}

// CreateSecretResponse is the decoded answer to POST /api/secret. StatusCode
// always carries the HTTP status; ID is set on success, Error and Message on
// failure.
type CreateSecretResponse struct {
	StatusCode int    `json:"statusCode"`
	ID         string `json:"id,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Submission is the outcome of a successful create-secret attempt.
type Submission struct {
	// AttemptID correlates the submission with the lifecycle attempt that
	// started it.
	AttemptID string

	// SecretID is the opaque identifier issued by the server.
	SecretID string

	// KeyMaterial is the pre-enhancement random key. It is the only key
	// value that may be placed into a share URL fragment.
	KeyMaterial string

	// Policy echoes the policy that was requested, for display.
	Policy SecretPolicy

	// HasPassword reports whether the secret was additionally protected by a
	// password that the recipient must know.
	HasPassword bool
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"

	"github.com/MKhiriev/go-secret-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain is responsible for all client-side cryptography of a secret
// creation attempt. It knows nothing about the network, storage or forms.
//
// Flow of one attempt:
//
//	KeyMaterial  = NewKeyMaterial(password)                   (step 1)
//	EffectiveKey = DeriveEffectiveKey(KeyMaterial, password)  (step 2)
//	Payload      = SealPayload(text, title, archive, key)     (step 3)
//
// Only KeyMaterial may leave the client, and only inside a URL fragment.
type KeyChain interface {
	// NewKeyMaterial generates fresh random key material sized for the
	// given password. In concat mode the result is exactly
	// KeySize-len(password) characters long so the effective key fills a
	// secretbox key. Returns [ErrEntropyUnavailable] if the randomness
	// source fails and [ErrPasswordTooLong] if no room is left for key
	// material.
	NewKeyMaterial(password string) (string, error)

	// DeriveEffectiveKey combines key material with the optional password.
	// The combination is plain concatenation; an empty password yields the
	// key material alone.
	DeriveEffectiveKey(keyMaterial, password string) []byte

	// SealPayload encrypts text, title and the optional archive
	// independently under key. The three fields are sealed concurrently;
	// if any of them fails the whole call fails and no partial payload is
	// returned. A nil archive produces an empty Files slice.
	SealPayload(ctx context.Context, text, title string, archive []byte, key []byte) (models.SealedPayload, error)

	// Seal encrypts a single plaintext under key and returns the
	// base64-encoded blob with its nonce prepended.
	Seal(plaintext []byte, key []byte) (models.Ciphertext, error)

	// Open reverses Seal. It returns [ErrDecryptionFailed] if the blob was
	// tampered with or key is wrong; it never returns wrong plaintext.
	Open(blob models.Ciphertext, key []byte) ([]byte, error)
}

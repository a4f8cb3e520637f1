package crypto

import "errors"

var (
	// ErrEntropyUnavailable is returned when the randomness source cannot be
	// read. It is fatal for the attempt and must not be retried.
	ErrEntropyUnavailable = errors.New("entropy unavailable")

	// ErrDecryptionFailed is returned when a blob fails authentication.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeyLength is returned in concat mode when the effective key
	// is not exactly KeySize bytes long.
	ErrInvalidKeyLength = errors.New("invalid effective key length")

	// ErrPasswordTooLong is returned when a password leaves no room for key
	// material.
	ErrPasswordTooLong = errors.New("password too long")

	// ErrMalformedCiphertext is returned when a blob is not valid base64 or
	// is shorter than its header.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)

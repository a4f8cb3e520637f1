// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-secret-share/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/sync/errgroup"
)

const (
	// KeySize is the secretbox key size in bytes.
	KeySize = 32
	// NonceSize is the secretbox nonce size in bytes.
	NonceSize = 24
	// SaltSize is the Argon2id salt size used in argon2id mode.
	SaltSize = 16

	// ArchiveMIMEType and ArchiveExt describe the single archived file entry.
	ArchiveMIMEType = "application/zip"
	ArchiveExt      = ".zip"
)

// Derivation selects how the effective key becomes the cipher key.
type Derivation string

const (
	// DerivationConcat feeds KeyMaterial ‖ Password to the cipher as is.
	DerivationConcat Derivation = "concat"

	// DerivationArgon2id stretches KeyMaterial ‖ Password with Argon2id and
	// a random salt stored in front of every blob.
	DerivationArgon2id Derivation = "argon2id"
)

// ParseDerivation maps a config value onto a [Derivation]. Empty means concat.
func ParseDerivation(s string) (Derivation, error) {
	switch Derivation(s) {
	case "", DerivationConcat:
		return DerivationConcat, nil
	case DerivationArgon2id:
		return DerivationArgon2id, nil
	default:
		return "", fmt.Errorf("unknown key derivation %q", s)
	}
}

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	derivation Derivation
	random     io.Reader

	// Argon2id tuning, used only in argon2id mode.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyChain constructs a [KeyChain] for the given derivation mode. Argon2id
// parameters follow the OWASP recommendation: 1 iteration, 64 MiB, 4 threads.
func NewKeyChain(derivation Derivation) KeyChain {
	return newKeyChain(derivation, rand.Reader)
}

func newKeyChain(derivation Derivation, random io.Reader) *keyChain {
	if derivation == "" {
		derivation = DerivationConcat
	}
	return &keyChain{
		derivation:   derivation,
		random:       random,
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
	}
}

// NewKeyMaterial implements [KeyChain].
func (k *keyChain) NewKeyMaterial(password string) (string, error) {
	length := KeySize
	if k.derivation == DerivationConcat {
		length = KeySize - len(password)
		if length <= 0 {
			return "", ErrPasswordTooLong
		}
	}

	return randomKeyString(k.random, length)
}

// DeriveEffectiveKey implements [KeyChain].
func (k *keyChain) DeriveEffectiveKey(keyMaterial, password string) []byte {
	key := make([]byte, 0, len(keyMaterial)+len(password))
	key = append(key, keyMaterial...)
	return append(key, password...)
}

// SealPayload implements [KeyChain].
func (k *keyChain) SealPayload(ctx context.Context, text, title string, archive []byte, key []byte) (models.SealedPayload, error) {
	sealer, err := k.newSealer(key, nil)
	if err != nil {
		return models.SealedPayload{}, err
	}

	var (
		payload       = models.SealedPayload{Files: []models.SealedFile{}}
		sealedArchive models.Ciphertext
	)

	g, gctx := errgroup.WithContext(ctx)
	seal := func(dst *models.Ciphertext, plaintext []byte, field string) func() error {
		return func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			blob, err := sealer.seal(plaintext)
			if err != nil {
				return fmt.Errorf("seal %s: %w", field, err)
			}
			*dst = blob
			return nil
		}
	}

	g.Go(seal(&payload.Text, []byte(text), "text"))
	g.Go(seal(&payload.Title, []byte(title), "title"))
	if archive != nil {
		g.Go(seal(&sealedArchive, archive, "archive"))
	}

	if err = g.Wait(); err != nil {
		return models.SealedPayload{}, err
	}

	if archive != nil {
		payload.Files = append(payload.Files, models.SealedFile{
			Type:    ArchiveMIMEType,
			Ext:     ArchiveExt,
			Content: sealedArchive,
		})
	}

	return payload, nil
}

// Seal implements [KeyChain].
func (k *keyChain) Seal(plaintext []byte, key []byte) (models.Ciphertext, error) {
	sealer, err := k.newSealer(key, nil)
	if err != nil {
		return "", err
	}
	return sealer.seal(plaintext)
}

// Open implements [KeyChain].
func (k *keyChain) Open(blob models.Ciphertext, key []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(string(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	var salt []byte
	if k.derivation == DerivationArgon2id {
		if len(raw) < SaltSize {
			return nil, ErrMalformedCiphertext
		}
		salt, raw = raw[:SaltSize], raw[SaltSize:]
	}

	sealer, err := k.newSealer(key, salt)
	if err != nil {
		return nil, err
	}

	if len(raw) < NonceSize+secretbox.Overhead {
		return nil, ErrMalformedCiphertext
	}

	var nonce [NonceSize]byte
	copy(nonce[:], raw[:NonceSize])

	plaintext, ok := secretbox.Open(nil, raw[NonceSize:], &nonce, &sealer.key)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// sealer holds the cipher key of one payload. In argon2id mode the salt the
// key was stretched with is written in front of every blob it produces.
type sealer struct {
	key    [KeySize]byte
	salt   []byte
	random io.Reader
}

// newSealer prepares the cipher key. A nil salt in argon2id mode means a new
// random salt is drawn.
func (k *keyChain) newSealer(effectiveKey []byte, salt []byte) (*sealer, error) {
	s := &sealer{random: k.random}

	switch k.derivation {
	case DerivationArgon2id:
		if salt == nil {
			var err error
			if salt, err = readRandom(k.random, SaltSize); err != nil {
				return nil, err
			}
		}
		stretched := argon2.IDKey(effectiveKey, salt, k.argonTime, k.argonMemory, k.argonThreads, KeySize)
		copy(s.key[:], stretched)
		s.salt = salt
	default:
		if len(effectiveKey) != KeySize {
			return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(effectiveKey), KeySize)
		}
		copy(s.key[:], effectiveKey)
	}

	return s, nil
}

// seal encrypts plaintext with a fresh nonce: [salt ‖] nonce ‖ box, base64.
func (s *sealer) seal(plaintext []byte) (models.Ciphertext, error) {
	nonceBytes, err := readRandom(s.random, NonceSize)
	if err != nil {
		return "", err
	}

	var nonce [NonceSize]byte
	copy(nonce[:], nonceBytes)

	out := make([]byte, 0, len(s.salt)+NonceSize+len(plaintext)+secretbox.Overhead)
	out = append(out, s.salt...)
	out = append(out, nonce[:]...)
	out = secretbox.Seal(out, plaintext, &nonce, &s.key)

	return models.Ciphertext(base64.StdEncoding.EncodeToString(out)), nil
}

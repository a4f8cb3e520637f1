// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// GeneratedPasswordLength is the length of auto-generated passwords.
	GeneratedPasswordLength = 16

	// MinPasswordLength and MaxPasswordLength bound user passwords.
	MinPasswordLength = 8
	MaxPasswordLength = 28

	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!$()*-.:;@_~"

	// maxStrictAttempts bounds regeneration in strict mode. With four pools
	// and 16 characters a miss is rare; this only guards a broken reader.
	maxStrictAttempts = 64
)

var (
	ErrPasswordLength  = fmt.Errorf("password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength)
	ErrPasswordCharset = errors.New("password must contain printable ASCII characters only")
)

// GeneratePassword returns a random strict password: 16 characters with at
// least one lowercase letter, uppercase letter, digit and symbol. The symbol
// set excludes characters with a meaning in URLs or query strings.
func GeneratePassword() (string, error) {
	return generatePassword(rand.Reader)
}

func generatePassword(src io.Reader) (string, error) {
	pools := []string{lowerChars, upperChars, digitChars, symbolChars}
	alphabet := strings.Join(pools, "")

	for range maxStrictAttempts {
		candidate, err := randomFromAlphabet(src, alphabet, GeneratedPasswordLength)
		if err != nil {
			return "", err
		}
		if containsEveryPool(candidate, pools) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: strict password not produced", ErrEntropyUnavailable)
}

func containsEveryPool(s string, pools []string) bool {
	for _, pool := range pools {
		if !strings.ContainsAny(s, pool) {
			return false
		}
	}
	return true
}

// ValidatePassword accepts an empty password (no protection) or a printable
// ASCII string of MinPasswordLength to MaxPasswordLength characters. ASCII
// keeps the character count equal to the byte count the key is built from.
func ValidatePassword(password string) error {
	if password == "" {
		return nil
	}
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return ErrPasswordLength
	}
	for i := 0; i < len(password); i++ {
		if password[i] < 0x20 || password[i] > 0x7e {
			return ErrPasswordCharset
		}
	}
	return nil
}

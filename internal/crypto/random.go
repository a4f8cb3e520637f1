// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// keyAlphabet is the lowercase base32 alphabet. 256 is a multiple of 32, so a
// byte masked to five bits maps onto it without bias.
const keyAlphabet = "abcdefghijklmnopqrstuvwxyz234567"

// GenerateKey returns length random characters of the lowercase base32
// alphabet, five bits of entropy each.
func GenerateKey(length int) (string, error) {
	return randomKeyString(rand.Reader, length)
}

// randomKeyString returns n characters of keyAlphabet read from src.
func randomKeyString(src io.Reader, n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	for i, b := range buf {
		buf[i] = keyAlphabet[b&31]
	}
	return string(buf), nil
}

// randomFromAlphabet returns n characters of alphabet read from src. Bytes that
// would bias the result are rejected and re-read.
func randomFromAlphabet(src io.Reader, alphabet string, n int) (string, error) {
	size := len(alphabet)
	limit := 256 - 256%size

	out := make([]byte, 0, n)
	one := make([]byte, 1)
	for len(out) < n {
		if _, err := io.ReadFull(src, one); err != nil {
			return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}
		if int(one[0]) >= limit {
			continue
		}
		out = append(out, alphabet[int(one[0])%size])
	}
	return string(out), nil
}

func readRandom(src io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return buf, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAttemptIDCtxKey(t *testing.T) {
	if AttemptIDCtxKey.String() != "attemptID" {
		t.Errorf("expected 'attemptID', got '%s'", AttemptIDCtxKey.String())
	}
}

func TestGetAttemptIDFromContext_Success(t *testing.T) {
	ctx := WithAttemptID(context.Background(), "0190a8f2-attempt")

	attemptID, ok := GetAttemptIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if attemptID != "0190a8f2-attempt" {
		t.Errorf("expected attempt id, got %q", attemptID)
	}
}

func TestGetAttemptIDFromContext_Missing(t *testing.T) {
	attemptID, ok := GetAttemptIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing key")
	}
	if attemptID != "" {
		t.Errorf("expected empty attempt id, got %q", attemptID)
	}
}

func TestGetAttemptIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AttemptIDCtxKey, 42)

	if _, ok := GetAttemptIDFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}
}

func TestGetAttemptIDFromContext_Empty(t *testing.T) {
	ctx := WithAttemptID(context.Background(), "")

	if _, ok := GetAttemptIDFromContext(ctx); ok {
		t.Error("expected ok=false for empty attempt id")
	}
}

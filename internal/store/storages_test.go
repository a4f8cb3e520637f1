package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-share/internal/config"
	"github.com/MKhiriev/go-secret-share/internal/logger"
)

// TestClientStorages_SQLiteLifecycle exercises the real driver and the
// migrations end to end.
func TestClientStorages_SQLiteLifecycle(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "ledger.db")

	s, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	repo := s.LedgerRepository
	live := sampleEntry()
	expired := sampleEntry()
	expired.SecretID = "old"
	expired.ExpiresAt = live.CreatedAt.Add(-time.Minute)

	require.NoError(t, repo.Save(ctx, live))
	require.NoError(t, repo.Save(ctx, expired))

	now := live.CreatedAt.Add(time.Second)
	active, err := repo.List(ctx, LedgerFilter{ActiveAt: now})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, live.SecretID, active[0].SecretID)

	require.NoError(t, repo.MarkBurned(ctx, live.SecretID, now))
	got, err := repo.Get(ctx, live.SecretID)
	require.NoError(t, err)
	require.NotNil(t, got.BurnedAt)

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrLedgerEntryNotFound)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}

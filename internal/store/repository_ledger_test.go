package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/models"
)

func newTestLedgerRepo(t *testing.T) (*ledgerRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &ledgerRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock
}

func sampleEntry() models.LedgerEntry {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.LedgerEntry{
		SecretID:    "abc123",
		Origin:      "https://share.example.com",
		TTL:         3600,
		MaxViews:    1,
		PreventBurn: false,
		HasPassword: true,
		CreatedAt:   created,
		ExpiresAt:   created.Add(time.Hour),
	}
}

func ledgerRows() *sqlmock.Rows {
	return sqlmock.NewRows(ledgerColumns)
}

func TestLedgerSave_Success(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	e := sampleEntry()

	mock.ExpectExec("INSERT OR REPLACE INTO secret_ledger").
		WithArgs(e.SecretID, e.Origin, e.TTL, e.MaxViews, e.PreventBurn, e.HasPassword,
			e.CreatedAt.Unix(), e.ExpiresAt.Unix(), nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), e))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerSave_NoRowsAffected(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectExec("INSERT OR REPLACE INTO secret_ledger").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), sampleEntry())
	assert.ErrorIs(t, err, ErrLedgerEntryNotSaved)
}

func TestLedgerSave_DBError(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectExec("INSERT OR REPLACE INTO secret_ledger").
		WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), sampleEntry())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestLedgerGet_Success(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	e := sampleEntry()
	burned := e.CreatedAt.Add(10 * time.Minute)

	mock.ExpectQuery("SELECT (.+) FROM secret_ledger WHERE secret_id = ?").
		WithArgs("abc123").
		WillReturnRows(ledgerRows().AddRow(
			e.SecretID, e.Origin, e.TTL, e.MaxViews, e.PreventBurn, e.HasPassword,
			e.CreatedAt.Unix(), e.ExpiresAt.Unix(), burned.Unix(),
		))

	got, err := repo.Get(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, e.SecretID, got.SecretID)
	assert.Equal(t, e.Origin, got.Origin)
	assert.True(t, got.HasPassword)
	assert.True(t, e.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, e.ExpiresAt.Equal(got.ExpiresAt))
	require.NotNil(t, got.BurnedAt)
	assert.True(t, burned.Equal(*got.BurnedAt))
}

func TestLedgerGet_NotFound(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM secret_ledger").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrLedgerEntryNotFound)
}

func TestLedgerList_ActiveFilter(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	e := sampleEntry()
	now := e.CreatedAt.Add(time.Minute)

	mock.ExpectQuery("SELECT (.+) FROM secret_ledger WHERE \\(burned_at IS NULL AND expires_at > \\?\\) ORDER BY created_at DESC, secret_id LIMIT 10").
		WithArgs(now.Unix()).
		WillReturnRows(ledgerRows().
			AddRow(e.SecretID, e.Origin, e.TTL, e.MaxViews, e.PreventBurn, e.HasPassword, e.CreatedAt.Unix(), e.ExpiresAt.Unix(), nil).
			AddRow("def456", e.Origin, int64(300), 3, true, false, e.CreatedAt.Unix(), e.CreatedAt.Add(5*time.Minute).Unix(), nil))

	got, err := repo.List(context.Background(), LedgerFilter{ActiveAt: now, Limit: 10})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "abc123", got[0].SecretID)
	assert.Nil(t, got[0].BurnedAt)
	assert.Equal(t, "def456", got[1].SecretID)
	assert.True(t, got[1].PreventBurn)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerList_Empty(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM secret_ledger ORDER BY").
		WillReturnRows(ledgerRows())

	got, err := repo.List(context.Background(), LedgerFilter{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLedgerList_ScanError(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM secret_ledger").
		WillReturnRows(ledgerRows().AddRow("x", "o", "not-a-number", 1, false, false, 0, 0, nil))

	_, err := repo.List(context.Background(), LedgerFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestLedgerMarkBurned(t *testing.T) {
	at := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)
		mock.ExpectExec("UPDATE secret_ledger SET burned_at = \\? WHERE secret_id = \\?").
			WithArgs(at.Unix(), "abc123").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkBurned(context.Background(), "abc123", at))
	})

	t.Run("unknown id", func(t *testing.T) {
		repo, mock := newTestLedgerRepo(t)
		mock.ExpectExec("UPDATE secret_ledger").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkBurned(context.Background(), "nope", at)
		assert.ErrorIs(t, err, ErrLedgerEntryNotFound)
	})
}

func TestLedgerDeleteExpired(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM secret_ledger WHERE expires_at <= \\?").
		WithArgs(now.Unix()).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteExpired(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestLedgerDeleteExpired_DBError(t *testing.T) {
	repo, mock := newTestLedgerRepo(t)

	mock.ExpectExec("DELETE FROM secret_ledger").
		WillReturnError(errors.New("locked"))

	_, err := repo.DeleteExpired(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-share/internal/logger"
	"github.com/MKhiriev/go-secret-share/models"
)

type ledgerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLedgerRepository returns the SQLite [LedgerRepository].
func NewLedgerRepository(db *DB, logger *logger.Logger) LedgerRepository {
	return &ledgerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ledgerRepository) Save(ctx context.Context, entry models.LedgerEntry) error {
	query, args, err := buildSaveLedgerEntryQuery(entry)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "ledgerRepository.Save").
			Str("secret_id", entry.SecretID).
			Msg("failed to insert ledger entry")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrLedgerEntryNotSaved
	}

	return nil
}

func (r *ledgerRepository) Get(ctx context.Context, secretID string) (models.LedgerEntry, error) {
	query, args, err := buildGetLedgerEntryQuery(secretID)
	if err != nil {
		return models.LedgerEntry{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	entry, err := scanLedgerEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.LedgerEntry{}, ErrLedgerEntryNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "ledgerRepository.Get").
			Str("secret_id", secretID).
			Msg("failed to query ledger entry")
		return models.LedgerEntry{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *ledgerRepository) List(ctx context.Context, filter LedgerFilter) ([]models.LedgerEntry, error) {
	query, args, err := buildListLedgerQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "ledgerRepository.List").
			Msg("failed to query ledger")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0)
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *ledgerRepository) MarkBurned(ctx context.Context, secretID string, burnedAt time.Time) error {
	query, args, err := buildMarkBurnedQuery(secretID, burnedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "ledgerRepository.MarkBurned").
			Str("secret_id", secretID).
			Msg("failed to mark ledger entry burned")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrLedgerEntryNotFound
	}

	return nil
}

func (r *ledgerRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "ledgerRepository.DeleteExpired").
			Msg("failed to delete expired ledger entries")
		return 0, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLedgerEntry(row rowScanner) (models.LedgerEntry, error) {
	var (
		entry                models.LedgerEntry
		createdAt, expiresAt int64
		burnedAt             sql.NullInt64
	)

	err := row.Scan(
		&entry.SecretID,
		&entry.Origin,
		&entry.TTL,
		&entry.MaxViews,
		&entry.PreventBurn,
		&entry.HasPassword,
		&createdAt,
		&expiresAt,
		&burnedAt,
	)
	if err != nil {
		return models.LedgerEntry{}, err
	}

	entry.CreatedAt = time.Unix(createdAt, 0).UTC()
	entry.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	if burnedAt.Valid {
		t := time.Unix(burnedAt.Int64, 0).UTC()
		entry.BurnedAt = &t
	}

	return entry, nil
}

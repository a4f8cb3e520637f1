package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secret-share/models"
)

const ledgerTable = "secret_ledger"

var ledgerColumns = []string{
	"secret_id",
	"origin",
	"ttl",
	"max_views",
	"prevent_burn",
	"has_password",
	"created_at",
	"expires_at",
	"burned_at",
}

// qb builds statements with SQLite "?" placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveLedgerEntryQuery(e models.LedgerEntry) (string, []any, error) {
	return qb.
		Insert(ledgerTable).
		Columns(ledgerColumns...).
		Values(
			e.SecretID,
			e.Origin,
			e.TTL,
			e.MaxViews,
			e.PreventBurn,
			e.HasPassword,
			e.CreatedAt.Unix(),
			e.ExpiresAt.Unix(),
			unixOrNil(e.BurnedAt),
		).
		Options("OR REPLACE").
		ToSql()
}

func buildGetLedgerEntryQuery(secretID string) (string, []any, error) {
	return qb.
		Select(ledgerColumns...).
		From(ledgerTable).
		Where(sq.Eq{"secret_id": secretID}).
		ToSql()
}

func buildListLedgerQuery(f LedgerFilter) (string, []any, error) {
	q := qb.
		Select(ledgerColumns...).
		From(ledgerTable).
		OrderBy("created_at DESC", "secret_id")

	if !f.ActiveAt.IsZero() {
		q = q.Where(sq.And{
			sq.Eq{"burned_at": nil},
			sq.Gt{"expires_at": f.ActiveAt.Unix()},
		})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	return q.ToSql()
}

func buildMarkBurnedQuery(secretID string, burnedAt time.Time) (string, []any, error) {
	return qb.
		Update(ledgerTable).
		Set("burned_at", burnedAt.Unix()).
		Where(sq.Eq{"secret_id": secretID}).
		ToSql()
}

func buildDeleteExpiredQuery(now time.Time) (string, []any, error) {
	return qb.
		Delete(ledgerTable).
		Where(sq.LtOrEq{"expires_at": now.Unix()}).
		ToSql()
}

func unixOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_buildSaveLedgerEntryQuery(t *testing.T) {
	e := sampleEntry()
	burned := e.CreatedAt.Add(time.Minute)
	e.BurnedAt = &burned

	query, args, err := buildSaveLedgerEntryQuery(e)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(query, "INSERT OR REPLACE INTO secret_ledger"))
	require.NotContains(t, query, "$1", "sqlite uses ? placeholders")
	require.Equal(t, len(ledgerColumns), strings.Count(query, "?"))

	require.Len(t, args, len(ledgerColumns))
	require.Equal(t, "abc123", args[0])
	require.Equal(t, burned.Unix(), args[8])
}

func Test_buildListLedgerQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     LedgerFilter
		wantParts  []string
		absent     []string
		wantArgLen int
	}{
		{
			name:      "no filter",
			filter:    LedgerFilter{},
			wantParts: []string{"FROM secret_ledger", "ORDER BY created_at DESC"},
			absent:    []string{"WHERE", "LIMIT"},
		},
		{
			name:       "active only",
			filter:     LedgerFilter{ActiveAt: time.Unix(100, 0)},
			wantParts:  []string{"burned_at IS NULL", "expires_at > ?"},
			absent:     []string{"LIMIT"},
			wantArgLen: 1,
		},
		{
			name:      "limit",
			filter:    LedgerFilter{Limit: 5},
			wantParts: []string{"LIMIT 5"},
			absent:    []string{"WHERE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListLedgerQuery(tt.filter)
			require.NoError(t, err)
			for _, p := range tt.wantParts {
				require.Contains(t, query, p)
			}
			for _, p := range tt.absent {
				require.NotContains(t, query, p)
			}
			require.Len(t, args, tt.wantArgLen)
		})
	}
}

func Test_buildDeleteExpiredQuery(t *testing.T) {
	now := time.Unix(1_800_000_000, 0)

	query, args, err := buildDeleteExpiredQuery(now)
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM secret_ledger WHERE expires_at <= ?", query)
	require.Equal(t, []any{now.Unix()}, args)
}

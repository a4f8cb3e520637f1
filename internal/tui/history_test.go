package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-share/internal/mock"
	"github.com/MKhiriev/go-secret-share/models"
)

var historyNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func historyEntries() []models.LedgerEntry {
	burnedAt := historyNow.Add(-time.Hour)
	return []models.LedgerEntry{
		{SecretID: "active-1", TTL: 3600, CreatedAt: historyNow.Add(-time.Minute), ExpiresAt: historyNow.Add(time.Hour)},
		{SecretID: "burned-1", TTL: 3600, CreatedAt: historyNow.Add(-2 * time.Hour), ExpiresAt: historyNow.Add(time.Hour), BurnedAt: &burnedAt},
	}
}

func newTestHistoryModel(t *testing.T) (HistoryModel, *mock.MockHistoryService, *mock.MockBurnService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryService(ctrl)
	burns := mock.NewMockBurnService(ctrl)

	m := NewHistoryModel(context.Background(), history, burns)
	m.now = func() time.Time { return historyNow }
	return m, history, burns
}

func sendHistory(t *testing.T, m HistoryModel, msg tea.Msg) (HistoryModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	hm, ok := next.(HistoryModel)
	require.True(t, ok)
	return hm, cmd
}

func TestHistoryModel_Load(t *testing.T) {
	m, history, _ := newTestHistoryModel(t)
	history.EXPECT().List(gomock.Any(), false, uint64(historyLimit)).Return(historyEntries(), nil)

	m, _ = sendHistory(t, m, m.Init()())
	require.Len(t, m.entries, 2)

	view := m.View()
	assert.Contains(t, view, "active-1")
	assert.Contains(t, view, "burned")
}

func TestHistoryModel_ActiveOnlyToggle(t *testing.T) {
	m, history, _ := newTestHistoryModel(t)
	history.EXPECT().List(gomock.Any(), true, uint64(historyLimit)).Return(historyEntries()[:1], nil)

	m, cmd := sendHistory(t, m, keyRunes("a"))
	assert.True(t, m.activeOnly)
	m, _ = sendHistory(t, m, cmd())

	assert.Len(t, m.entries, 1)
	assert.Contains(t, m.View(), "HISTORY (active)")
}

func TestHistoryModel_BurnSelected(t *testing.T) {
	m, history, burns := newTestHistoryModel(t)
	m.entries = historyEntries()

	burns.EXPECT().Burn(gomock.Any(), "active-1").Return(nil)
	history.EXPECT().List(gomock.Any(), false, uint64(historyLimit)).Return(historyEntries(), nil)

	m, _ = sendHistory(t, m, keyRunes("b"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "active-1")

	m, cmd := sendHistory(t, m, keyRunes("y"))
	assert.Nil(t, m.confirm)
	m, cmd = sendHistory(t, m, cmd())
	m, _ = sendHistory(t, m, cmd())
	assert.False(t, m.loading)
}

func TestHistoryModel_BurnIgnoresInactive(t *testing.T) {
	m, _, _ := newTestHistoryModel(t)
	m.entries = historyEntries()

	m, _ = sendHistory(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendHistory(t, m, keyRunes("b"))
	assert.Nil(t, m.confirm)
}

func TestHistoryModel_BurnErrorOverlay(t *testing.T) {
	m, _, burns := newTestHistoryModel(t)
	m.entries = historyEntries()
	burns.EXPECT().Burn(gomock.Any(), "active-1").Return(errors.New("dial tcp 127.0.0.1:8080: connection refused"))

	m, _ = sendHistory(t, m, keyRunes("b"))
	m, cmd := sendHistory(t, m, keyRunes("y"))
	m, _ = sendHistory(t, m, cmd())

	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "No network or the server is unavailable")

	m, _ = sendHistory(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.overlay)
}

func TestHistoryModel_Back(t *testing.T) {
	m, _, _ := newTestHistoryModel(t)
	_, cmd := sendHistory(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageCreate}, cmd())
}

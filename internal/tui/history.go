package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secret-share/internal/service"
	"github.com/MKhiriev/go-secret-share/internal/ui"
	"github.com/MKhiriev/go-secret-share/models"
)

const historyLimit = 200

// HistoryModel lists secrets created from this machine and burns them.
type HistoryModel struct {
	ctx     context.Context
	history service.HistoryService
	burns   service.BurnService
	now     func() time.Time

	entries    []models.LedgerEntry
	cursor     int
	activeOnly bool
	loading    bool

	confirm *confirmModel
	overlay *errorOverlayModel
}

func NewHistoryModel(ctx context.Context, history service.HistoryService, burns service.BurnService) HistoryModel {
	return HistoryModel{
		ctx:     ctx,
		history: history,
		burns:   burns,
		now:     time.Now,
	}
}

func (m HistoryModel) Init() tea.Cmd {
	return m.load()
}

func (m HistoryModel) load() tea.Cmd {
	ctx, history, activeOnly := m.ctx, m.history, m.activeOnly
	return func() tea.Msg {
		entries, err := history.List(ctx, activeOnly, historyLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeServerUnavailable(msg.err.Error())}
			return m, nil
		}
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = max(len(m.entries)-1, 0)
		}
		return m, nil

	case historyBurnedMsg:
		if msg.err != nil {
			m.loading = false
			m.overlay = &errorOverlayModel{message: burnErrorText(msg.err)}
			return m, nil
		}
		return m, m.load()

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m HistoryModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			return m, m.burnSelected()
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.activeOnly):
		m.activeOnly = !m.activeOnly
		m.cursor = 0
		m.loading = true
		return m, m.load()
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.load()
	case key.Matches(msg, keys.burn):
		if e, ok := m.selected(); ok && e.Active(m.now()) {
			m.confirm = &confirmModel{message: e.SecretID}
		}
	case key.Matches(msg, keys.esc):
		return m, navigate(pageCreate)
	}
	return m, nil
}

func (m HistoryModel) selected() (models.LedgerEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return models.LedgerEntry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *HistoryModel) burnSelected() tea.Cmd {
	e, ok := m.selected()
	if !ok {
		return nil
	}
	m.loading = true
	ctx, burns, id := m.ctx, m.burns, e.SecretID
	return func() tea.Msg {
		return historyBurnedMsg{secretID: id, err: burns.Burn(ctx, id)}
	}
}

func (m HistoryModel) View() string {
	title := "HISTORY"
	if m.activeOnly {
		title = "HISTORY (active)"
	}
	hotKeys := "↑/↓: select │ b: burn │ a: active only │ r: reload │ esc: back"

	if m.overlay != nil {
		return renderPage(title, m.overlay.View(), "esc: close")
	}
	if m.confirm != nil {
		return renderPage(title, m.confirm.View(), "")
	}

	var b strings.Builder
	if m.loading {
		b.WriteString(helpStyle.Render("Loading..."))
		b.WriteString("\n")
	}
	if len(m.entries) == 0 {
		b.WriteString("No secrets yet")
		return renderPage(title, b.String(), hotKeys)
	}

	now := m.now()
	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = focusStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%-22s %-8s %s  %s\n",
			cursor,
			fitText(e.SecretID, 22),
			ui.EntryStatus(e, now),
			e.CreatedAt.Local().Format(time.DateTime),
			models.TTLLabel(e.TTL),
		)
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func burnErrorText(err error) string {
	if banner := service.NewFeedback(err).Banner; banner != "" {
		return humanizeServerUnavailable(banner)
	}
	return humanizeServerUnavailable(err.Error())
}

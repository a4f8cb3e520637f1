package tui

import "github.com/MKhiriev/go-secret-share/models"

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type passwordGeneratedMsg struct {
	password string
	err      error
}

type historyLoadedMsg struct {
	entries []models.LedgerEntry
	err     error
}

type historyBurnedMsg struct {
	secretID string
	err      error
}

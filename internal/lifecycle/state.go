// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lifecycle drives one secret from the form to a share link and on
// to its burn. Reduce is a pure transition function over State; Runner
// performs the side effects and reports their outcome as events.
//
//	Idle --SubmitRequested--> Submitting --SubmitSucceeded--> Revealed
//	  ^                          |                               |
//	  +------SubmitFailed--------+                         BurnRequested
//	  |                                                          v
//	  +<------------------BurnCompleted------------------------ Burned
//	  +<------------------CreateNewRequested (any phase)
package lifecycle

import (
	"github.com/MKhiriev/go-secret-share/internal/service"
	"github.com/MKhiriev/go-secret-share/models"
)

// Phase is the coarse position in the lifecycle.
type Phase int

const (
	Idle Phase = iota
	Submitting
	Revealed
	Burned
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Revealed:
		return "revealed"
	case Burned:
		return "burned"
	default:
		return "unknown"
	}
}

// State is everything a front end renders. It is a value; Reduce never
// mutates its input.
type State struct {
	Phase Phase

	Form            models.SecretForm
	PasswordEnabled bool

	// Authenticated selects the lifetimes offered by TTLOptions. It survives
	// resets.
	Authenticated bool

	// AttemptID is the attempt whose result is awaited in Submitting. Results
	// of any other attempt are stale.
	AttemptID string

	// Submission is set in Revealed and Burned.
	Submission models.Submission

	Feedback service.Feedback
}

// NewState returns a fresh Idle state with default policy and the password
// disabled.
func NewState(authenticated bool) State {
	return State{
		Phase:         Idle,
		Form:          models.NewSecretForm(),
		Authenticated: authenticated,
	}
}

// TTLOptions lists the lifetimes the form may offer.
func (s State) TTLOptions() []models.TTLOption {
	return models.TTLOptions(s.Authenticated)
}

// SecretID is the id of the revealed secret, or empty.
func (s State) SecretID() string {
	return s.Submission.SecretID
}

// ShareLinks composes the display links of the revealed secret.
func (s State) ShareLinks(origin string) (service.ShareLinks, error) {
	return service.ComposeLinks(origin, s.Submission.SecretID, s.Submission.KeyMaterial)
}

func (s State) reset() State {
	return NewState(s.Authenticated)
}

package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-share/internal/adapter"
	"github.com/MKhiriev/go-secret-share/internal/app"
	"github.com/MKhiriev/go-secret-share/internal/service"
	"github.com/MKhiriev/go-secret-share/models"
)

func editedState() State {
	s := NewState(false)
	f := s.Form
	f.Text = "secret"
	return Reduce(s, FormEdited{Form: f})
}

func revealedState() State {
	s := Reduce(editedState(), SubmitRequested{AttemptID: "a1"})
	return Reduce(s, SubmitSucceeded{AttemptID: "a1", Submission: models.Submission{AttemptID: "a1", SecretID: "sid", KeyMaterial: "km"}})
}

func TestNewState(t *testing.T) {
	s := NewState(false)
	assert.Equal(t, Idle, s.Phase)
	assert.Equal(t, models.DefaultTTL, s.Form.Policy.TTL)
	assert.Equal(t, 1, s.Form.Policy.MaxViews)
	assert.False(t, s.PasswordEnabled)
	assert.Len(t, s.TTLOptions(), 8)
	assert.Len(t, NewState(true).TTLOptions(), 10)
}

func TestReduce_FormEdited(t *testing.T) {
	s := editedState()
	assert.Equal(t, "secret", s.Form.Text)

	f := s.Form
	f.Password = "typed-but-disabled"
	s = Reduce(s, FormEdited{Form: f})
	assert.Empty(t, s.Form.Password, "password stays empty while disabled")

	sub := Reduce(s, SubmitRequested{AttemptID: "a1"})
	f.Text = "changed"
	assert.Equal(t, sub, Reduce(sub, FormEdited{Form: f}), "edits are ignored outside idle")
}

func TestReduce_PasswordToggle(t *testing.T) {
	s := Reduce(editedState(), PasswordToggled{Enabled: true, Generated: "Gen3rated-Passw0rd"})
	assert.True(t, s.PasswordEnabled)
	assert.Equal(t, "Gen3rated-Passw0rd", s.Form.Password)

	f := s.Form
	f.Password = "user-choice"
	s = Reduce(s, FormEdited{Form: f})
	assert.Equal(t, "user-choice", s.Form.Password)

	s = Reduce(s, PasswordToggled{Enabled: false})
	assert.False(t, s.PasswordEnabled)
	assert.Empty(t, s.Form.Password)
}

func TestReduce_SubmitFlow(t *testing.T) {
	s := Reduce(editedState(), SubmitRequested{AttemptID: "a1"})
	require.Equal(t, Submitting, s.Phase)
	assert.Equal(t, "a1", s.AttemptID)

	again := Reduce(s, SubmitRequested{AttemptID: "a2"})
	assert.Equal(t, s, again, "second submit while submitting is ignored")

	s = Reduce(s, SubmitSucceeded{AttemptID: "a1", Submission: models.Submission{SecretID: "sid", KeyMaterial: "km"}})
	assert.Equal(t, Revealed, s.Phase)
	assert.Equal(t, "sid", s.SecretID())
	assert.Empty(t, s.AttemptID)

	links, err := s.ShareLinks("https://s.example")
	require.NoError(t, err)
	assert.Equal(t, "https://s.example/secret/sid#encryption_key=km", links.WithKey)
}

func TestReduce_SubmitFailedKeepsForm(t *testing.T) {
	s := Reduce(editedState(), SubmitRequested{AttemptID: "a1"})
	s = Reduce(s, SubmitFailed{AttemptID: "a1", Err: &service.SubmissionRejectedError{StatusCode: 403, Message: "Forbidden"}})

	assert.Equal(t, Idle, s.Phase)
	assert.Equal(t, "secret", s.Form.Text)
	assert.Equal(t, "Forbidden", s.Feedback.Banner)

	s = Reduce(s, SubmitRequested{AttemptID: "a2"})
	assert.True(t, s.Feedback.Empty(), "feedback cleared on retry")
}

func TestReduce_StaleResultsAreDiscarded(t *testing.T) {
	s := Reduce(editedState(), SubmitRequested{AttemptID: "a2"})

	assert.Equal(t, s, Reduce(s, SubmitSucceeded{AttemptID: "a1", Submission: models.Submission{SecretID: "old"}}))
	assert.Equal(t, s, Reduce(s, SubmitFailed{AttemptID: "a1", Err: errors.New("old")}))

	idle := editedState()
	assert.Equal(t, idle, Reduce(idle, SubmitSucceeded{AttemptID: "", Submission: models.Submission{SecretID: "x"}}))

	reset := Reduce(s, CreateNewRequested{})
	assert.Equal(t, reset, Reduce(reset, SubmitSucceeded{AttemptID: "a2", Submission: models.Submission{SecretID: "late"}}),
		"result of an attempt abandoned by reset is discarded")
}

func TestReduce_SubmitRequiresAttemptID(t *testing.T) {
	s := editedState()
	assert.Equal(t, s, Reduce(s, SubmitRequested{}))
}

func TestReduce_CreateNew(t *testing.T) {
	s := Reduce(revealedState(), PasswordToggled{Enabled: true, Generated: "x"})
	s.Authenticated = true
	s = Reduce(s, CreateNewRequested{})

	assert.Equal(t, NewState(true), s)
}

func TestReduce_Burn(t *testing.T) {
	s := Reduce(revealedState(), BurnRequested{})
	require.Equal(t, Burned, s.Phase)
	assert.Equal(t, "sid", s.SecretID())

	s = Reduce(s, BurnCompleted{})
	assert.Equal(t, NewState(false), s)
}

func TestReduce_BurnErrorDoesNotBlockReset(t *testing.T) {
	s := Reduce(revealedState(), BurnRequested{})
	s = Reduce(s, BurnCompleted{Err: adapter.ErrNotFound})

	assert.Equal(t, Idle, s.Phase)
	assert.Empty(t, s.SecretID())
	assert.Equal(t, app.MsgSecretNotFound, s.Feedback.Banner)
}

func TestReduce_BurnWithoutSecretIsNoop(t *testing.T) {
	s := editedState()
	assert.Equal(t, s, Reduce(s, BurnRequested{}))
	assert.Equal(t, s, Reduce(s, BurnCompleted{}))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "revealed", Revealed.String())
	assert.Equal(t, "burned", Burned.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

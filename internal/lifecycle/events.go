package lifecycle

import "github.com/MKhiriev/go-secret-share/models"

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// FormEdited replaces the form contents. Ignored outside Idle.
type FormEdited struct {
	Form models.SecretForm
}

// PasswordToggled enables password protection with an already generated
// password, or disables it and clears the password.
type PasswordToggled struct {
	Enabled   bool
	Generated string
}

// SubmitRequested starts attempt AttemptID. Only honoured in Idle.
type SubmitRequested struct {
	AttemptID string
}

// SubmitSucceeded completes an attempt.
type SubmitSucceeded struct {
	AttemptID  string
	Submission models.Submission
}

// SubmitFailed completes an attempt with an error.
type SubmitFailed struct {
	AttemptID string
	Err       error
}

// CreateNewRequested discards everything and starts over.
type CreateNewRequested struct{}

// BurnRequested asks to destroy the revealed secret.
type BurnRequested struct{}

// BurnCompleted reports the outcome of the burn call. Err is shown but does
// not prevent the reset.
type BurnCompleted struct {
	Err error
}

func (FormEdited) isEvent()         {}
func (PasswordToggled) isEvent()    {}
func (SubmitRequested) isEvent()    {}
func (SubmitSucceeded) isEvent()    {}
func (SubmitFailed) isEvent()       {}
func (CreateNewRequested) isEvent() {}
func (BurnRequested) isEvent()      {}
func (BurnCompleted) isEvent()      {}

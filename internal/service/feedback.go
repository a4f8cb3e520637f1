package service

import (
	"errors"

	"github.com/MKhiriev/go-secret-share/internal/adapter"
	"github.com/MKhiriev/go-secret-share/internal/app"
	"github.com/MKhiriev/go-secret-share/internal/crypto"
)

// Feedback is what a front end shows for a failed operation: messages keyed
// by form field, and an optional page-level banner.
type Feedback struct {
	FieldErrors map[string]string
	Banner      string
}

// Empty reports whether there is nothing to show.
func (f Feedback) Empty() bool {
	return len(f.FieldErrors) == 0 && f.Banner == ""
}

// NewFeedback converts any error returned by this package into Feedback.
// A nil error yields empty Feedback.
func NewFeedback(err error) Feedback {
	if err == nil {
		return Feedback{}
	}

	var (
		validationErr *ValidationError
		rejectedErr   *SubmissionRejectedError
		failedErr     *SubmissionFailedError
	)

	switch {
	case errors.As(err, &validationErr):
		return fieldFeedback(validationErr.Field, validationErr.Message)
	case errors.As(err, &rejectedErr):
		return Feedback{Banner: rejectedErr.Message}
	case errors.As(err, &failedErr):
		msg := failedErr.Message
		if msg == "" {
			msg = app.MsgSubmissionFailed
		}
		return fieldFeedback(failedErr.Field, msg)
	case errors.Is(err, crypto.ErrEntropyUnavailable):
		return Feedback{Banner: app.MsgEntropyUnavailable}
	case errors.Is(err, ErrInvalidState):
		return Feedback{Banner: app.MsgInternalError}
	case errors.Is(err, adapter.ErrNotFound):
		return Feedback{Banner: app.MsgSecretNotFound}
	default:
		return Feedback{Banner: err.Error()}
	}
}

func fieldFeedback(field, msg string) Feedback {
	return Feedback{FieldErrors: map[string]string{field: msg}}
}

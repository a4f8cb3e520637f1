// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// ErrInvalidState marks programmer errors such as composing a share link
// before a secret exists. Normal flows never reach it.
var ErrInvalidState = errors.New("invalid state")

// ValidationError is a recoverable input problem tied to one form field.
type ValidationError struct {
	Field   string
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SubmissionRejectedError is a 403 answer. Message is the server's text,
// shown verbatim in the page banner.
type SubmissionRejectedError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionRejectedError) Error() string {
	return fmt.Sprintf("submission rejected (%d): %s", e.StatusCode, e.Message)
}

// SubmissionFailedError is any other failed submission, including transport
// failures (StatusCode 0). Message is shown next to Field.
type SubmissionFailedError struct {
	StatusCode int
	Field      string
	Message    string

	Err error
}

func (e *SubmissionFailedError) Error() string {
	if e.StatusCode == 0 {
		return "submission failed: " + e.Message
	}
	return fmt.Sprintf("submission failed (%d): %s", e.StatusCode, e.Message)
}

func (e *SubmissionFailedError) Unwrap() error {
	return e.Err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-secret-share service layer and front ends.
//
// All Msg* constants are human-readable strings shown next to a form field
// or in the page banner. Keeping them in one place keeps the CLI and the TUI
// worded the same way.
package app

const (
	// MsgTextRequired is shown when the secret text is empty.
	MsgTextRequired = "text required"

	// MsgFileTooLarge replaces whatever the server said when it refused the
	// payload because of its size, and is also used when the local archive
	// ceiling is exceeded.
	MsgFileTooLarge = "The file size is too large"

	// MsgMaxViewsTooLow is shown when the view budget is below one.
	MsgMaxViewsTooLow = "max views must be at least 1"

	// MsgTTLNotAllowed is shown when the lifetime is not part of the
	// catalogue offered to the current session.
	MsgTTLNotAllowed = "this lifetime is not available"

	// MsgInvalidAllowedIP is shown when the IP restriction is neither an IP
	// address nor a CIDR range.
	MsgInvalidAllowedIP = "must be a valid IP address or CIDR range"

	// MsgSubmissionFailed is the fallback for failures that carry no server
	// message.
	MsgSubmissionFailed = "could not create the secret, please try again"

	// MsgEntropyUnavailable is shown when the random source failed.
	MsgEntropyUnavailable = "secure random numbers are unavailable on this system"

	// MsgSecretNotFound is shown when a burn targets a secret the server no
	// longer knows.
	MsgSecretNotFound = "secret not found, it may already be gone"

	// MsgInternalError covers programmer errors that reached the user.
	MsgInternalError = "internal error"
)

// TooLargeMarker is matched case-insensitively against server error texts to
// recognise a rejected payload size.
const TooLargeMarker = "too large"

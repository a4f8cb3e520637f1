package archive

import "errors"

var (
	// ErrArchiveTooLarge is returned when the combined plaintext size of the
	// selected files exceeds the configured ceiling.
	ErrArchiveTooLarge = errors.New("archive too large")

	// ErrMalformedArchive is returned by Extract for bytes that are not a
	// readable zip archive.
	ErrMalformedArchive = errors.New("malformed archive")
)

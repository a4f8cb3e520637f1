// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package archive bundles the files attached to a secret into a single zip
// blob before it is sealed, and reads such a blob back on the recipient side.
package archive

import "github.com/MKhiriev/go-secret-share/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/archiver_mock.go -package=mock

// Archiver packs user files into one archive blob.
type Archiver interface {
	// Archive returns nil for an empty file list. Otherwise it returns a
	// single zip blob holding every file in input order under its base name.
	// Returns [ErrArchiveTooLarge] when the combined content size exceeds
	// the ceiling.
	Archive(files []models.FileInput) (*Blob, error)
}

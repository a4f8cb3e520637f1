// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/MKhiriev/go-secret-share/models"
)

// DefaultMaxBytes is the combined plaintext ceiling used when none is
// configured (10 MiB).
const DefaultMaxBytes int64 = 10 << 20

// modTime is stamped on every entry so the same input always yields the
// same bytes.
var modTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Blob is a finished archive.
type Blob struct {
	// Data is the zip file content.
	Data []byte

	// Names lists the entry names in archive order, after de-duplication.
	Names []string
}

type zipArchiver struct {
	maxBytes int64
}

// NewArchiver returns a zip [Archiver]. A non-positive maxBytes selects
// [DefaultMaxBytes].
func NewArchiver(maxBytes int64) Archiver {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &zipArchiver{maxBytes: maxBytes}
}

// Archive implements [Archiver].
func (a *zipArchiver) Archive(files []models.FileInput) (*Blob, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var total int64
	for _, f := range files {
		total += int64(len(f.Content))
	}
	if total > a.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrArchiveTooLarge, total, a.maxBytes)
	}

	var (
		buf   bytes.Buffer
		zw    = zip.NewWriter(&buf)
		names = newNameSet()
		blob  = &Blob{Names: make([]string, 0, len(files))}
	)

	for _, f := range files {
		name := names.claim(baseName(f.Name))

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modTime,
		})
		if err != nil {
			return nil, fmt.Errorf("add %q to archive: %w", name, err)
		}
		if _, err = w.Write(f.Content); err != nil {
			return nil, fmt.Errorf("write %q to archive: %w", name, err)
		}

		blob.Names = append(blob.Names, name)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	blob.Data = buf.Bytes()
	return blob, nil
}

// Extract reads every regular entry of a zip blob back into file inputs, in
// archive order.
func Extract(data []byte) ([]models.FileInput, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
	}

	files := make([]models.FileInput, 0, len(zr.File))
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}

		content, err := readEntry(zf)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedArchive, zf.Name, err)
		}
		files = append(files, models.FileInput{Name: zf.Name, Content: content})
	}

	return files, nil
}

func readEntry(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// baseName strips any directory part, accepting both slash styles.
func baseName(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}

// nameSet hands out unique entry names: a repeated "a.txt" becomes "a-1.txt",
// then "a-2.txt".
type nameSet map[string]struct{}

func newNameSet() nameSet {
	return nameSet{}
}

func (s nameSet) claim(name string) string {
	if _, taken := s[name]; !taken {
		s[name] = struct{}{}
		return name
	}

	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := stem + "-" + strconv.Itoa(i) + ext
		if _, taken := s[candidate]; !taken {
			s[candidate] = struct{}{}
			return candidate
		}
	}
}

// Package storage keeps lancamento attachments (scanned invoices) on local
// disk under a single upload directory, served statically at /uploads.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
)

// Uploads is the attachment store used by the lancamento service.
type Uploads interface {
	// Store writes src under a generated collision-resistant name and
	// returns that name.
	Store(originalName string, src io.Reader) (string, error)
	// Delete removes a stored file best-effort. Failures are logged and
	// swallowed: losing track of an orphan file must never block a record
	// mutation.
	Delete(name string)
}

// DiskUploads stores attachments in a directory on local disk.
type DiskUploads struct {
	dir string
	log zerolog.Logger
}

var _ Uploads = (*DiskUploads)(nil)

// NewDiskUploads creates the upload directory if needed.
func NewDiskUploads(dir string, log zerolog.Logger) (*DiskUploads, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskUploads{dir: dir, log: log}, nil
}

// Dir returns the directory attachments are stored in.
func (u *DiskUploads) Dir() string { return u.dir }

// Store writes the file as "<unix-millis>-<sanitized original name>". The
// timestamp prefix keeps names unique and unguessable enough for the public
// static route; no content-type or size validation is performed.
func (u *DiskUploads) Store(originalName string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(originalName))

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

// Delete removes a stored file. A missing file is not an error.
func (u *DiskUploads) Delete(name string) {
	if name == "" {
		return
	}
	path := filepath.Join(u.dir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		u.log.Warn().Err(err).Str("file", name).Msg("failed to delete attachment")
	}
}

// sanitizeName strips any path component and maps whitespace to underscores,
// mirroring how the legacy upload naming worked.
func sanitizeName(name string) string {
	base := filepath.Base(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, base)
}

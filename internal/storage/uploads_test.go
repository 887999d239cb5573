package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestUploads(t *testing.T) *DiskUploads {
	t.Helper()
	u, err := NewDiskUploads(t.TempDir(), zerolog.Nop())
	assert.NoError(t, err)
	return u
}

func TestStoreGeneratesTimestampedName(t *testing.T) {
	u := newTestUploads(t)

	name, err := u.Store("nota fiscal 42.pdf", strings.NewReader("conteudo"))
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+-nota_fiscal_42\.pdf$`), name)

	data, err := os.ReadFile(filepath.Join(u.Dir(), name))
	assert.NoError(t, err)
	assert.Equal(t, "conteudo", string(data))
}

func TestStoreStripsPathComponents(t *testing.T) {
	u := newTestUploads(t)

	name, err := u.Store("../../etc/passwd", strings.NewReader("x"))
	assert.NoError(t, err)
	assert.NotContains(t, name, "/")
	assert.Regexp(t, regexp.MustCompile(`^\d+-passwd$`), name)
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	u := newTestUploads(t)

	name, err := u.Store("nota.pdf", strings.NewReader("x"))
	assert.NoError(t, err)

	u.Delete(name)
	_, err = os.Stat(filepath.Join(u.Dir(), name))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteIsBestEffort(t *testing.T) {
	u := newTestUploads(t)

	// none of these may panic or surface an error
	u.Delete("")
	u.Delete("never-stored.pdf")
	u.Delete("../outside.pdf")
}

func TestNewDiskUploadsCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	u, err := NewDiskUploads(dir, zerolog.Nop())
	assert.NoError(t, err)

	info, err := os.Stat(u.Dir())
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

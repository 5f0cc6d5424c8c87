package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feiralivre/feirad/internal/assets"
	"github.com/feiralivre/feirad/internal/store"
)

// newTestRegistry wires a registry over a fresh database and photo dirs.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	base := t.TempDir()

	db, err := store.Open(filepath.Join(base, "registry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	placeholder := filepath.Join(base, "no-photo.png")
	require.NoError(t, os.WriteFile(placeholder, []byte("placeholder"), 0o644))

	vendorPhotos := assets.NewStore(filepath.Join(base, "vendor_photos"), placeholder)
	productPhotos := assets.NewStore(filepath.Join(base, "product_photos"), placeholder)
	require.NoError(t, vendorPhotos.EnsureDir())
	require.NoError(t, productPhotos.EnsureDir())

	return New(db, vendorPhotos, productPhotos)
}

// pngUpload builds a well-formed upload that passes the extension check.
func pngUpload(content string) *assets.Upload {
	return &assets.Upload{Filename: "photo.png", Reader: strings.NewReader(content)}
}

// photoCount counts files currently stored for a photo store.
func photoCount(t *testing.T, s *assets.Store) int {
	t.Helper()
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	return len(entries)
}

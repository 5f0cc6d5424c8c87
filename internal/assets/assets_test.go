package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a store over a fresh temp dir plus a placeholder file
// with known content.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	base := t.TempDir()
	placeholder := filepath.Join(base, "no-photo.png")
	require.NoError(t, os.WriteFile(placeholder, []byte("placeholder-bytes"), 0o644))

	s := NewStore(filepath.Join(base, "photos"), placeholder)
	require.NoError(t, s.EnsureDir())
	return s
}

func TestSave_AcceptedExtension(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save(&Upload{Filename: "me.png", Reader: strings.NewReader("img")})
	require.NoError(t, err)
	require.NotEmpty(t, name)

	assert.True(t, strings.HasSuffix(name, ".png"), "stored name %q should keep the extension", name)
	assert.NotEqual(t, "me.png", name, "stored name must be generated, not the client's")
	assert.True(t, s.Has(name))

	data, err := os.ReadFile(filepath.Join(s.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))
}

func TestSave_CaseInsensitiveExtension(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save(&Upload{Filename: "SHOUTY.JPEG", Reader: strings.NewReader("img")})
	require.NoError(t, err)
	require.NotEmpty(t, name)
	assert.True(t, strings.HasSuffix(name, ".jpeg"), "extension should be lowercased: %q", name)
}

func TestSave_RejectedSilently(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name     string
		filename string
	}{
		{"executable", "payload.exe"},
		{"no extension", "README"},
		{"trailing dot", "photo."},
		{"lookalike", "photo.png.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := s.Save(&Upload{Filename: tt.filename, Reader: strings.NewReader("x")})
			require.NoError(t, err, "rejection must be silent, not an error")
			assert.Empty(t, name)
		})
	}

	// Nothing may have been written for any rejected upload.
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads must not leave files behind")
}

func TestSave_AbsentUpload(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save(nil)
	require.NoError(t, err)
	assert.Empty(t, name)

	name, err = s.Save(&Upload{Filename: "me.png"})
	require.NoError(t, err)
	assert.Empty(t, name, "upload without content is treated as absent")
}

func TestSave_UniqueNames(t *testing.T) {
	s := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		name, err := s.Save(&Upload{Filename: "same.png", Reader: strings.NewReader("img")})
		require.NoError(t, err)
		require.False(t, seen[name], "name %q generated twice", name)
		seen[name] = true
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save(&Upload{Filename: "me.png", Reader: strings.NewReader("img")})
	require.NoError(t, err)

	require.NoError(t, s.Remove(name))
	assert.False(t, s.Has(name))
}

func TestRemove_NoOps(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.Remove(""), "empty sentinel is a no-op")
	assert.NoError(t, s.Remove("never-existed.png"), "missing file is a no-op")
}

func TestResolve(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save(&Upload{Filename: "me.png", Reader: strings.NewReader("img")})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(s.Dir(), name), s.Resolve(name))
}

func TestResolve_PlaceholderFallback(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"", "missing.png"} {
		path := s.Resolve(name)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "placeholder-bytes", string(data), "Resolve(%q) should fall back to the placeholder", name)
	}
}

func TestResolve_StripsPathComponents(t *testing.T) {
	s := newTestStore(t)

	// A name with traversal components must never escape the photo dir.
	path := s.Resolve("../no-photo.png")
	assert.Equal(t, s.placeholder, path)
}

func TestExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.png", "png"},
		{"a.b.JPG", "jpg"},
		{"noext", ""},
		{"", ""},
		{"trailing.", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extension(tt.filename), "extension(%q)", tt.filename)
	}
}

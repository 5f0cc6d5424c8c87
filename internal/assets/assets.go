// Package assets provides filesystem-backed storage for uploaded photos.
//
// Each entity kind (vendors, products) gets its own Store bound to its own
// directory; validation and naming rules are shared. Accepted uploads are
// renamed to a generated UUIDv7 plus the original extension, so stored names
// never collide and never leak the uploader's filename.
//
// Rejection is silent: an upload with a disallowed or missing extension
// yields the empty sentinel "" instead of an error, and the caller records
// "no photo". Reads never fail either - a missing or empty name resolves to
// the shared placeholder image.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions is the upload allow-list, matched case-insensitively.
var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"svg":  true,
	"webp": true,
}

// Upload is an uploaded file handle as extracted from a request: the
// client-supplied filename (only its extension matters) and the content.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// Store holds photos for one entity kind in a single directory.
type Store struct {
	dir         string
	placeholder string
}

// NewStore creates a photo store rooted at dir. placeholder is the path of
// the image served when a requested photo is empty or missing.
func NewStore(dir, placeholder string) *Store {
	return &Store{dir: dir, placeholder: placeholder}
}

// Dir returns the store's directory.
func (s *Store) Dir() string {
	return s.dir
}

// EnsureDir creates the photo directory if it does not exist.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create photo dir: %w", err)
	}
	return nil
}

// Save stores an upload and returns the generated filename.
//
// Returns the empty sentinel "" (with no error) when the upload is absent or
// its extension is not on the allow-list. Filesystem failures are real
// errors and propagate.
func (s *Store) Save(u *Upload) (string, error) {
	if u == nil || u.Reader == nil {
		return "", nil
	}

	e := extension(u.Filename)
	if !allowedExtensions[e] {
		return "", nil
	}

	name := fmt.Sprintf("%s.%s", uuid.Must(uuid.NewV7()), e)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save photo: %w", err)
	}
	if _, err := io.Copy(f, u.Reader); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("save photo: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("save photo: %w", err)
	}

	return name, nil
}

// Remove deletes a stored photo. No-op when name is the empty sentinel or
// the file is already gone.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove photo: %w", err)
	}
	return nil
}

// Resolve returns the on-disk path for a stored photo, or the placeholder
// path when name is empty or the file does not exist. Never errors.
func (s *Store) Resolve(name string) string {
	if name == "" {
		return s.placeholder
	}
	path := filepath.Join(s.dir, filepath.Base(name))
	if _, err := os.Stat(path); err != nil {
		return s.placeholder
	}
	return path
}

// Has reports whether a photo with the given name is currently stored.
func (s *Store) Has(name string) bool {
	if name == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(name)))
	return err == nil
}

// extension returns the lowercased final extension of a filename, without
// the dot, or "" when the filename has no dot.
func extension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

package web

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feiralivre/feirad/internal/assets"
	"github.com/feiralivre/feirad/internal/registry"
	"github.com/feiralivre/feirad/internal/store"
)

// newTestServer wires a server over a fresh database and photo dirs.
func newTestServer(t *testing.T) (*Server, *registry.Registry) {
	t.Helper()

	base := t.TempDir()

	db, err := store.Open(filepath.Join(base, "registry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	placeholder := filepath.Join(base, "no-photo.png")
	require.NoError(t, os.WriteFile(placeholder, []byte("placeholder-bytes"), 0o644))

	vendorPhotos := assets.NewStore(filepath.Join(base, "vendor_photos"), placeholder)
	productPhotos := assets.NewStore(filepath.Join(base, "product_photos"), placeholder)
	require.NoError(t, vendorPhotos.EnsureDir())
	require.NoError(t, productPhotos.EnsureDir())

	reg := registry.New(db, vendorPhotos, productPhotos)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(reg, log), reg
}

// authenticate adds the seeded session cookie pair to a request.
func authenticate(r *http.Request) {
	r.AddCookie(&http.Cookie{Name: "login", Value: "ironman"})
	r.AddCookie(&http.Cookie{Name: "senha", Value: "ferro"})
}

// get performs an authenticated GET.
func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	authenticate(r)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

// postForm performs an authenticated urlencoded POST.
func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	authenticate(r)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

// postMultipart performs an authenticated multipart POST, optionally with a
// "foto" file part.
func postMultipart(t *testing.T, s *Server, path string, fields map[string]string, photoName, photoContent string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if photoName != "" {
		part, err := mw.CreateFormFile("foto", photoName)
		require.NoError(t, err)
		_, err = part.Write([]byte(photoContent))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, path, &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	authenticate(r)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

// del performs an authenticated DELETE.
func del(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodDelete, path, nil)
	authenticate(r)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

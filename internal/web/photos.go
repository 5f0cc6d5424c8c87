package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/feiralivre/feirad/internal/assets"
)

// servePhoto streams a stored photo, falling back to the placeholder image
// when the name is unknown. A miss is never an error for the caller.
func (s *Server) servePhoto(photos *assets.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.requireSession(w, r) == nil {
			return
		}
		http.ServeFile(w, r, photos.Resolve(mux.Vars(r)["name"]))
	}
}

// deletePhoto removes a photo file directly, without touching the record
// store. A row still pointing at the name is left dangling; its reads fall
// back to the placeholder.
func (s *Server) deletePhoto(photos *assets.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.requireSession(w, r) == nil {
			return
		}
		if err := photos.Remove(mux.Vars(r)["name"]); err != nil {
			s.internalError(w, "delete photo", err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// formUpload pulls the "foto" part out of a multipart form. Returns a nil
// upload when no file was sent; the cleanup func is always safe to defer.
func formUpload(r *http.Request) (*assets.Upload, func()) {
	file, header, err := r.FormFile("foto")
	if err != nil {
		return nil, func() {}
	}
	return &assets.Upload{Filename: header.Filename, Reader: file}, func() { file.Close() }
}

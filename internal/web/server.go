// Package web is the HTTP glue around the registry: routing, cookie-pair
// sessions, HTML rendering and multipart upload extraction. No business
// rules live here; handlers authenticate, pull fields out of the request,
// call one registry operation and render the outcome.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/feiralivre/feirad/internal/registry"
	"github.com/feiralivre/feirad/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Server routes back-office requests to the registry services.
type Server struct {
	reg    *registry.Registry
	log    *slog.Logger
	router *mux.Router
}

// NewServer builds the router over an already-wired registry.
func NewServer(reg *registry.Registry, log *slog.Logger) *Server {
	s := &Server{reg: reg, log: log, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := s.router
	r.Use(s.logRequests)

	r.HandleFunc("/", s.handleMenu).Methods(http.MethodGet)
	r.HandleFunc("/login", s.handleMenu).Methods(http.MethodGet)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)

	r.HandleFunc("/feira", s.handleListMarkets).Methods(http.MethodGet)
	r.HandleFunc("/feira/novo", s.handleNewMarketForm).Methods(http.MethodGet)
	r.HandleFunc("/feira/novo", s.handleCreateMarket).Methods(http.MethodPost)

	r.HandleFunc("/feirante", s.handleListVendors).Methods(http.MethodGet)
	r.HandleFunc("/feirante/novo", s.handleNewVendorForm).Methods(http.MethodGet)
	r.HandleFunc("/feirante/novo", s.handleCreateVendor).Methods(http.MethodPost)
	r.HandleFunc("/feirante/foto/{name}", s.servePhoto(s.reg.Vendors.Photos())).Methods(http.MethodGet)
	r.HandleFunc("/feirante/foto/{name}", s.deletePhoto(s.reg.Vendors.Photos())).Methods(http.MethodDelete)
	r.HandleFunc("/feirante/{id:[0-9]+}", s.handleEditVendorForm).Methods(http.MethodGet)
	r.HandleFunc("/feirante/{id:[0-9]+}", s.handleEditVendor).Methods(http.MethodPost)
	r.HandleFunc("/feirante/{id:[0-9]+}", s.handleDeleteVendor).Methods(http.MethodDelete)

	r.HandleFunc("/produto", s.handleListProducts).Methods(http.MethodGet)
	r.HandleFunc("/produto/novo", s.handleNewProductForm).Methods(http.MethodGet)
	r.HandleFunc("/produto/novo", s.handleCreateProduct).Methods(http.MethodPost)
	r.HandleFunc("/produto/foto/{name}", s.servePhoto(s.reg.Products.Photos())).Methods(http.MethodGet)
	r.HandleFunc("/produto/foto/{name}", s.deletePhoto(s.reg.Products.Photos())).Methods(http.MethodDelete)
	r.HandleFunc("/produto/{id:[0-9]+}", s.handleEditProductForm).Methods(http.MethodGet)
	r.HandleFunc("/produto/{id:[0-9]+}", s.handleEditProduct).Methods(http.MethodPost)
	r.HandleFunc("/produto/{id:[0-9]+}", s.handleDeleteProduct).Methods(http.MethodDelete)
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// session revalidates the cookie pair against the user table. Returns nil
// when the cookies are absent or do not match a user; errors mean the store
// failed.
func (s *Server) session(r *http.Request) (*store.User, error) {
	login, password := "", ""
	if c, err := r.Cookie("login"); err == nil {
		login = c.Value
	}
	if c, err := r.Cookie("senha"); err == nil {
		password = c.Value
	}
	return s.reg.Auth.Authenticate(r.Context(), login, password)
}

// requireSession authenticates or ends the request: unauthenticated callers
// are redirected to the login screen, store failures get a 500. Returns nil
// when the response has already been written.
func (s *Server) requireSession(w http.ResponseWriter, r *http.Request) *store.User {
	user, err := s.session(r)
	if err != nil {
		s.internalError(w, "authenticate session", err)
		return nil
	}
	if user == nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return nil
	}
	return user
}

// render executes a template into a buffer first so a render failure can
// still produce a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.internalError(w, "render template", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *Server) internalError(w http.ResponseWriter, msg string, err error) {
	s.log.Error(msg, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

package web

import (
	"net/http"

	"github.com/feiralivre/feirad/internal/store"
)

type loginData struct {
	Error   string
	Message string
}

type menuData struct {
	User    *store.User
	Message string
}

// handleMenu serves / and GET /login: the login screen for anonymous
// callers, the menu for authenticated ones.
func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	user, err := s.session(r)
	if err != nil {
		s.internalError(w, "authenticate session", err)
		return
	}
	if user == nil {
		s.render(w, http.StatusOK, "login.html", loginData{})
		return
	}
	s.render(w, http.StatusOK, "menu.html", menuData{User: user})
}

// handleLogin processes the login form. A form missing either field gets a
// fixed 422; a bad pair re-renders the login screen with an error; success
// stores the pair in cookies and redirects to the menu.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ":(", http.StatusUnprocessableEntity)
		return
	}
	if !r.PostForm.Has("login") || !r.PostForm.Has("senha") {
		http.Error(w, ":(", http.StatusUnprocessableEntity)
		return
	}
	login := r.PostForm.Get("login")
	password := r.PostForm.Get("senha")

	user, err := s.reg.Auth.Authenticate(r.Context(), login, password)
	if err != nil {
		s.internalError(w, "authenticate login", err)
		return
	}
	if user == nil {
		s.render(w, http.StatusOK, "login.html", loginData{Error: "Ops. A senha estava errada."})
		return
	}

	setSessionCookie(w, "login", login)
	setSessionCookie(w, "senha", password)
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleLogout clears the session cookies and says goodbye.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	setSessionCookie(w, "login", "")
	setSessionCookie(w, "senha", "")
	s.render(w, http.StatusOK, "login.html", loginData{Message: "Tchau."})
}

func setSessionCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	})
}

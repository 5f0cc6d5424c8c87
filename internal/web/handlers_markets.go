package web

import (
	"fmt"
	"net/http"

	"github.com/feiralivre/feirad/internal/store"
)

type marketListData struct {
	User    *store.User
	Markets []store.Market
}

func (s *Server) handleListMarkets(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}

	markets, err := s.reg.Markets.List(r.Context())
	if err != nil {
		s.internalError(w, "list markets", err)
		return
	}
	s.render(w, http.StatusOK, "feiras.html", marketListData{User: user, Markets: markets})
}

func (s *Server) handleNewMarketForm(w http.ResponseWriter, r *http.Request) {
	if s.requireSession(w, r) == nil {
		return
	}
	s.render(w, http.StatusOK, "feira_form.html", nil)
}

func (s *Server) handleCreateMarket(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}

	neighborhood := r.PostFormValue("bairro")
	time := r.PostFormValue("hora")
	day := r.PostFormValue("dia")

	market, existed, err := s.reg.Markets.Create(r.Context(), neighborhood, time, day)
	if err != nil {
		s.internalError(w, "create market", err)
		return
	}

	var message string
	if existed {
		message = fmt.Sprintf("A feira do bairro %s já existia com o id %d.", neighborhood, market.ID)
	} else {
		message = fmt.Sprintf("A feira do bairro %s foi criada com id %d.", neighborhood, market.ID)
	}
	s.render(w, http.StatusOK, "menu.html", menuData{User: user, Message: message})
}

package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/feiralivre/feirad/internal/registry"
	"github.com/feiralivre/feirad/internal/store"
)

type vendorListData struct {
	User    *store.User
	Vendors []store.VendorDetail
}

type vendorFormData struct {
	IsNew   bool
	Vendor  store.VendorDetail
	Markets []store.Market
}

func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}

	vendors, err := s.reg.Vendors.List(r.Context())
	if err != nil {
		s.internalError(w, "list vendors", err)
		return
	}
	s.render(w, http.StatusOK, "feirantes.html", vendorListData{User: user, Vendors: vendors})
}

func (s *Server) handleNewVendorForm(w http.ResponseWriter, r *http.Request) {
	if s.requireSession(w, r) == nil {
		return
	}

	markets, err := s.reg.Markets.ListOrdered(r.Context())
	if err != nil {
		s.internalError(w, "list markets", err)
		return
	}
	s.render(w, http.StatusOK, "feirante_form.html", vendorFormData{IsNew: true, Markets: markets})
}

func (s *Server) handleEditVendorForm(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}

	vendor, err := s.reg.Vendors.Get(r.Context(), pathID(r))
	if err != nil {
		s.internalError(w, "get vendor", err)
		return
	}
	if vendor == nil {
		s.render(w, http.StatusNotFound, "menu.html", menuData{User: user, Message: "Esse feirante não existe."})
		return
	}

	markets, err := s.reg.Markets.ListOrdered(r.Context())
	if err != nil {
		s.internalError(w, "list markets", err)
		return
	}
	s.render(w, http.StatusOK, "feirante_form.html", vendorFormData{Vendor: *vendor, Markets: markets})
}

func (s *Server) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}

	in, ok := vendorForm(w, r)
	if !ok {
		return
	}
	upload, closeUpload := formUpload(r)
	defer closeUpload()

	vendor, err := s.reg.Vendors.Create(r.Context(), in, upload)
	if err != nil {
		s.internalError(w, "create vendor", err)
		return
	}

	var message string
	if in.Sex == "M" {
		message = fmt.Sprintf("O feirante %s foi criado com o id %d.", in.Name, vendor.ID)
	} else {
		message = fmt.Sprintf("A feirante %s foi criada com o id %d.", in.Name, vendor.ID)
	}
	s.render(w, http.StatusOK, "menu.html", menuData{User: user, Message: message})
}

func (s *Server) handleEditVendor(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}
	id := pathID(r)

	in, ok := vendorForm(w, r)
	if !ok {
		return
	}
	upload, closeUpload := formUpload(r)
	defer closeUpload()

	prev, err := s.reg.Vendors.Edit(r.Context(), id, in, upload)
	if err != nil {
		s.internalError(w, "edit vendor", err)
		return
	}
	if prev == nil {
		// Phrasing follows the submitted form, as there is no record left
		// to consult.
		message := "Esse feirante nem mesmo existia mais."
		if in.Sex != "M" {
			message = "Essa feirante nem mesmo existia mais."
		}
		s.render(w, http.StatusNotFound, "menu.html", menuData{User: user, Message: message})
		return
	}

	var message string
	if in.Sex == "M" {
		message = fmt.Sprintf("O feirante %s com o id %d foi editado.", in.Name, id)
	} else {
		message = fmt.Sprintf("A feirante %s com o id %d foi editada.", in.Name, id)
	}
	s.render(w, http.StatusOK, "menu.html", menuData{User: user, Message: message})
}

func (s *Server) handleDeleteVendor(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}
	id := pathID(r)

	deleted, err := s.reg.Vendors.Delete(r.Context(), id)
	if err != nil {
		s.internalError(w, "delete vendor", err)
		return
	}
	if deleted == nil {
		s.render(w, http.StatusNotFound, "menu.html", menuData{User: user, Message: "Esse feirante nem mesmo existia mais."})
		return
	}

	// Phrasing follows the deleted record here.
	var message string
	if deleted.Sex == "M" {
		message = fmt.Sprintf("O feirante com o id %d foi excluído.", id)
	} else {
		message = fmt.Sprintf("A feirante com o id %d foi excluída.", id)
	}
	s.render(w, http.StatusOK, "menu.html", menuData{User: user, Message: message})
}

// vendorForm extracts the vendor fields. A malformed market id gets the
// fixed 422 response.
func vendorForm(w http.ResponseWriter, r *http.Request) (registry.VendorInput, bool) {
	marketID, err := strconv.ParseInt(r.PostFormValue("id_feira"), 10, 64)
	if err != nil {
		http.Error(w, ":(", http.StatusUnprocessableEntity)
		return registry.VendorInput{}, false
	}
	return registry.VendorInput{
		Name:     r.PostFormValue("nome"),
		Stall:    r.PostFormValue("barraca"),
		Sex:      r.PostFormValue("sexo"),
		MarketID: marketID,
	}, true
}

// pathID parses the {id} route variable. Routes constrain it to digits, so
// a parse failure cannot happen past the router.
func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

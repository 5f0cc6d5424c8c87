package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/feiralivre/feirad/internal/registry"
	"github.com/feiralivre/feirad/internal/store"
)

type productListData struct {
	User     *store.User
	Products []store.ProductDetail
}

type productFormData struct {
	IsNew   bool
	Product store.ProductDetail
	Markets []store.Market
	Vendors []store.VendorDetail
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}

	products, err := s.reg.Products.List(r.Context())
	if err != nil {
		s.internalError(w, "list products", err)
		return
	}
	s.render(w, http.StatusOK, "produtos.html", productListData{User: user, Products: products})
}

func (s *Server) handleNewProductForm(w http.ResponseWriter, r *http.Request) {
	if s.requireSession(w, r) == nil {
		return
	}

	data, err := s.productFormChoices(r)
	if err != nil {
		s.internalError(w, "load product form", err)
		return
	}
	data.IsNew = true
	s.render(w, http.StatusOK, "produto_form.html", data)
}

func (s *Server) handleEditProductForm(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}

	product, err := s.reg.Products.Get(r.Context(), pathID(r))
	if err != nil {
		s.internalError(w, "get product", err)
		return
	}
	if product == nil {
		s.render(w, http.StatusNotFound, "menu.html", menuData{User: user, Message: "Esse produto não existe."})
		return
	}

	data, err := s.productFormChoices(r)
	if err != nil {
		s.internalError(w, "load product form", err)
		return
	}
	data.Product = *product
	s.render(w, http.StatusOK, "produto_form.html", data)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}

	in, ok := productForm(w, r)
	if !ok {
		return
	}
	upload, closeUpload := formUpload(r)
	defer closeUpload()

	product, err := s.reg.Products.Create(r.Context(), in, upload)
	if err != nil {
		s.internalError(w, "create product", err)
		return
	}

	message := fmt.Sprintf("O produto %s foi criado com o id %d.", in.Name, product.ID)
	s.render(w, http.StatusOK, "menu.html", menuData{User: user, Message: message})
}

func (s *Server) handleEditProduct(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}
	id := pathID(r)

	in, ok := productForm(w, r)
	if !ok {
		return
	}
	upload, closeUpload := formUpload(r)
	defer closeUpload()

	prev, err := s.reg.Products.Edit(r.Context(), id, in, upload)
	if err != nil {
		s.internalError(w, "edit product", err)
		return
	}
	if prev == nil {
		s.render(w, http.StatusNotFound, "menu.html", menuData{User: user, Message: "Esse produto nem mesmo existia mais."})
		return
	}

	message := fmt.Sprintf("O produto %s com o id %d foi editado.", in.Name, id)
	s.render(w, http.StatusOK, "menu.html", menuData{User: user, Message: message})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	user := s.requireSession(w, r)
	if user == nil {
		return
	}
	id := pathID(r)

	deleted, err := s.reg.Products.Delete(r.Context(), id)
	if err != nil {
		s.internalError(w, "delete product", err)
		return
	}
	if deleted == nil {
		s.render(w, http.StatusNotFound, "menu.html", menuData{User: user, Message: "Esse produto nem mesmo existia mais."})
		return
	}

	message := fmt.Sprintf("O produto com o id %d foi excluído.", id)
	s.render(w, http.StatusOK, "menu.html", menuData{User: user, Message: message})
}

// productFormChoices loads the selection lists shared by the new/edit forms.
func (s *Server) productFormChoices(r *http.Request) (productFormData, error) {
	markets, err := s.reg.Markets.ListOrdered(r.Context())
	if err != nil {
		return productFormData{}, err
	}
	vendors, err := s.reg.Vendors.List(r.Context())
	if err != nil {
		return productFormData{}, err
	}
	return productFormData{Markets: markets, Vendors: vendors}, nil
}

// productForm extracts the product fields. Malformed numeric fields get the
// fixed 422 response.
func productForm(w http.ResponseWriter, r *http.Request) (registry.ProductInput, bool) {
	price, err := strconv.ParseFloat(r.PostFormValue("preco"), 64)
	if err != nil {
		http.Error(w, ":(", http.StatusUnprocessableEntity)
		return registry.ProductInput{}, false
	}
	quantity, err := strconv.ParseInt(r.PostFormValue("quantidade"), 10, 64)
	if err != nil {
		http.Error(w, ":(", http.StatusUnprocessableEntity)
		return registry.ProductInput{}, false
	}
	marketID, err := strconv.ParseInt(r.PostFormValue("id_feira"), 10, 64)
	if err != nil {
		http.Error(w, ":(", http.StatusUnprocessableEntity)
		return registry.ProductInput{}, false
	}
	vendorID, err := strconv.ParseInt(r.PostFormValue("id_feirante"), 10, 64)
	if err != nil {
		http.Error(w, ":(", http.StatusUnprocessableEntity)
		return registry.ProductInput{}, false
	}
	return registry.ProductInput{
		Name:     r.PostFormValue("nome"),
		Price:    price,
		Quantity: quantity,
		MarketID: marketID,
		VendorID: vendorID,
	}, true
}

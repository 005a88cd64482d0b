package http

import (
	"net/http"
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.productSvc.ListAll(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, products, "")
}

func (a *API) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := a.decodeAndValidate(w, r, &req, true); err != nil {
		a.handleRequestError(w, err)
		return
	}
	res, err := a.productSvc.Search(r.Context(), req.toDomain())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, res, "")
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		a.handleRequestError(w, err)
		return
	}
	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, p, "")
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := a.decodeAndValidate(w, r, &req, false); err != nil {
		a.handleRequestError(w, err)
		return
	}
	p, err := a.productSvc.Create(r.Context(), req.toInput())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	respondOK(w, http.StatusCreated, p, "product created")
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		a.handleRequestError(w, err)
		return
	}
	var req updateProductRequest
	if err := a.decodeAndValidate(w, r, &req, false); err != nil {
		a.handleRequestError(w, err)
		return
	}
	p, err := a.productSvc.Update(r.Context(), req.toInput(id))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, p, "product updated")
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		a.handleRequestError(w, err)
		return
	}
	if err := a.productSvc.Delete(r.Context(), id); err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	msg := "product " + id.String() + " deleted"
	respondOK(w, http.StatusOK, msg, msg)
}

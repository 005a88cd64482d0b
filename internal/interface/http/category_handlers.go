package http

import (
	"net/http"
)

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categorySvc.ListAll(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, categories, "")
}

func (a *API) handleSearchCategories(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := a.decodeAndValidate(w, r, &req, true); err != nil {
		a.handleRequestError(w, err)
		return
	}
	res, err := a.categorySvc.Search(r.Context(), req.toDomain())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, res, "")
}

func (a *API) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		a.handleRequestError(w, err)
		return
	}
	category, err := a.categorySvc.GetByID(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, category, "")
}

func (a *API) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := a.decodeAndValidate(w, r, &req, false); err != nil {
		a.handleRequestError(w, err)
		return
	}
	category, err := a.categorySvc.Create(r.Context(), req.toInput())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	respondOK(w, http.StatusCreated, category, "category created")
}

func (a *API) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		a.handleRequestError(w, err)
		return
	}
	var req updateCategoryRequest
	if err := a.decodeAndValidate(w, r, &req, false); err != nil {
		a.handleRequestError(w, err)
		return
	}
	category, err := a.categorySvc.Update(r.Context(), req.toInput(id))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, category, "category updated")
}

func (a *API) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		a.handleRequestError(w, err)
		return
	}
	if err := a.categorySvc.Delete(r.Context(), id); err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	msg := "category " + id.String() + " deleted"
	respondOK(w, http.StatusOK, msg, msg)
}

package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"townlink/internal/domain/businesses"
	"townlink/internal/moderation"
	"townlink/internal/params"

	"github.com/go-chi/chi/v5"
)

var errInvalidBusinessID = errors.New("invalid business ID")

// readIDParam reads the {id} path segment; it must be a positive integer.
func readIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidBusinessID
	}
	return id, nil
}

// CreateBusiness godoc
//
//	@Summary		Submit a business
//	@Description	Public route. Stores the business as pending; it stays hidden until an admin approves it.
//	@Tags			Businesses
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		moderation.SubmitBusinessInput	true	"Business details"
//	@Success		201		{object}	businesses.Business
//	@Failure		400		{object}	error
//	@Failure		429		{object}	error
//	@Failure		500		{object}	error
//	@Router			/api/businesses [post]
func (app *application) createBusinessHandler(w http.ResponseWriter, r *http.Request) {
	var payload moderation.SubmitBusinessInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	business, err := app.moderation.Submit(r.Context(), payload)
	if err != nil {
		app.moderationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, business); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ListBusinesses godoc
//
//	@Summary		List businesses
//	@Description	Approved businesses sorted by name. With the admin key every status is listed newest first and the status filter applies.
//	@Tags			Businesses
//	@Produce		json
//	@Param			category	query		string	false	"exact category, case-insensitive; 'all' disables the filter"
//	@Param			status		query		string	false	"pending|approved (admin only)"
//	@Param			page		query		int		false	"page number (default 1)"
//	@Param			limit		query		int		false	"page size (default all, max 100)"
//	@Success		200			{object}	[]businesses.Business
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/api/businesses [get]
func (app *application) listBusinessesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := app.viewFor(r)
	page := params.ParsePagination(q)

	opts := moderation.ListOptions{
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	if c := strings.TrimSpace(q.Get("category")); !strings.EqualFold(c, "all") {
		opts.Category = c
	}

	if s := strings.TrimSpace(q.Get("status")); s != "" && view == moderation.AdminView {
		st, ok := businesses.ParseStatus(s)
		if !ok {
			app.badRequestResponse(w, r, errors.New("invalid status"))
			return
		}
		opts.Status = &st
	}

	list, err := app.moderation.List(r.Context(), view, opts)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// GetBusiness godoc
//
//	@Summary		Get a business
//	@Description	Pending businesses are reported as not found unless the admin key is sent.
//	@Tags			Businesses
//	@Produce		json
//	@Param			id	path		int64	true	"Business ID"
//	@Success		200	{object}	businesses.Business
//	@Failure		400	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Router			/api/businesses/{id} [get]
func (app *application) getBusinessHandler(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	business, err := app.moderation.Get(r.Context(), app.viewFor(r), id)
	if err != nil {
		app.moderationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, business); err != nil {
		app.internalServerError(w, r, err)
	}
}

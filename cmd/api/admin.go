package main

import (
	"context"
	"net/http"

	"townlink/internal/domain/businesses"
)

// ApproveBusiness godoc
//
//	@Summary		Approve a business (admin)
//	@Description	Makes the business publicly visible. Approving an approved business succeeds without change.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		int64	true	"Business ID"
//	@Success		200	{object}	businesses.Business
//	@Failure		400	{object}	error
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		AdminKey
//	@Router			/api/businesses/{id}/approve [post]
//	@Router			/admin/approve/{id} [post]
func (app *application) approveBusinessHandler(w http.ResponseWriter, r *http.Request) {
	app.transitionHandler(w, r, app.moderation.Approve)
}

// RejectBusiness godoc
//
//	@Summary		Reset a business to pending (admin)
//	@Description	Hides the business from public reads again. Its reviews are kept.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		int64	true	"Business ID"
//	@Success		200	{object}	businesses.Business
//	@Failure		400	{object}	error
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		AdminKey
//	@Router			/api/businesses/{id}/reject [post]
//	@Router			/admin/reject/{id} [post]
func (app *application) rejectBusinessHandler(w http.ResponseWriter, r *http.Request) {
	app.transitionHandler(w, r, app.moderation.Reject)
}

func (app *application) transitionHandler(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, businessID int64) (*businesses.Business, error),
) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	business, err := apply(r.Context(), id)
	if err != nil {
		app.moderationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, business); err != nil {
		app.internalServerError(w, r, err)
	}
}

// DeleteBusiness godoc
//
//	@Summary		Delete a business (admin)
//	@Description	Permanently removes the business and every review attached to it.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		int64	true	"Business ID"
//	@Success		200	{object}	map[string]any
//	@Failure		400	{object}	error
//	@Failure		403	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Security		AdminKey
//	@Router			/api/businesses/{id} [delete]
//	@Router			/admin/delete/{id} [delete]
func (app *application) deleteBusinessHandler(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	business, err := app.moderation.Delete(r.Context(), id)
	if err != nil {
		app.moderationError(w, r, err)
		return
	}

	out := map[string]any{
		"message":  "business deleted",
		"business": business,
	}

	if err := app.jsonResponse(w, http.StatusOK, out); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ListPendingBusinesses godoc
//
//	@Summary		Moderation queue (admin)
//	@Description	Pending businesses, newest first.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	[]businesses.Business
//	@Failure		403	{object}	error
//	@Failure		500	{object}	error
//	@Security		AdminKey
//	@Router			/admin/pending-businesses [get]
func (app *application) listPendingBusinessesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.moderation.ListPending(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

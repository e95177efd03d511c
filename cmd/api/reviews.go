package main

import (
	"errors"
	"net/http"

	"townlink/internal/moderation"

	"github.com/go-chi/chi/v5"
)

// review_text is the field name older clients send.
type createReviewPayload struct {
	BusinessID   int64  `json:"business_id"`
	ReviewerName string `json:"reviewer_name"`
	Text         string `json:"text"`
	ReviewText   string `json:"review_text"`
	Rating       *int   `json:"rating"`
}

// CreateReview godoc
//
//	@Summary		Submit a review
//	@Description	Public route. The rating must be a whole number from 1 to 5 and the business must be approved.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int64				false	"Business ID (business_id in the body otherwise)"
//	@Param			payload	body		createReviewPayload	true	"Review"
//	@Success		201		{object}	reviews.Review
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Failure		429		{object}	error
//	@Failure		500		{object}	error
//	@Router			/api/reviews [post]
//	@Router			/api/businesses/{id}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if chi.URLParam(r, "id") != "" {
		id, err := readIDParam(r)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		if payload.BusinessID != 0 && payload.BusinessID != id {
			app.badRequestResponse(w, r, errors.New("business_id does not match the path"))
			return
		}
		payload.BusinessID = id
	}

	text := payload.Text
	if text == "" {
		text = payload.ReviewText
	}

	review, err := app.moderation.SubmitReview(r.Context(), app.viewFor(r), moderation.SubmitReviewInput{
		BusinessID:   payload.BusinessID,
		ReviewerName: payload.ReviewerName,
		Text:         text,
		Rating:       payload.Rating,
	})
	if err != nil {
		app.moderationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ListReviews godoc
//
//	@Summary		List reviews of a business
//	@Description	Newest first, with the review count and the unrounded average rating (0 when there are none).
//	@Tags			Reviews
//	@Produce		json
//	@Param			id	path		int64	true	"Business ID"
//	@Success		200	{object}	moderation.ReviewList
//	@Failure		400	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Router			/api/businesses/{id}/reviews [get]
//	@Router			/api/reviews/{id} [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	list, err := app.moderation.ListReviews(r.Context(), app.viewFor(r), id)
	if err != nil {
		app.moderationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

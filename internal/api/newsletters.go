package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/services"
)

// ListNewslettersHandler handles GET /api/v1/newsletters
//
// Returns the paginated index; bodies are omitted until a single issue
// is fetched.
func ListNewslettersHandler(svc *services.NewsletterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		result, err := svc.List(r.Context(), page)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, result)
	}
}

// GetNewsletterHandler handles GET /api/v1/newsletters/{newsletter_id}
func GetNewsletterHandler(svc *services.NewsletterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		id, ok := uintParam(r, "newsletter_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid newsletter id")
			return
		}

		dto, err := svc.Get(r.Context(), rc, id)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, dto)
	}
}

// CreateNewsletterHandler handles POST /api/v1/newsletters
func CreateNewsletterHandler(svc *services.NewsletterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		var req requests.NewsletterUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		dto, err := svc.Create(r.Context(), rc, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, dto)
	}
}

// UpdateNewsletterHandler handles PUT /api/v1/newsletters/{newsletter_id}
func UpdateNewsletterHandler(svc *services.NewsletterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		id, ok := uintParam(r, "newsletter_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid newsletter id")
			return
		}

		var req requests.NewsletterUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		dto, err := svc.Update(r.Context(), rc, id, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, dto)
	}
}

// DeleteNewsletterHandler handles DELETE /api/v1/newsletters/{newsletter_id}
func DeleteNewsletterHandler(svc *services.NewsletterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		id, ok := uintParam(r, "newsletter_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid newsletter id")
			return
		}

		if err := svc.Delete(r.Context(), rc, id); err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithMessage(w, http.StatusOK, "Newsletter deleted")
	}
}

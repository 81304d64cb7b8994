package api

import (
	"encoding/json"
	"net/http"

	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/services"
)

// ListEventsHandler handles GET /api/v1/events
//
// Visibility is filtered per caller: anonymous visitors only see public
// events, members see whatever their degree admits.
func ListEventsHandler(svc *services.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		events, err := svc.List(r.Context(), rc)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &events)
	}
}

// GetEventHandler handles GET /api/v1/events/{event_id}
func GetEventHandler(svc *services.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		id, ok := uintParam(r, "event_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid event id")
			return
		}

		event, err := svc.Get(r.Context(), rc, id)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, event)
	}
}

// CreateEventHandler handles POST /api/v1/events
func CreateEventHandler(svc *services.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		var req requests.EventUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		event, err := svc.Create(r.Context(), rc, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, event)
	}
}

// UpdateEventHandler handles PUT /api/v1/events/{event_id}
func UpdateEventHandler(svc *services.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		id, ok := uintParam(r, "event_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid event id")
			return
		}

		var req requests.EventUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		event, err := svc.Update(r.Context(), rc, id, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, event)
	}
}

// DeleteEventHandler handles DELETE /api/v1/events/{event_id}
func DeleteEventHandler(svc *services.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		id, ok := uintParam(r, "event_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid event id")
			return
		}

		if err := svc.Delete(r.Context(), rc, id); err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithMessage(w, http.StatusOK, "Event deleted")
	}
}

// ListEventTypesHandler handles GET /api/v1/events/types
func ListEventTypesHandler(svc *services.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.ListTypes(r.Context())
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &types)
	}
}

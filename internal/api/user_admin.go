package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/metrics"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/services"
)

// ListUsersHandler handles GET /api/v1/admin/users
//
// @Summary      List users for administration
// @Description  Returns every user with their roles, plus the assignable role names.
// @Tags         Admin
// @Produce      json
// @Router       /api/v1/admin/users [get]
func ListUsersHandler(svc *services.UserAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		list, err := svc.List(r.Context(), rc)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, list)
	}
}

// CreateUserHandler handles POST /api/v1/admin/users
func CreateUserHandler(svc *services.UserAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		var req requests.UserCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		row, err := svc.Create(r.Context(), rc, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, row)
	}
}

// UpdateUserHandler handles PUT /api/v1/admin/users/{user_id}
func UpdateUserHandler(svc *services.UserAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		userID, ok := uintParam(r, "user_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req requests.UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		row, err := svc.Update(r.Context(), rc, userID, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, row)
	}
}

// SetUserPasswordHandler handles PUT /api/v1/admin/users/{user_id}/password
func SetUserPasswordHandler(svc *services.UserAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		userID, ok := uintParam(r, "user_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req requests.SetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.SetPassword(r.Context(), rc, userID, req); err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithMessage(w, http.StatusOK, "Password updated")
	}
}

// BulkUpdateUsersHandler handles PUT /api/v1/admin/users
//
// The whole batch commits or rolls back together; a single bad row
// leaves every user untouched.
func BulkUpdateUsersHandler(svc *services.UserAdminService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		var req requests.BulkUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.BulkUpdate(r.Context(), rc, req); err != nil {
			metricsReg.BulkUpdateRowsTotal.WithLabelValues("rolled_back").Add(float64(len(req.Items)))
			respondWithAppError(w, err)
			return
		}

		metricsReg.BulkUpdateRowsTotal.WithLabelValues("committed").Add(float64(len(req.Items)))
		respondWithMessage(w, http.StatusOK, "Users updated")
	}
}

func uintParam(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

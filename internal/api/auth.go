package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Caarnus/newburgh-lodge/internal/common"
	"github.com/Caarnus/newburgh-lodge/internal/config"
	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/logging"
	"github.com/Caarnus/newburgh-lodge/internal/metrics"
	mw "github.com/Caarnus/newburgh-lodge/internal/middleware"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/responses"
	"github.com/Caarnus/newburgh-lodge/internal/services"
)

// RegisterHandler handles POST /api/v1/auth/register
//
// @Summary      Register a member account
// @Description  Creates an account with the base member role and signs the user in.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  responses.APIResponse[responses.UserRow]
// @Failure      422  {object}  responses.APIResponse[any]
// @Router       /api/v1/auth/register [post]
func RegisterHandler(authSvc *services.AuthService, sessionSvc *common.SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := authSvc.Register(r.Context(), req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		sessionID, err := sessionSvc.CreateSession(r.Context(), user.ID)
		if err != nil {
			logging.Error("Failed to create session after registration", "error", err, "user_id", user.ID)
			respondWithError(w, http.StatusInternalServerError, "Failed to create session")
			return
		}
		setSessionCookie(w, sessionID)

		row := responses.UserRow{ID: user.ID, Name: user.Name, Email: user.Email}
		respondWithSuccess(w, http.StatusCreated, &row)
	}
}

// LoginHandler handles POST /api/v1/auth/login
func LoginHandler(authSvc *services.AuthService, sessionSvc *common.SessionService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := authSvc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			metricsReg.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		sessionID, err := sessionSvc.CreateSession(r.Context(), user.ID)
		if err != nil {
			logging.Error("Failed to create session", "error", err, "user_id", user.ID)
			respondWithError(w, http.StatusInternalServerError, "Failed to create session")
			return
		}
		setSessionCookie(w, sessionID)

		metricsReg.LoginAttemptsTotal.WithLabelValues("success").Inc()
		metricsReg.SessionsActive.Inc()

		caps := services.CapabilitiesFor(user)
		row := responses.UserRow{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: caps.IsAdmin,
		}
		respondWithSuccess(w, http.StatusOK, &row)
	}
}

// LogoutHandler handles POST /api/v1/auth/logout
func LogoutHandler(sessionSvc *common.SessionService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())
		if rc.SessionID != "" {
			if err := sessionSvc.DeleteSession(r.Context(), rc.SessionID); err != nil {
				logging.Warn("Failed to delete session", "error", err, "session_id", rc.SessionID)
			}
			metricsReg.SessionsActive.Dec()
		}
		clearSessionCookie(w)
		respondWithMessage(w, http.StatusOK, "Signed out")
	}
}

// ConfirmPasswordHandler handles POST /api/v1/auth/confirm-password
//
// Re-verifies the signed-in user's own credential and stamps the session,
// opening the re-confirmation window for sensitive admin operations.
func ConfirmPasswordHandler(authSvc *services.AuthService, sessionSvc *common.SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		var req requests.ConfirmPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := authSvc.VerifyPassword(r.Context(), rc.ActorID, req.Password); err != nil {
			respondWithAppError(w, err)
			return
		}

		if err := sessionSvc.StampPasswordConfirmed(r.Context(), rc.SessionID); err != nil {
			logging.Error("Failed to stamp password confirmation", "error", err, "session_id", rc.SessionID)
			respondWithError(w, http.StatusInternalServerError, "Failed to record confirmation")
			return
		}

		respondWithMessage(w, http.StatusOK, "Password confirmed")
	}
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     mw.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(config.AppConfig.SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   config.AppConfig.AppEnv == "production",
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     mw.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

package middleware

import (
	"errors"
	"net"
	"net/http"

	"github.com/Caarnus/newburgh-lodge/internal/common"
	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/logging"
	"github.com/Caarnus/newburgh-lodge/internal/services"
)

// SessionCookieName is the cookie the SPA sends back on every request.
const SessionCookieName = "lodge_session"

// SessionContextMiddleware resolves the session cookie into a RequestContext.
// It never rejects: anonymous requests get an empty context and the gate
// middlewares below decide what needs a signed-in user.
func SessionContextMiddleware(sessions *common.SessionService, userRepo *repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := reqctx.RequestContext{
				Guard:     "web",
				IP:        clientIP(r),
				UserAgent: r.UserAgent(),
				RequestID: r.Header.Get("X-Request-ID"),
			}

			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				session, err := sessions.GetSession(r.Context(), cookie.Value)
				switch {
				case err == nil:
					user, uerr := userRepo.GetByIDWithRoles(r.Context(), session.UserID)
					if uerr == nil {
						rc.ActorID = user.ID
						rc.ActorName = user.Name
						rc.Capabilities = services.CapabilitiesFor(user)
						rc.SessionID = session.SessionID
					} else {
						logging.Warn("Session points at missing user",
							"session_id", session.SessionID, "user_id", session.UserID)
					}
				case errors.Is(err, common.ErrSessionNotFound):
					// Stale cookie, treat as anonymous
				default:
					logging.Error("Session lookup failed", "error", err)
				}
			}

			ctx := reqctx.SetRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthMiddleware rejects requests without a signed-in user.
func RequireAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := reqctx.GetRequestContext(r.Context())
			if !rc.Authenticated() {
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdminAccessMiddleware restricts a route group to administrators
// and secretaries. Finer elevation checks stay in the services.
func RequireAdminAccessMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := reqctx.GetRequestContext(r.Context())
			if !rc.Authenticated() {
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}
			if !rc.Capabilities.IsAdmin && !rc.Capabilities.IsSecretary {
				http.Error(w, "Forbidden. Need administrator or secretary perms", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

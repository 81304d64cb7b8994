package context

import (
	"context"

	"github.com/Caarnus/newburgh-lodge/internal/auth"
)

type contextKey string

var requestContextKey contextKey = "request_context"

// RequestContext carries the authenticated identity and the request
// metadata the audit trail records. It is built once by the auth middleware
// and threaded explicitly; nothing downstream reads ambient request state.
type RequestContext struct {
	ActorID      uint
	ActorName    string
	Capabilities auth.Capabilities
	Guard        string
	IP           string
	UserAgent    string
	RequestID    string

	// SessionID lets workflows that stamp session state (password
	// confirmation) find their way back to the session store.
	SessionID string
}

// Authenticated reports whether the request carries a signed-in user.
func (rc RequestContext) Authenticated() bool { return rc.ActorID != 0 }

func SetRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey, rc)
}

func GetRequestContext(ctx context.Context) RequestContext {
	val := ctx.Value(requestContextKey)
	if rc, ok := val.(RequestContext); ok {
		return rc
	}
	return RequestContext{}
}

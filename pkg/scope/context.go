package scope

import (
	"context"

	"engagement-srv/internal/model"
)

type contextKey string

const (
	payloadKey contextKey = "scope.payload"
	scopeKey   contextKey = "scope.scope"
)

// SetPayloadToContext stores the verified payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey, payload)
}

// GetPayloadFromContext returns the payload stored in the context, if any.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadKey).(Payload)
	return payload, ok
}

// SetScopeToContext stores the request scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the request scope stored in the context.
// Returns a zero scope when none is set.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

package usercontext

import (
	"context"
	"strings"
)

// OwnerContextKey is the request context key for the authenticated owner ID.
type OwnerContextKey struct{}

// WithOwnerID stores the opaque owner ID in the context.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerContextKey{}, ownerID)
}

// OwnerIDFromContext returns the owner ID from context, if set.
func OwnerIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	value, ok := ctx.Value(OwnerContextKey{}).(string)
	if !ok {
		return "", false
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

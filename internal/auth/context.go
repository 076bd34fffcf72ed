// Package auth carries the current user identity. Authentication UX is
// out of scope; the rest of the codebase consumes an opaque user
// identifier extracted from a signed session token.
package auth

import "context"

type contextKey struct{}

// WithUserID stores the authenticated user identifier on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserID returns the authenticated user identifier, or "" when the
// request is unauthenticated.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

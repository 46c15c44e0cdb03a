package api

import "context"

type contextKey string

const tokenContextKey contextKey = "api_token"

// WithToken returns a context carrying the user's upstream bearer token.
// Requests issued under this context authenticate as that user.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext returns the bearer token carried by the context, or empty
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

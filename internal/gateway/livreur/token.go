package livreur

import "context"

// TokenSource supplies the bearer token for backend calls. Refresh is
// invoked once after a 401 before the request is retried; the refresh
// protocol itself is owned by the auth layer, not this gateway.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource with a fixed token and no refresh, useful
// for tools and tests.
type StaticToken string

// Token returns the fixed token.
func (s StaticToken) Token(context.Context) (string, error) { return string(s), nil }

// Refresh returns the same fixed token.
func (s StaticToken) Refresh(context.Context) (string, error) { return string(s), nil }

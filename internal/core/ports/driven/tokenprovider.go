package driven

import "context"

// TokenProvider supplies bearer tokens for authenticated catalog access.
// Implementations cover a static token and an OAuth2 client-credentials
// flow against the identity provider.
type TokenProvider interface {
	// Token returns a valid bearer token, refreshing if necessary.
	Token(ctx context.Context) (string, error)
}

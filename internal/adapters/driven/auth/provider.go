// Package auth provides token providers for the Azure management plane.
package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
)

// defaultScope requests management-plane access.
const defaultScope = "https://management.azure.com/.default"

// tokenEndpoint is the Azure AD v2 token endpoint for a tenant.
const tokenEndpoint = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"

// Ensure both providers implement the interface.
var (
	_ driven.TokenProvider = (*StaticProvider)(nil)
	_ driven.TokenProvider = (*ClientCredentialsProvider)(nil)
)

// StaticProvider returns a fixed bearer token. Useful for tests and for
// tokens minted externally (az account get-access-token).
type StaticProvider struct {
	token string
}

// NewStaticProvider creates a provider around a pre-issued token.
func NewStaticProvider(token string) (*StaticProvider, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("static token provider: empty token")
	}
	return &StaticProvider{token: token}, nil
}

// Token returns the fixed token.
func (p *StaticProvider) Token(_ context.Context) (string, error) {
	return p.token, nil
}

// ClientCredentialsProvider obtains tokens from Azure AD using the OAuth2
// client credentials grant. Tokens are cached and refreshed by the
// underlying token source.
type ClientCredentialsProvider struct {
	source oauth2.TokenSource
}

// NewClientCredentialsProvider creates a provider for a service principal.
func NewClientCredentialsProvider(tenantID, clientID, clientSecret string) (*ClientCredentialsProvider, error) {
	if tenantID == "" || clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("client credentials provider: tenant ID, client ID and client secret are all required")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     fmt.Sprintf(tokenEndpoint, tenantID),
		Scopes:       []string{defaultScope},
	}
	return &ClientCredentialsProvider{
		source: config.TokenSource(context.Background()),
	}, nil
}

// Token returns a valid access token, refreshing when expired.
func (p *ClientCredentialsProvider) Token(_ context.Context) (string, error) {
	token, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("acquire token: %w", err)
	}
	return token.AccessToken, nil
}

package repository

import (
	"context"

	"postpilot/domain/model"
)

// IOAuthProvider abstracts one third-party OAuth integration. Implementations
// build the authorization redirect and exchange callback codes for a
// normalized credential.
type IOAuthProvider interface {
	// Name is the provider key used in routes and cookie names.
	Name() string
	// Configured reports whether client credentials are present. Flows
	// against an unconfigured provider fail closed.
	Configured() bool
	// AuthCodeURL builds the provider authorization URL carrying state.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for a credential. Provider
	// error payloads are reduced to a ProviderError.
	Exchange(ctx context.Context, code string) (*model.Credential, error)
}

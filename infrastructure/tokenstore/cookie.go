package tokenstore

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"postpilot/domain/model"
)

// Cookie lifetimes in seconds.
const (
	credentialMaxAge = 30 * 24 * 3600
	stateMaxAge      = 600
)

// CookieStore reads and writes per-provider credential and OAuth state
// cookies. Credentials are base64url-encoded JSON; there is no server-side
// copy, so every request pays the decode cost afresh.
type CookieStore struct{}

func NewCookieStore() *CookieStore {
	return &CookieStore{}
}

func credentialCookieName(provider string) string {
	return fmt.Sprintf("%s_credentials", provider)
}

func stateCookieName(provider string) string {
	return fmt.Sprintf("oauth_state_%s", provider)
}

// secureRequest reports whether the request arrived over HTTPS, directly or
// through a terminating proxy.
func secureRequest(ctx *gin.Context) bool {
	return ctx.Request.TLS != nil || ctx.GetHeader("X-Forwarded-Proto") == "https"
}

// Encode serializes a credential to its cookie value.
func (s *CookieStore) Encode(cred *model.Credential) (string, error) {
	raw, err := json.Marshal(cred)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode parses a cookie value back into a credential. A malformed blob is
// an error; expiry is the caller's concern.
func (s *CookieStore) Decode(value string) (*model.Credential, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("malformed credential cookie: %w", err)
	}
	var cred model.Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return nil, fmt.Errorf("malformed credential cookie: %w", err)
	}
	return &cred, nil
}

// WriteCredential persists the credential in the provider's cookie.
func (s *CookieStore) WriteCredential(ctx *gin.Context, provider string, cred *model.Credential) error {
	value, err := s.Encode(cred)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(credentialCookieName(provider), value, credentialMaxAge, "/", "", secureRequest(ctx), true)
	return nil
}

// ReadCredential returns the provider credential for the request. A missing,
// malformed, or expired cookie yields ErrUnauthenticated.
func (s *CookieStore) ReadCredential(ctx *gin.Context, provider string) (*model.Credential, error) {
	value, err := ctx.Cookie(credentialCookieName(provider))
	if err != nil || value == "" {
		return nil, model.ErrUnauthenticated
	}
	cred, err := s.Decode(value)
	if err != nil {
		return nil, model.ErrUnauthenticated
	}
	if cred.Expired(time.Now()) {
		return nil, model.ErrUnauthenticated
	}
	return cred, nil
}

// ClearCredential drops the provider credential cookie. Idempotent.
func (s *CookieStore) ClearCredential(ctx *gin.Context, provider string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(credentialCookieName(provider), "", -1, "/", "", secureRequest(ctx), true)
}

// WriteState persists the one-time OAuth state value for the provider.
func (s *CookieStore) WriteState(ctx *gin.Context, provider, state string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(stateCookieName(provider), state, stateMaxAge, "/", "", secureRequest(ctx), true)
}

// ReadState returns the stored state value, or "" when absent.
func (s *CookieStore) ReadState(ctx *gin.Context, provider string) string {
	value, err := ctx.Cookie(stateCookieName(provider))
	if err != nil {
		return ""
	}
	return value
}

// ClearState consumes the state cookie. Called on every callback, success or
// failure, so a state value is single-use.
func (s *CookieStore) ClearState(ctx *gin.Context, provider string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(stateCookieName(provider), "", -1, "/", "", secureRequest(ctx), true)
}

package model

import "time"

// Credential holds a user's authorization with a third-party provider.
// It lives exclusively in a browser cookie; the server treats every
// incoming credential as caller-supplied and untrusted.
type Credential struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	// ExpiresAt is epoch milliseconds. An expired credential is treated as absent.
	ExpiresAt    int64  `json:"expires_at"`
	AccountEmail string `json:"account_email,omitempty"`
}

// Expired reports whether the credential must not be used anymore.
func (c *Credential) Expired(now time.Time) bool {
	return c.ExpiresAt <= now.UnixMilli()
}

// ExpiryTime returns ExpiresAt as a time.Time.
func (c *Credential) ExpiryTime() time.Time {
	return time.UnixMilli(c.ExpiresAt)
}

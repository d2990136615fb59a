package tiktok

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"postpilot/domain/model"
	"postpilot/domain/repository"
	"postpilot/infrastructure/logger"
)

const (
	authorizeURL    = "https://www.tiktok.com/v2/auth/authorize/"
	defaultTokenURL = "https://open.tiktokapis.com/v2/oauth/token/"
	oauthScopes     = "user.info.basic,video.list"
)

// OAuthProvider implements the TikTok authorization-code flow. TikTok's v2
// endpoints use client_key instead of client_id, so the exchange is done by
// hand rather than through x/oauth2.
type OAuthProvider struct {
	clientKey    string
	clientSecret string
	redirectURI  string
	tokenURL     string
	httpClient   *http.Client
}

// NewOAuthProvider builds the TikTok OAuth adapter.
func NewOAuthProvider(clientKey, clientSecret, redirectURI string) repository.IOAuthProvider {
	return &OAuthProvider{
		clientKey:    clientKey,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		tokenURL:     defaultTokenURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
	}
}

// NewOAuthProviderWithTokenURL overrides the token endpoint. Used by tests.
func NewOAuthProviderWithTokenURL(clientKey, clientSecret, redirectURI, tokenURL string) repository.IOAuthProvider {
	p := NewOAuthProvider(clientKey, clientSecret, redirectURI).(*OAuthProvider)
	p.tokenURL = tokenURL
	return p
}

func (p *OAuthProvider) Name() string {
	return "tiktok"
}

func (p *OAuthProvider) Configured() bool {
	return p.clientKey != "" && p.clientSecret != "" && p.redirectURI != ""
}

// AuthCodeURL builds the TikTok authorization URL carrying the state value.
func (p *OAuthProvider) AuthCodeURL(state string) string {
	q := url.Values{}
	q.Set("client_key", p.clientKey)
	q.Set("scope", oauthScopes)
	q.Set("response_type", "code")
	q.Set("redirect_uri", p.redirectURI)
	q.Set("state", state)
	return authorizeURL + "?" + q.Encode()
}

// Exchange trades the authorization code for tokens at the v2 token endpoint.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*model.Credential, error) {
	form := url.Values{}
	form.Set("client_key", p.clientKey)
	form.Set("client_secret", p.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", p.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("tiktok token exchange request error")
		return nil, &model.ProviderError{Provider: "tiktok", StatusCode: http.StatusBadGateway, Message: "token exchange request failed"}
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	var data struct {
		AccessToken      string `json:"access_token"`
		RefreshToken     string `json:"refresh_token"`
		ExpiresIn        int64  `json:"expires_in"`
		OpenID           string `json:"open_id"`
		Scope            string `json:"scope"`
		TokenType        string `json:"token_type"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &model.ProviderError{Provider: "tiktok", StatusCode: resp.StatusCode, Message: "malformed token response"}
	}
	if resp.StatusCode != http.StatusOK || data.Error != "" || data.AccessToken == "" {
		logger.GetLogger().WithField("error", data.Error).Error("tiktok token exchange failed")
		return nil, &model.ProviderError{Provider: "tiktok", StatusCode: resp.StatusCode, Message: data.Error}
	}

	return &model.Credential{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(data.ExpiresIn) * time.Second).UnixMilli(),
	}, nil
}

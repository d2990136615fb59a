package googlephotos

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"postpilot/domain/model"
	"postpilot/domain/repository"
	"postpilot/infrastructure/logger"
)

const photosReadOnlyScope = "https://www.googleapis.com/auth/photoslibrary.readonly"

// OAuthProvider implements the Google authorization-code flow for the Photos
// Library scope. After the exchange, the account email is resolved via the
// userinfo endpoint so the dashboard can display which account is connected.
type OAuthProvider struct {
	config *oauth2.Config
}

// NewOAuthProvider builds the Google Photos OAuth adapter.
func NewOAuthProvider(clientID, clientSecret, redirectURI string) repository.IOAuthProvider {
	return &OAuthProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes: []string{
				photosReadOnlyScope,
				goauth2.UserinfoEmailScope,
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (p *OAuthProvider) Name() string {
	return "google-photos"
}

func (p *OAuthProvider) Configured() bool {
	return p.config.ClientID != "" && p.config.ClientSecret != "" && p.config.RedirectURL != ""
}

// AuthCodeURL builds the Google consent URL. Offline access is requested so a
// refresh token accompanies the credential.
func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades the authorization code for tokens and resolves the account
// email. A userinfo failure is logged but does not fail the connection.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*model.Credential, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("google token exchange failed")
		return nil, &model.ProviderError{Provider: "google-photos", StatusCode: 502, Message: "token exchange failed"}
	}

	cred := &model.Credential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry.UnixMilli(),
	}

	svc, err := goauth2.NewService(ctx, option.WithTokenSource(p.config.TokenSource(ctx, token)))
	if err == nil {
		if info, infoErr := svc.Userinfo.Get().Do(); infoErr == nil {
			cred.AccountEmail = info.Email
		} else {
			logger.GetLogger().WithField("error", infoErr).Warn("google userinfo lookup failed")
		}
	}
	return cred, nil
}

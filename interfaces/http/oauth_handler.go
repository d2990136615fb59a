package http

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"postpilot/domain/dto"
	"postpilot/domain/repository"
	"postpilot/infrastructure/logger"
	"postpilot/infrastructure/tokenstore"
)

const dashboardPath = "/dashboard"

// IOAuthHandler defines the OAuth connection surface shared by all providers.
type IOAuthHandler interface {
	Start(ctx *gin.Context)
	Callback(ctx *gin.Context)
	Disconnect(ctx *gin.Context)
	Status(ctx *gin.Context)
}

// OAuthHandler drives the authorization-code flow for every registered
// provider. The state cookie is the sole CSRF defense on the flow: a
// callback whose state does not match the stored value is rejected before
// any token-exchange call.
type OAuthHandler struct {
	providers map[string]repository.IOAuthProvider
	store     *tokenstore.CookieStore
}

// NewOAuthHandler registers the given providers under their names.
func NewOAuthHandler(store *tokenstore.CookieStore, providers ...repository.IOAuthProvider) IOAuthHandler {
	byName := make(map[string]repository.IOAuthProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &OAuthHandler{providers: byName, store: store}
}

func randomState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func (h *OAuthHandler) provider(ctx *gin.Context) (repository.IOAuthProvider, bool) {
	name := ctx.Param("provider")
	p, ok := h.providers[name]
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorRes{Error: "unknown_provider"})
		return nil, false
	}
	return p, true
}

// Start handles GET /auth/:provider/start.
func (h *OAuthHandler) Start(ctx *gin.Context) {
	p, ok := h.provider(ctx)
	if !ok {
		return
	}
	if !p.Configured() {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorRes{Error: "service_unavailable", Details: "provider not configured"})
		return
	}

	state := randomState()
	h.store.WriteState(ctx, p.Name(), state)
	ctx.Redirect(http.StatusFound, p.AuthCodeURL(state))
}

// Callback handles GET /auth/:provider/callback. The stored state is
// consumed on every callback, success or failure.
func (h *OAuthHandler) Callback(ctx *gin.Context) {
	p, ok := h.provider(ctx)
	if !ok {
		return
	}

	storedState := h.store.ReadState(ctx, p.Name())
	h.store.ClearState(ctx, p.Name())

	state := ctx.Query("state")
	if storedState == "" || state == "" || state != storedState {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid_state"})
		return
	}

	if errParam := ctx.Query("error"); errParam != "" {
		logger.GetLogger().WithField("provider", p.Name()).WithField("error", errParam).Warn("oauth callback returned error")
		ctx.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "authentication_failed"})
		return
	}

	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "bad_request", Details: "missing code"})
		return
	}

	cred, err := p.Exchange(ctx.Request.Context(), code)
	if err != nil {
		logger.GetLogger().WithField("provider", p.Name()).WithField("error", err).Error("token exchange failed")
		ctx.JSON(http.StatusBadGateway, dto.ErrorRes{Error: "authentication_failed"})
		return
	}
	if err := h.store.WriteCredential(ctx, p.Name(), cred); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, dashboardPath)
}

// Disconnect handles DELETE /api/integrations/:provider. Clearing an absent
// credential still succeeds.
func (h *OAuthHandler) Disconnect(ctx *gin.Context) {
	p, ok := h.provider(ctx)
	if !ok {
		return
	}
	h.store.ClearCredential(ctx, p.Name())
	ctx.JSON(http.StatusOK, dto.SuccessRes{Success: true})
}

// Status handles GET /api/integrations/:provider/status.
func (h *OAuthHandler) Status(ctx *gin.Context) {
	p, ok := h.provider(ctx)
	if !ok {
		return
	}
	cred, err := h.store.ReadCredential(ctx, p.Name())
	if err != nil {
		ctx.JSON(http.StatusOK, dto.IntegrationStatus{Connected: false})
		return
	}
	ctx.JSON(http.StatusOK, dto.IntegrationStatus{
		Connected:    true,
		AccountEmail: cred.AccountEmail,
		ExpiresAt:    cred.ExpiresAt,
	})
}

package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"postpilot/domain/dto"
	"postpilot/usecase"
)

// IBillingHandler defines the billing endpoints.
type IBillingHandler interface {
	Checkout(ctx *gin.Context)
}

type BillingHandler struct {
	billingUseCase usecase.IBillingUseCase
}

func NewBillingHandler(billingUseCase usecase.IBillingUseCase) IBillingHandler {
	return &BillingHandler{billingUseCase: billingUseCase}
}

// requestOrigin derives scheme://host from the request itself so checkout
// return URLs stay correct across environments.
func requestOrigin(ctx *gin.Context) string {
	if origin := ctx.GetHeader("Origin"); origin != "" {
		return origin
	}
	scheme := "http"
	if ctx.Request.TLS != nil || ctx.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	if ctx.Request.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s://%s", scheme, ctx.Request.Host)
}

// Checkout handles POST /api/billing/checkout. Validation failures never
// reach the payment provider.
func (h *BillingHandler) Checkout(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "bad_request", Details: "invalid JSON body"})
		return
	}
	session, err := h.billingUseCase.Checkout(ctx.Request.Context(), &req, requestOrigin(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

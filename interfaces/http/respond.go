package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"postpilot/domain/dto"
	"postpilot/domain/model"
	"postpilot/infrastructure/logger"
)

// writeError maps domain errors onto the uniform {error, details} contract.
// Provider payloads are reduced to a short details string and never forwarded
// verbatim.
func writeError(ctx *gin.Context, err error) {
	var validationErr *model.ValidationError
	var providerErr *model.ProviderError

	switch {
	case errors.Is(err, model.ErrUnauthenticated):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthenticated"})
	case errors.Is(err, model.ErrNotConfigured):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorRes{Error: "service_unavailable", Details: "provider not configured"})
	case errors.Is(err, model.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorRes{Error: "not_found"})
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "bad_request", Details: validationErr.Error()})
	case errors.As(err, &providerErr):
		ctx.JSON(http.StatusBadGateway, dto.ErrorRes{Error: "provider_error", Details: providerErr.Error()})
	default:
		logger.GetLogger().WithField("error", err).Error("unexpected handler error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal_error"})
	}
}

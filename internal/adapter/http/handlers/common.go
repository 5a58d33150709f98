package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"repairdesk/internal/usecase"
	"repairdesk/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HeaderPerformedBy names the staff member behind a request. It is opaque to
// the service and only recorded on the records it touches.
const HeaderPerformedBy = "X-Performed-By"

func performedBy(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderPerformedBy))
}

// bindJSON binds the body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondAppError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for routes whose body may be empty.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		respondAppError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return false
	}
	return true
}

func respondError(c *gin.Context, err error) {
	respondAppError(c, mapError(err))
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	ev := log.Warn()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(appErr.Err).
		Str("code", appErr.Code).
		Int("status", appErr.HTTPStatus).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Str("performed_by", performedBy(c)).
		Msg("[http][handler] request failed")
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapError renders payment gateway failures with their own codes; every
// other error goes through the domain taxonomy.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_PROVIDER_PAYLOAD", "Invalid payment provider payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Card payments are not available", err, http.StatusServiceUnavailable)
	}
	return pkg.FromError(err)
}

package v1

import (
	"errors"
	"net/http"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, indicators.ErrNoPrices):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, accounts.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, recovery.ErrRetriesExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Server side failures never
// expose the underlying error text.
func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		message = recovery.GenericFailureMessage
	case http.StatusInternalServerError:
		message = "error interno del servidor"
	}
	ctx.JSON(status, ErrorResponse{Message: message})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kinmelhub/kinmel-api/services"
)

const (
	msgInvalidInput        = "invalid input"
	msgInternalServerError = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// respondWithServiceError maps the service layer's sentinel errors onto
// HTTP statuses and surfaces their reason to the client.
func respondWithServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDiscountNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidCartLine),
		errors.Is(err, services.ErrUnknownPaymentMethod),
		errors.Is(err, services.ErrMissingTransactionRef),
		errors.Is(err, services.ErrMissingEvidence),
		errors.Is(err, services.ErrInvalidDiscountType),
		errors.Is(err, services.ErrInvalidDiscountValue),
		errors.Is(err, services.ErrDiscountInactive),
		errors.Is(err, services.ErrDiscountExpired),
		errors.Is(err, services.ErrDiscountUsageExceeded),
		errors.Is(err, services.ErrDiscountMinimumNotMet):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}

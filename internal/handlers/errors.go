package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/ledger"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerErrorResponse builds the 422 body for a rejected entry.
func ledgerErrorResponse(verr *ledger.ValidationError) dto.LedgerErrorResponse {
	resp := dto.LedgerErrorResponse{
		Error:       verr.Error(),
		Kind:        verr.KindName(),
		TotalDebit:  verr.TotalDebit,
		TotalCredit: verr.TotalCredit,
		AccountID:   verr.AccountID,
	}
	if errors.Is(verr, ledger.ErrUnknownAccount) || errors.Is(verr, ledger.ErrNegativeAmount) {
		line := verr.Line
		resp.Line = &line
	}
	return resp
}

// respondError maps a service error onto a status code and JSON body.
// fallback is the message used for unexpected failures, whose detail is
// logged but not returned.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warn("Entry rejected by ledger", slog.String("kind", verr.KindName()), slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, ledgerErrorResponse(verr))
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// requestScope pulls the authenticated user and tenant off the request.
// It writes the error response itself and returns ok=false when either is
// missing.
func requestScope(c *gin.Context, logger *slog.Logger) (userID, tenantID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	tenantID, ok = middleware.GetTenantIDFromContext(c)
	if !ok {
		logger.Error("Tenant ID not found in context")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tenant required"})
		return "", "", false
	}
	return userID, tenantID, true
}

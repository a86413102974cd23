package handlers

import (
	"errors"
	"net/http"

	"lovestore-backend/ledger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondLedgerError translates ledger sentinel errors into HTTP statuses.
// Unexpected errors become a generic 500 so internals never leak to clients.
func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	case errors.Is(err, ledger.ErrQuotaExceeded):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Daily reward already claimed. Come back tomorrow!"})
	case errors.Is(err, ledger.ErrInvalidOrUsedCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or already used code"})
	case errors.Is(err, ledger.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{"error": "Code already exists"})
	case errors.Is(err, ledger.ErrInsufficientBalance):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Not enough points"})
	case errors.Is(err, ledger.ErrCostMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart total does not match item prices"})
	case errors.Is(err, ledger.ErrInvalidCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart"})
	case errors.Is(err, ledger.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage temporarily unavailable, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// currentUserID reads the authenticated user id set by AuthMiddleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}

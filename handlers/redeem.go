package handlers

import (
	"net/http"

	"lovestore-backend/ledger"
	"lovestore-backend/utils"

	"github.com/gin-gonic/gin"
)

type RedeemHandler struct {
	Ledger *ledger.Service
}

// Redeem consumes a gift code and credits its value to the caller.
func (h *RedeemHandler) Redeem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	value, err := h.Ledger.RedeemCode(c.Request.Context(), userID, req.Code)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	user, _, err := h.Ledger.GetAccount(c.Request.Context(), userID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"value":   value,
		"balance": user.Balance,
	})
}

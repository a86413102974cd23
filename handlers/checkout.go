package handlers

import (
	"net/http"

	"lovestore-backend/ledger"
	"lovestore-backend/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	Ledger *ledger.Service
}

// Checkout debits the cart total from the caller's balance. The total in
// the request is cross-checked against the lines server-side.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Items []ledger.CartLine `json:"items" binding:"required"`
		Total int               `json:"total"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	user, err := h.Ledger.Checkout(c.Request.Context(), userID, req.Items, req.Total)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed",
		"balance": user.Balance,
	})
}

package handlers

import (
	"math/rand"
	"net/http"

	"lovestore-backend/ledger"

	"github.com/gin-gonic/gin"
)

// wheelPrizes mirrors the segments on the frontend wheel. The draw is
// server-side; the client only animates to whatever segment we return.
var wheelPrizes = []int{50, 10, 100, 250, 500, 1000, 5, 25}

type WheelHandler struct {
	Ledger *ledger.Service

	// Intn is injectable for tests; nil means math/rand.
	Intn func(n int) int
}

func (h *WheelHandler) draw() int {
	intn := h.Intn
	if intn == nil {
		intn = rand.Intn
	}
	return wheelPrizes[intn(len(wheelPrizes))]
}

// Spin draws a prize and credits it against the daily quota.
func (h *WheelHandler) Spin(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	prize := h.draw()
	user, err := h.Ledger.ClaimDailyReward(c.Request.Context(), userID, prize)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	_, remaining, err := h.Ledger.QuotaStatus(c.Request.Context(), userID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prize":           prize,
		"balance":         user.Balance,
		"spins_remaining": remaining,
	})
}

// Status reports whether the account can still spin today.
func (h *WheelHandler) Status(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	eligible, remaining, err := h.Ledger.QuotaStatus(c.Request.Context(), userID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"can_spin":        eligible,
		"spins_remaining": remaining,
	})
}

package handlers

import (
	"errors"
	"net/http"

	"lovestore-backend/ledger"
	"lovestore-backend/utils"

	"github.com/gin-gonic/gin"
)

type CodeHandler struct {
	Ledger *ledger.Service
}

// ListCodes returns every code, consumed ones included.
func (h *CodeHandler) ListCodes(c *gin.Context) {
	codes, err := h.Ledger.ListCodes(c.Request.Context())
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, codes)
}

func (h *CodeHandler) CreateCode(c *gin.Context) {
	var req struct {
		Code  string `json:"code" binding:"required"`
		Value int    `json:"value" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	code, err := h.Ledger.CreateCode(c.Request.Context(), req.Code, req.Value)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, code)
}

func (h *CodeHandler) DeleteCode(c *gin.Context) {
	raw := c.Param("code")
	if err := h.Ledger.DeleteCode(c.Request.Context(), raw); err != nil {
		if errors.Is(err, ledger.ErrInvalidOrUsedCode) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Code not found"})
			return
		}
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Code deleted"})
}

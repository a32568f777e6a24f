package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roomgate/roomgate/internal/handlers/dto"
	"github.com/roomgate/roomgate/internal/tokens"
)

type TokenHandler struct {
	issuer *tokens.Issuer
}

func NewTokenHandler(issuer *tokens.Issuer) *TokenHandler {
	return &TokenHandler{issuer: issuer}
}

// IssueToken mints a join credential for the room in the path.
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var req dto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grant, err := h.issuer.Issue(c.Param("id"), req.Role, req.DisplayName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.IssueTokenResponse{
		Token:     grant.Token,
		Endpoint:  grant.Endpoint,
		ExpiresAt: grant.ExpiresAt.Format(time.RFC3339),
	})
}

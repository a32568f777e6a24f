package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomgate/roomgate/internal/apperrors"
)

// writeError maps the error taxonomy onto HTTP. Validation and
// unavailability keep their specific reasons; repository and signing
// failures render generically so storage details never leak.
func writeError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	var nfe *apperrors.NotFoundError
	if errors.As(err, &nfe) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	if errors.Is(err, apperrors.ErrRoomUnavailable) {
		// One opaque condition for both missing and closed rooms.
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrRoomUnavailable.Error()})
		return
	}

	var se *apperrors.SigningError
	if errors.As(err, &se) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token service unavailable"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

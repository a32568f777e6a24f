package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/roomgate/roomgate/pkg/auth"
)

// AdminKey guards mutating room endpoints with a bearer key checked against
// a bcrypt hash. An empty hash disables the guard.
func AdminKey(keyHash string) gin.HandlerFunc {
	if keyHash == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		key, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid admin key"})
			c.Abort()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid admin key"})
			c.Abort()
			return
		}

		c.Next()
	}
}

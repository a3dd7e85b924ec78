package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-hotseat/pkg/auth"
	"github.com/iamasit07/connect4-hotseat/pkg/httputil"
)

const GameIDKey = "game_id"

// GameAuthMiddleware makes sure the caller holds the token issued for the game in
// the :id path parameter.
func GameAuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := tokens.ValidateForGame(tokenString, c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(GameIDKey, claims.GameID)
		c.Next()
	}
}

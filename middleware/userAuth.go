package middleware

import (
	"net/http"
	"strings"

	userRepo "orderly/database/repository/user"
	"orderly/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key carrying the authenticated client.
const UserIDKey = "userID"

// JWTAuthUserMiddleware authenticates clients by bearer token against the
// stored token hash.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Failure(utils.CodeAuthenticationRequired, "Authentication required"))
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Failure(utils.CodeAuthenticationRequired, "Authentication required"))
			return
		}

		usr, err := repo.GetByID(userID)
		if err != nil || usr == nil || usr.TokenHash == "" || usr.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Failure(utils.CodeAuthenticationRequired, "Authentication required"))
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CallerUserID returns the authenticated client's ID, or "" when the
// request carried no valid identity.
func CallerUserID(c *gin.Context) string {
	id, _ := c.Get(UserIDKey)
	s, _ := id.(string)
	return s
}

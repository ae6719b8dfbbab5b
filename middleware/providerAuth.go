package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	providerRepo "orderly/database/repository/provider"
	"orderly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ProviderIDKey is the gin context key carrying the authenticated caller.
const ProviderIDKey = "providerID"

// JWTAuthProviderMiddleware authenticates providers by bearer token. The
// token hash is checked against the Redis auth cache first, falling back to
// the stored hash on the provider record.
func JWTAuthProviderMiddleware(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Failure(utils.CodeAuthenticationRequired, "Authentication required"))
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		providerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || providerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Failure(utils.CodeAuthenticationRequired, "Authentication required"))
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + providerID

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash == computedHash {
				// Refresh the cache TTL on a hit.
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set(ProviderIDKey, providerID)
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Failure(utils.CodeAuthenticationRequired, "Authentication required"))
			return
		} else if err != redis.Nil {
			logger.Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
		}

		// Cache miss: check the stored token hash.
		prov, err := repo.GetByID(providerID)
		if err != nil || prov == nil || prov.Security.TokenHash == "" || prov.Security.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Failure(utils.CodeAuthenticationRequired, "Authentication required"))
			return
		}

		_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		c.Set(ProviderIDKey, providerID)
		c.Next()
	}
}

// CallerProviderID returns the authenticated provider ID, or "" when the
// request carries no identity.
func CallerProviderID(c *gin.Context) string {
	if v, ok := c.Get(ProviderIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

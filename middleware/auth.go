package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mockview/utils"
)

// authCachePrefix keys validated token hashes in the auth cache.
const authCachePrefix = "auth:"

// JWTAuthMiddleware validates the bearer token, caches the validated hash
// in redis, and stores userID and role in the gin context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		// Token hash caching cuts signature verification to a redis GET on
		// repeat requests. A cold or missing cache falls through to full
		// validation, which already happened above.
		if authCache := utils.GetAuthCacheClient(); authCache != nil {
			ctx := context.Background()
			cacheKey := authCachePrefix + userID
			computedHash := utils.HashToken(tokenString)
			cachedHash, getErr := authCache.Get(ctx, cacheKey).Result()
			if getErr != nil || cachedHash != computedHash {
				_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
			} else {
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			}
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

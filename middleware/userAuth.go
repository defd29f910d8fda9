package middleware

import (
	"context"
	"net/http"
	"strings"

	"menagio/models"
	"menagio/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ContextAuthSession is the gin context key holding the caller's AuthSession.
const ContextAuthSession = "authSession"

// JWTAuthMiddleware validates the bearer token and attaches an explicit
// AuthSession to the request context. Tokens revoked by sign-out fail the
// cached-hash check even while the JWT itself is still unexpired.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, email, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctx := context.Background()
		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, utils.AuthCachePrefix+userID).Result()
		switch {
		case err == nil:
			if cachedHash != utils.HashToken(tokenString) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
				return
			}
			// Refresh the sliding TTL on successful validation.
			_ = authCache.Expire(ctx, utils.AuthCachePrefix+userID, utils.AuthCacheTTL).Err()
		case err == redis.Nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		default:
			// Cache unavailable: accept the signed token rather than lock
			// everyone out.
			zap.L().Warn("auth cache unavailable, accepting signed token", zap.Error(err))
		}

		c.Set(ContextAuthSession, models.AuthSession{
			UserID: userID,
			Email:  email,
			Role:   models.Role(role),
			Token:  tokenString,
		})
		c.Set("userID", userID)
		c.Next()
	}
}

// AuthSessionFromContext returns the AuthSession set by JWTAuthMiddleware.
func AuthSessionFromContext(c *gin.Context) (models.AuthSession, bool) {
	v, ok := c.Get(ContextAuthSession)
	if !ok {
		return models.AuthSession{}, false
	}
	session, ok := v.(models.AuthSession)
	return session, ok
}

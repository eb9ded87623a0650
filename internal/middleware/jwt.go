package middleware

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"communityfund/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// revokedKey builds the denylist key for a logged-out token
func revokedKey(token string) string {
	return "session:revoked:" + token
}

// JWTAuthMiddleware validates session tokens and extracts the calling user.
// Tokens revoked via logout are rejected even before their natural expiry.
func JWTAuthMiddleware(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the session token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		// Reject tokens that were explicitly logged out. When Redis is
		// unreachable this check is skipped and a revoked token stays
		// usable until its natural expiry: availability wins over
		// revocation here, bounded by the 24h token lifetime.
		if n, err := rdb.Exists(context.Background(), revokedKey(tokenStr)).Result(); err == nil && n > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has been logged out"})
			return
		}
		c.Set("userID", claims.UserID) // Store userID in context
		c.Set("token", tokenStr)       // Raw token, needed by logout
		c.Next()                       // Proceed to the next handler
	}
}

// OptionalJWTMiddleware sets userID when a valid token is supplied but never
// rejects the request. Used by the public overview route, which shows extra
// data to authenticated callers.
func OptionalJWTMiddleware(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next() // Anonymous request
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.Next() // Treat a bad token as anonymous here
			return
		}
		// Same fail-open behavior as the required-auth middleware
		if n, err := rdb.Exists(context.Background(), revokedKey(tokenStr)).Result(); err == nil && n > 0 {
			c.Next() // Logged-out token, also anonymous
			return
		}
		c.Set("userID", claims.UserID)
		c.Next()
	}
}

// RevokeToken adds a token to the denylist until its natural expiry
func RevokeToken(ctx context.Context, rdb *redis.Client, token string) error {
	return rdb.Set(ctx, revokedKey(token), "1", utils.TokenLifetime).Err()
}

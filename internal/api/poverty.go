package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"communityfund/internal/domain" // Importing domain models
	"communityfund/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// povertyCacheKey caches the seeded reference rows; they change so rarely
// that a short TTL is plenty
const povertyCacheKey = "poverty:regions"

// ListPovertyRegionsHandler returns every seeded poverty row. Read-only,
// unfiltered, unpaginated; served from Redis when possible.
func ListPovertyRegionsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var regions []domain.PovertyRegion
		found, err := utils.GetCache(ctx, rdb, povertyCacheKey, &regions)
		if err == nil && found {
			c.JSON(http.StatusOK, regions)
			return
		}
		if err := db.Find(&regions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch poverty data"})
			return
		}
		_ = utils.SetCache(ctx, rdb, povertyCacheKey, regions, 5*time.Minute)
		c.JSON(http.StatusOK, regions)
	}
}

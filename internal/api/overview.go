package api

import (
	"net/http" // HTTP status codes

	"communityfund/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// overviewLimit caps the recent-items lists on the landing payload
const overviewLimit = 3

// OverviewHandler returns the landing payload: the newest active campaigns
// and the poverty dataset for everyone, plus the caller's recent budgets
// when the request carries a valid session token.
func OverviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var campaigns []domain.Campaign
		if err := db.Where("is_active = ?", true).
			Order("created_at desc").
			Limit(overviewLimit).
			Find(&campaigns).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaigns"})
			return
		}
		var regions []domain.PovertyRegion
		if err := db.Find(&regions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch poverty data"})
			return
		}
		resp := gin.H{
			"campaigns":    campaigns,
			"poverty_data": regions,
		}
		// Authenticated callers also see their most recent budgets
		if userID, exists := c.Get("userID"); exists {
			var budgets []domain.Budget
			if err := db.Where("user_id = ?", userID).
				Order("created_at desc").
				Limit(overviewLimit).
				Find(&budgets).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budgets"})
				return
			}
			resp["budgets"] = budgets
		}
		c.JSON(http.StatusOK, resp)
	}
}

package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"communityfund/internal/domain" // Importing domain models
	"communityfund/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// activeCampaignsCacheKey caches the public campaign listing
const activeCampaignsCacheKey = "campaigns:active"

// campaignCacheTTL bounds staleness of the cached listing
const campaignCacheTTL = 60 * time.Second

// CampaignRequest is the payload for creating a crowdfunding campaign
type CampaignRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	TargetAmount  float64 `json:"target_amount" binding:"required,gt=0"` // Fundraising goal
	OrganizerName string  `json:"organizer_name" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	Category      string  `json:"category"`  // education, business, emergency, etc.
	ImageURL      string  `json:"image_url"` // Optional cover image
}

// DonationRequest is the payload for donating to a campaign
type DonationRequest struct {
	CampaignID uint    `json:"campaign_id" binding:"required"` // Target campaign
	Amount     float64 `json:"amount" binding:"required,gt=0"` // Donation amount
	Anonymous  bool    `json:"anonymous"`                      // Hide the donor's name
	Message    string  `json:"message"`                        // Optional message
}

// CreateCampaignHandler starts a new campaign with a zero running total
func CreateCampaignHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("userID"); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CampaignRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		campaign := domain.Campaign{
			Title:         req.Title,
			Description:   req.Description,
			TargetAmount:  req.TargetAmount,
			CurrentAmount: 0,
			OrganizerName: req.OrganizerName,
			Location:      req.Location,
			Category:      req.Category,
			ImageURL:      req.ImageURL,
			IsActive:      true,
		}
		if err := db.Create(&campaign).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"title": req.Title,
				"error": err.Error(),
			}).Error("Failed to create campaign")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
			return
		}
		// The public listing now misses the new campaign; drop it
		_ = utils.DeleteCache(context.Background(), rdb, activeCampaignsCacheKey)
		c.JSON(http.StatusCreated, gin.H{"message": "Campaign created successfully!", "campaign": campaign})
	}
}

// ListActiveCampaignsHandler returns active campaigns, newest first,
// served from Redis when a fresh copy exists
func ListActiveCampaignsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var campaigns []domain.Campaign
		found, err := utils.GetCache(ctx, rdb, activeCampaignsCacheKey, &campaigns)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"campaigns": campaigns, "cached": true})
			return
		}
		if err := db.Where("is_active = ?", true).
			Order("created_at desc").
			Find(&campaigns).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaigns"})
			return
		}
		_ = utils.SetCache(ctx, rdb, activeCampaignsCacheKey, campaigns, campaignCacheTTL)
		c.JSON(http.StatusOK, gin.H{"campaigns": campaigns, "cached": false})
	}
}

// DonateHandler applies a donation to a campaign. The donation row and the
// running-total update commit in one transaction; the increment happens
// SQL-side so concurrent donations never lose updates.
func DonateHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req DonationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var campaign domain.Campaign // Resolve the target campaign
		if err := db.First(&campaign, req.CampaignID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		// Atomic donate: both writes persist or neither does
		err := db.Transaction(func(tx *gorm.DB) error {
			donation := domain.Donation{
				UserID:     userID.(uint),
				CampaignID: campaign.ID,
				Amount:     req.Amount,
				Anonymous:  req.Anonymous,
				Message:    req.Message,
			}
			if err := tx.Create(&donation).Error; err != nil {
				return err // Return error to rollback
			}
			// Increment the running total
			if err := tx.Model(&campaign).
				Update("current_amount", gorm.Expr("current_amount + ?", req.Amount)).Error; err != nil {
				return err // Return error to rollback
			}
			return nil // Commit transaction
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":     userID,
				"campaign_id": campaign.ID,
				"amount":      req.Amount,
				"error":       err.Error(),
			}).Error("Donation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Donation failed"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":     userID,
			"campaign_id": campaign.ID,
			"amount":      req.Amount,
			"anonymous":   req.Anonymous,
		}).Info("Donation applied")
		// Cached listing holds a stale running total now
		_ = utils.DeleteCache(context.Background(), rdb, activeCampaignsCacheKey)
		c.JSON(http.StatusOK, gin.H{"message": "Donation successful!"})
	}
}

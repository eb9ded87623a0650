package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"communityfund/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// BudgetRequest is the payload for creating a monthly budget.
// Category amounts default to 0 when omitted. Income is a pointer so an
// explicit 0 passes validation while a missing field is rejected.
type BudgetRequest struct {
	Month          string   `json:"month" binding:"required"`        // Format: YYYY-MM
	Income         *float64 `json:"income" binding:"required,gte=0"` // Monthly income, must be non-negative
	Housing        float64  `json:"housing" binding:"gte=0"`
	Food           float64  `json:"food" binding:"gte=0"`
	Transportation float64  `json:"transportation" binding:"gte=0"`
	Healthcare     float64  `json:"healthcare" binding:"gte=0"`
	Education      float64  `json:"education" binding:"gte=0"`
	Savings        float64  `json:"savings" binding:"gte=0"`
	Other          float64  `json:"other" binding:"gte=0"`
}

// CreateBudgetHandler records a monthly budget for the authenticated user
func CreateBudgetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req BudgetRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		budget := domain.Budget{
			UserID:         userID.(uint),
			Month:          req.Month,
			Income:         *req.Income,
			Housing:        req.Housing,
			Food:           req.Food,
			Transportation: req.Transportation,
			Healthcare:     req.Healthcare,
			Education:      req.Education,
			Savings:        req.Savings,
			Other:          req.Other,
		}
		if err := db.Create(&budget).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"month":   req.Month,
				"error":   err.Error(),
			}).Error("Failed to create budget")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Budget created successfully", "id": budget.ID})
	}
}

// ListBudgetsHandler returns the authenticated user's budgets, newest first
func ListBudgetsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var budgets []domain.Budget
		if err := db.Where("user_id = ?", userID).
			Order("created_at desc").
			Find(&budgets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budgets"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"budgets": budgets})
	}
}

// DeleteBudgetHandler removes a budget owned by the authenticated user.
// Deleting another user's budget fails with 403 and leaves the row intact.
func DeleteBudgetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		budgetID, err := strconv.Atoi(c.Param("id")) // Budget id from the path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget id"})
			return
		}
		var budget domain.Budget
		if err := db.First(&budget, budgetID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
			return
		}
		// Ownership check before any mutation
		if budget.UserID != userID.(uint) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		if err := db.Delete(&budget).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":   userID,
				"budget_id": budgetID,
				"error":     err.Error(),
			}).Error("Failed to delete budget")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
	}
}

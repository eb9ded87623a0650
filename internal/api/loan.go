package api

import (
	"net/http" // HTTP status codes

	"communityfund/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// LoanApplicationRequest is the payload for submitting a microloan application
type LoanApplicationRequest struct {
	Amount          float64 `json:"amount" binding:"required,gt=0"` // Requested amount
	Purpose         string  `json:"purpose" binding:"required"`     // What the loan is for
	BusinessPlan    string  `json:"business_plan"`                  // Optional plan text
	RepaymentPeriod int     `json:"repayment_period" binding:"required,gt=0"` // In months
}

// SubmitLoanApplicationHandler records a new loan application for the
// authenticated user. Status starts as pending and the interest rate takes
// the fixed default; no route ever transitions the status afterwards.
func SubmitLoanApplicationHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req LoanApplicationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		application := domain.LoanApplication{
			UserID:          userID.(uint),
			Amount:          req.Amount,
			Purpose:         req.Purpose,
			BusinessPlan:    req.BusinessPlan,
			Status:          domain.LoanStatusPending,
			RepaymentPeriod: req.RepaymentPeriod,
			InterestRate:    domain.DefaultInterestRate,
		}
		if err := db.Create(&application).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"amount":  req.Amount,
				"error":   err.Error(),
			}).Error("Failed to submit loan application")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit loan application"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"loan_id": application.ID,
			"amount":  req.Amount,
		}).Info("Loan application submitted")
		c.JSON(http.StatusOK, gin.H{"message": "Loan application submitted successfully!", "id": application.ID})
	}
}

// ListLoanApplicationsHandler returns the authenticated user's applications,
// newest first
func ListLoanApplicationsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var applications []domain.LoanApplication
		if err := db.Where("user_id = ?", userID).
			Order("created_at desc").
			Find(&applications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loan applications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"applications": applications})
	}
}

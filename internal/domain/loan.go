package domain

import "time"

// Loan application statuses
const (
	LoanStatusPending  = "pending"  // Awaiting review
	LoanStatusApproved = "approved" // Accepted
	LoanStatusRejected = "rejected" // Declined
)

// DefaultInterestRate applied to every new application
const DefaultInterestRate = 5.0

// LoanApplication Model
type LoanApplication struct {
	ID              uint      `json:"id" gorm:"primaryKey"`                                    // Primary key
	UserID          uint      `json:"user_id" gorm:"index;not null"`                           // Foreign key to the applying User
	Amount          float64   `json:"amount" gorm:"not null"`                                  // Requested amount
	Purpose         string    `json:"purpose" gorm:"type:text;not null"`                       // What the loan is for
	BusinessPlan    string    `json:"business_plan" gorm:"type:text"`                          // Optional plan text
	Status          string    `json:"status" gorm:"size:20;default:pending"`                   // pending, approved, rejected
	RepaymentPeriod int       `json:"repayment_period"`                                        // In months
	InterestRate    float64   `json:"interest_rate" gorm:"default:5.0"`                        // Annual rate in percent
	CreatedAt       time.Time `json:"created_at"`                                              // Timestamp of creation
	User            User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"` // Applying user
}

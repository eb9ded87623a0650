package domain

import "time"

// Donation Model
type Donation struct {
	ID         uint      `json:"id" gorm:"primaryKey"`                                        // Primary key
	UserID     uint      `json:"user_id" gorm:"index;not null"`                               // Foreign key to the donating User
	CampaignID uint      `json:"campaign_id" gorm:"index;not null"`                           // Foreign key to the Campaign
	Amount     float64   `json:"amount" gorm:"not null"`                                      // Donated amount
	Anonymous  bool      `json:"anonymous" gorm:"default:false"`                              // Hide the donor's name on listings
	Message    string    `json:"message" gorm:"type:text"`                                    // Optional message to the campaign
	CreatedAt  time.Time `json:"created_at"`                                                  // Timestamp of creation
	User       User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`     // Donating user
	Campaign   Campaign  `json:"-" gorm:"foreignKey:CampaignID;constraint:OnDelete:RESTRICT"` // Target campaign
}

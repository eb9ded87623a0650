package domain

import "time"

// Campaign Model: a crowdfunding campaign with a denormalized running total.
// CurrentAmount must always equal the sum of its donation amounts; it is only
// ever updated inside the same transaction that inserts the Donation row.
type Campaign struct {
	ID            uint      `json:"id" gorm:"primaryKey"`                 // Primary key
	Title         string    `json:"title" gorm:"size:200;not null"`       // Campaign title
	Description   string    `json:"description" gorm:"type:text;not null"` // Long description
	TargetAmount  float64   `json:"target_amount" gorm:"not null"`        // Fundraising goal
	CurrentAmount float64   `json:"current_amount" gorm:"default:0"`      // Running total of donations
	OrganizerName string    `json:"organizer_name" gorm:"size:100;not null"` // Who runs the campaign
	Location      string    `json:"location" gorm:"size:100;not null"`    // Where it is based
	Category      string    `json:"category" gorm:"size:50"`              // education, business, emergency, etc.
	ImageURL      string    `json:"image_url" gorm:"size:200"`            // Optional cover image
	IsActive      bool      `json:"is_active" gorm:"default:true"`        // Whether the campaign is listed
	CreatedAt     time.Time `json:"created_at"`                           // Timestamp of creation
}

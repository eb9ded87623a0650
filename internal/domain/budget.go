package domain

import "time"

// Budget Model: one household budget per user per month
type Budget struct {
	ID             uint      `json:"id" gorm:"primaryKey"`                                        // Primary key
	UserID         uint      `json:"user_id" gorm:"index;not null"`                               // Foreign key to the owning User
	Month          string    `json:"month" gorm:"size:7;not null"`                                // Format: YYYY-MM
	Income         float64   `json:"income" gorm:"not null"`                                      // Monthly income
	Housing        float64   `json:"housing" gorm:"default:0"`                                    // Housing spend
	Food           float64   `json:"food" gorm:"default:0"`                                       // Food spend
	Transportation float64   `json:"transportation" gorm:"default:0"`                             // Transportation spend
	Healthcare     float64   `json:"healthcare" gorm:"default:0"`                                 // Healthcare spend
	Education      float64   `json:"education" gorm:"default:0"`                                  // Education spend
	Savings        float64   `json:"savings" gorm:"default:0"`                                    // Savings allocation
	Other          float64   `json:"other" gorm:"default:0"`                                      // Everything else
	CreatedAt      time.Time `json:"created_at"`                                                  // Timestamp of creation
	User           User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"` // Owning user (never preloaded implicitly)
}

package domain

import "time"

// PovertyRegion Model: static reference row shown on the neighborhood map
type PovertyRegion struct {
	ID               uint      `json:"id" gorm:"primaryKey"`           // Primary key
	Region           string    `json:"region" gorm:"size:100;not null"` // Neighborhood name
	PovertyRate      float64   `json:"poverty_rate" gorm:"not null"`   // Percent of residents below the poverty line
	Population       int       `json:"population"`                     // Resident count
	MedianIncome     float64   `json:"median_income"`                  // Annual median income
	UnemploymentRate float64   `json:"unemployment_rate"`              // Percent unemployed
	Latitude         float64   `json:"latitude"`                       // Map coordinate
	Longitude        float64   `json:"longitude"`                      // Map coordinate
	LastUpdated      time.Time `json:"last_updated" gorm:"autoUpdateTime"` // When the row was last touched
}

package domain

import "time"

// User Model
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`                         // Primary key
	Username    string    `json:"username" gorm:"uniqueIndex;size:80;not null"` // Unique username
	Email       string    `json:"email" gorm:"uniqueIndex;size:120;not null"`   // Unique email address
	Password    string    `json:"-" gorm:"size:120;not null"`                   // Hashed password, never serialized
	IncomeLevel string    `json:"income_level" gorm:"size:50"`                  // low, medium, high
	Location    string    `json:"location" gorm:"size:100"`                     // Free-form neighborhood/city
	CreatedAt   time.Time `json:"created_at"`                                   // Timestamp of creation
}

package db

import (
	"communityfund/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate creates or updates the database schema and seeds reference data
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Budget{},
		&domain.LoanApplication{},
		&domain.Campaign{},
		&domain.Donation{},
		&domain.PovertyRegion{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := SeedPovertyRegions(db); err != nil {
		logrus.Fatalf("poverty data seeding failed: %v", err)
	}
	logrus.Info("Migration completed.")
}

package db

import (
	"communityfund/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// DefaultPovertyRegions returns the fixed reference rows shown on the map
func DefaultPovertyRegions() []domain.PovertyRegion {
	return []domain.PovertyRegion{
		{Region: "Downtown Eastside", PovertyRate: 24.5, Population: 18000, MedianIncome: 28000, UnemploymentRate: 15.2, Latitude: 49.283, Longitude: -123.100},
		{Region: "Hastings-Sunrise", PovertyRate: 18.2, Population: 22000, MedianIncome: 32000, UnemploymentRate: 12.1, Latitude: 49.281, Longitude: -123.055},
		{Region: "Strathcona", PovertyRate: 22.7, Population: 12000, MedianIncome: 29500, UnemploymentRate: 14.5, Latitude: 49.273, Longitude: -123.085},
	}
}

// SeedPovertyRegions inserts the reference rows only when the table is empty,
// so running it on every startup is a no-op once any row exists.
func SeedPovertyRegions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.PovertyRegion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}
	rows := DefaultPovertyRegions()
	if err := db.Create(&rows).Error; err != nil {
		return err
	}
	logrus.WithField("rows", len(rows)).Info("Seeded poverty regions")
	return nil
}

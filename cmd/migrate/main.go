package main

import (
	"communityfund/internal/config" // Configuration
	"communityfund/internal/db"     // Database migration
)

// Main entry point for migration and seeding
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run schema migration and seed reference data
}

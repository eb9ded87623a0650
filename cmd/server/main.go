package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"communityfund/internal/api"        // API handlers
	"communityfund/internal/config"     // Configuration
	"communityfund/internal/db"         // Database seeding
	"communityfund/internal/middleware" // Auth middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gdb, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Reference data must exist before the map endpoints serve anything
	if err := db.SeedPovertyRegions(gdb); err != nil {
		logrus.Fatalf("failed to seed poverty data: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Public routes
	r.GET("/", middleware.OptionalJWTMiddleware(cfg.JWTSecret, redisClient), api.OverviewHandler(gdb))
	r.POST("/register", api.RegisterHandler(gdb))
	r.POST("/login", api.LoginHandler(gdb, cfg.JWTSecret))
	r.GET("/crowdfunding", api.ListActiveCampaignsHandler(gdb, redisClient))
	r.GET("/map", api.ListPovertyRegionsHandler(gdb, redisClient))
	r.GET("/api/poverty-data", api.ListPovertyRegionsHandler(gdb, redisClient))

	// Authenticated routes (session token required)
	auth := r.Group("")
	auth.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, redisClient))
	auth.POST("/logout", api.LogoutHandler(redisClient))                   // Revoke the session token
	auth.GET("/budget", api.ListBudgetsHandler(gdb))                       // List own budgets
	auth.POST("/api/budget", api.CreateBudgetHandler(gdb))                 // Create a budget
	auth.DELETE("/api/budget/:id", api.DeleteBudgetHandler(gdb))           // Delete an owned budget
	auth.GET("/microloan", api.ListLoanApplicationsHandler(gdb))           // List own loan applications
	auth.POST("/api/loan-application", api.SubmitLoanApplicationHandler(gdb))
	auth.POST("/api/campaigns", api.CreateCampaignHandler(gdb, redisClient))
	auth.POST("/api/donate", api.DonateHandler(gdb, redisClient))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server
}

package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/config"
	"github.com/sparklean/cleaning-app/middlewares"
	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/router"
	"github.com/sparklean/cleaning-app/utils"
)

func init() {
	// Load .env sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	// Initialize DB
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Simpan koneksi database untuk digunakan di controller
	utils.InitDB(db)

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seedAdmin(db)

	// Rate limiter global (50 requests per detik per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	// Setup router
	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Run server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.District{},
		&models.Client{},
		&models.Cleaner{},
		&models.CleaningObject{},
		&models.Service{},
		&models.Bundle{},
		&models.Order{},
		&models.Comment{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seedAdmin creates the back-office admin account on first boot when
// ADMIN_EMAIL and ADMIN_PASSWORD are set.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Errorf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		utils.ErrorLogger.Errorf("Failed to seed admin account: %v", err)
		return
	}
	utils.InfoLogger.Printf("Seeded admin account %s", email)
}

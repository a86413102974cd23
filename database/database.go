package database

import (
	"fmt"
	"log"
	"os"

	"lovestore-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=love_store port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Ensure PostgreSQL has gen_random_uuid() available (pgcrypto extension).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.PointTransaction{},
		&models.RedemptionCode{},
		&models.Product{},
	)
}

func CreateDefaultAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" {
		adminEmail = "admin@lovestore.local"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existingUser models.User
	result := db.Where("email = ?", adminEmail).First(&existingUser)
	if result.Error == nil {
		// Admin already exists
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
		Name:     "Store Admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default admin created: %s", adminEmail)
	return nil
}

// SeedDefaults populates the catalog and gift codes on an empty database.
// Safe to call on every startup: it does nothing once either table has rows.
func SeedDefaults(db *gorm.DB) error {
	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		defaults := []models.Product{
			{Title: "I Do The Dishes", Price: 100, Category: "Chores", Image: "🍽️"},
			{Title: "1 Hour Massage", Price: 200, Category: "Privileges", Image: "💆‍♀️"},
			{Title: "Takeout Of Your Choice", Price: 300, Category: "Food & Drink", Image: "🍔"},
			{Title: "No-Questions Sulking Pass", Price: 500, Category: "Privileges", Image: "😤"},
			{Title: "Movie Night Pick", Price: 150, Category: "Activities", Image: "🎬"},
			{Title: "Coffee On Me", Price: 50, Category: "Food & Drink", Image: "☕"},
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d default products", len(defaults))
	}

	var codeCount int64
	if err := db.Model(&models.RedemptionCode{}).Count(&codeCount).Error; err != nil {
		return err
	}
	if codeCount == 0 {
		codes := []models.RedemptionCode{
			{Code: "SENICOKSEVIYORUM", Value: 1000, Active: true},
			{Code: "SURPRIZ", Value: 500, Active: true},
		}
		if err := db.Create(&codes).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d default gift codes", len(codes))
	}

	return nil
}

package db

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/siraj-eng/ShifaaEcommerce/models"
)

// Seed creates the default admin account and, on an empty catalog, a small
// set of starter products and practitioners so a fresh install is usable.
func Seed() {
	seedAdmin()
	seedCatalog()
	seedPractitioners()
}

func seedAdmin() {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@shifaa.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existing models.User
	if DB.Where("email = ?", adminEmail).First(&existing).RowsAffected > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Admin",
		Email:    adminEmail,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin user: %v", err)
		return
	}
	log.Printf("✅ Created default admin user: %s", adminEmail)
}

func seedCatalog() {
	var count int64
	DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []models.Product{
		{
			Name:        "Black Seed Oil",
			Description: "Cold-pressed nigella sativa oil.",
			Price:       14.99,
			Stock:       50,
			Category:    "Oils",
			IsActive:    true,
		},
		{
			Name:        "Sidr Honey",
			Description: "Raw honey from sidr blossoms.",
			Price:       29.50,
			Stock:       30,
			Category:    "Honey",
			IsActive:    true,
		},
		{
			Name:        "Moringa Powder",
			Description: "Dried moringa leaf powder.",
			Price:       9.75,
			Stock:       80,
			Category:    "Powders",
			IsActive:    true,
		},
	}
	if err := DB.Create(&products).Error; err != nil {
		log.Printf("Failed to seed products: %v", err)
	}
}

func seedPractitioners() {
	var count int64
	DB.Model(&models.Practitioner{}).Count(&count)
	if count > 0 {
		return
	}

	practitioners := []models.Practitioner{
		{
			Name:        "Dr. Amina Yusuf",
			Title:       "Herbalist",
			Bio:         "Fifteen years of clinical herbal practice.",
			Specialties: "digestive health, immunity",
			IsActive:    true,
		},
		{
			Name:        "Ibrahim Khan",
			Title:       "Naturopath",
			Bio:         "Lifestyle and nutrition focused consultations.",
			Specialties: "nutrition, sleep, stress",
			IsActive:    true,
		},
	}
	if err := DB.Create(&practitioners).Error; err != nil {
		log.Printf("Failed to seed practitioners: %v", err)
	}
}

package seed

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
)

// Run provisions the demo accounts, categories and starter catalog on an
// empty database. Safe to call on every boot; existing rows are left alone.
func Run(db *gorm.DB) error {
	if _, err := ensureUser(db, "admin@onlineshop.com", "Admin123!", "Admin", "Shop", models.RoleAdmin); err != nil {
		return err
	}
	collaborator, err := ensureUser(db, "collaborator@onlineshop.com", "Collab123!", "Collab", "Orator", models.RoleCollaborator)
	if err != nil {
		return err
	}
	if _, err := ensureUser(db, "user@onlineshop.com", "User123!", "Ion", "Popescu", models.RoleUser); err != nil {
		return err
	}

	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		categories := []models.Category{
			{Name: "Electronics", Description: "Electronic devices of all kinds"},
			{Name: "Books", Description: "Books and publications"},
			{Name: "Fashion", Description: "Clothing and accessories"},
			{Name: "Home & Garden", Description: "Everything for the house and garden"},
			{Name: "Sport", Description: "Sports equipment"},
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d categories", len(categories))
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		products := []models.Product{
			{
				Title:           "Gaming Laptop ASUS ROG",
				Description:     "NVIDIA RTX 4090, Intel i9-13900K, 32GB RAM, 1TB SSD",
				Price:           5999.99,
				Stock:           12,
				ImagePath:       models.DefaultProductImage,
				Status:          models.ProductStatusApproved,
				CategoryID:      1,
				CreatedByUserID: collaborator.ID,
				CreatedAt:       time.Now(),
			},
			{
				Title:           "MacBook Pro 16 M3 Max",
				Description:     "Apple Silicon M3 Max, 36GB Memory, 1TB SSD",
				Price:           3999.99,
				Stock:           8,
				ImagePath:       models.DefaultProductImage,
				Status:          models.ProductStatusApproved,
				CategoryID:      1,
				CreatedByUserID: collaborator.ID,
				CreatedAt:       time.Now(),
			},
			{
				Title:           "4K 144Hz Gaming Monitor",
				Description:     "ASUS ROG Swift, HDMI 2.1, HDR 1000",
				Price:           1299.99,
				Stock:           20,
				ImagePath:       models.DefaultProductImage,
				Status:          models.ProductStatusApproved,
				CategoryID:      1,
				CreatedByUserID: collaborator.ID,
				CreatedAt:       time.Now(),
			},
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded %d products", len(products))
	}

	return nil
}

func ensureUser(db *gorm.DB, email, password, firstName, lastName, role string) (*models.User, error) {
	var user models.User
	err := db.Preload("Roles").Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Provider:     "local",
		Roles:        []models.UserRole{{Role: role}},
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Printf("✅ Seeded %s account: %s", role, email)
	return &user, nil
}

package admincontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
)

var ErrUnknownRole = errors.New("unknown role")

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ChangeUserRole swaps the user's whole role set for the new role in one
// transaction. Readers never observe a user with zero roles.
func ChangeUserRole(db *gorm.DB, userID, newRole string) error {
	valid := false
	for _, r := range models.AvailableRoles {
		if r == newRole {
			valid = true
			break
		}
	}
	if !valid {
		return ErrUnknownRole
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{UserID: userID, Role: newRole}).Error
	})
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Preload("Roles").Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"users":           users,
			"available_roles": models.AvailableRoles,
		})
	}
}

// PUT /admin/users/:id/role
func ChangeUserRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangeRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		switch err := ChangeUserRole(db, c.Param("id"), req.Role); {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Role changed"})
		case errors.Is(err, ErrUnknownRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change role"})
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, auth,
// user, collaborator and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog + auth (no middleware)
	SetupPublicRoutes(r, db)
	SetupAuthRoutes(r, db)

	// JWT-protected user routes
	SetupUserRoutes(r, db)

	// Role-gated back offices
	SetupCollaboratorRoutes(r, db)
	SetupAdminRoutes(r, db)
}

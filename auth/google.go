package auth

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
)

var (
	firebaseOnce sync.Once
	firebaseAuth *firebaseauth.Client
	projectID    string
)

// initFirebase wires the Firebase Admin SDK from env. Sign-in stays optional:
// when the credentials are absent the Google endpoint answers 503 instead of
// taking the whole process down at boot.
func initFirebase() *firebaseauth.Client {
	firebaseOnce.Do(func() {
		credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
		projectID = os.Getenv("FIREBASE_PROJECT_ID")
		if credsJSON == "" || projectID == "" {
			return
		}

		ctx := context.Background()
		opt := option.WithCredentialsJSON([]byte(credsJSON))
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
		if err != nil {
			return
		}
		client, err := app.Auth(ctx)
		if err != nil {
			return
		}
		firebaseAuth = client
	})
	return firebaseAuth
}

// GoogleLoginHandler signs a user in with a Firebase-verified Google ID token,
// creating the account with the default "User" role on first login.
func GoogleLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := initFirebase()
		if client == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured"})
			return
		}

		var req struct {
			IDToken string `json:"id_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := context.Background()
		token, err := client.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
			return
		}
		if token.Audience != projectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)

		var user models.User
		err = db.Preload("Roles").Where("id = ?", token.UID).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				ID:        token.UID,
				Email:     email,
				FirstName: name,
				Provider:  "google",
				Roles:     []models.UserRole{{Role: models.RoleUser}},
				CreatedAt: time.Now(),
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"token":   issueJWT(user.ID, user.Email, user.RoleNames()),
		})
	}
}

package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issueJWT generates the session token carried by every authenticated request.
// Roles ride along in the claims so middleware can gate route groups without a
// DB round trip.
func issueJWT(userID, email string, roles []string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"roles":   roles,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}

	return signedToken
}

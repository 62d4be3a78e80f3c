// Package tokenstest signs access tokens shaped like the backend's so tests
// can stand in for it. Production code must not import it.
package tokenstest

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generate signs an HS256 access token carrying user_id, sub and exp.
func Generate(userID, subject string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"token_type": "access",
		"user_id":    userID,
		"iat":        jwt.NewNumericDate(now),
		"exp":        jwt.NewNumericDate(now.Add(validity)),
	}
	if subject != "" {
		claims["sub"] = subject
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

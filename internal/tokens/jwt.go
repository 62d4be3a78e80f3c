// Package tokens reads the JWT access tokens issued by the PlanAndGo
// backend. The client never holds the signing key, so claims are decoded
// without verification and are only used for display and diagnostics.
package tokens

import (
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims follows the simplejwt layout: registered claims plus token_type
// and user_id.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type,omitempty"`
	UserID    UserID `json:"user_id,omitempty"`
}

// UserID accepts both numeric and string user_id claims.
type UserID string

func (u *UserID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*u = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("user_id: %w", err)
	}
	*u = UserID(n.String())
	return nil
}

// Inspect decodes token without checking its signature or expiry.
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

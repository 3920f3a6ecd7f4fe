package token

import "github.com/golang-jwt/jwt/v5"

// claims is the wire form of domain.TokenClaims.
type claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

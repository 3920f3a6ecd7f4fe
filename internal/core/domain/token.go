package domain

import "time"

// TokenClaims is the identity snapshot carried by a bearer token. Role is
// the role at issuance time.
type TokenClaims struct {
	UserID    string
	Email     string
	Role      Role
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

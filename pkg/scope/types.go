package scope

import "github.com/golang-jwt/jwt/v5"

// Payload is the set of claims carried by an access token.
type Payload struct {
	UserID   string `json:"sub"`
	Email    string `json:"email"`
	Timezone string `json:"tz,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and verifies access tokens.
type Manager interface {
	CreateToken(payload Payload) (string, error)
	Verify(token string) (Payload, error)
}

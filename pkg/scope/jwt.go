package scope

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type implManager struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

// New creates an HS256 token Manager.
func New(secretKey, issuer string, ttl time.Duration) Manager {
	return &implManager{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := m.now()
	payload.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("scope: sign token: %w", err)
	}
	return signed, nil
}

func (m *implManager) Verify(tokenString string) (Payload, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return Payload{}, ErrMissingToken
	}

	var payload Payload
	token, err := jwt.ParseWithClaims(tokenString, &payload, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return Payload{}, ErrInvalidToken
	}
	if payload.UserID == "" {
		return Payload{}, fmt.Errorf("%w: missing subject", ErrInvalidClaims)
	}
	if m.issuer != "" && payload.Issuer != m.issuer {
		return Payload{}, fmt.Errorf("%w: invalid issuer", ErrInvalidClaims)
	}

	return payload, nil
}

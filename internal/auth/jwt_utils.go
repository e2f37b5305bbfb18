package auth

import (
	"errors"
	"time"

	"pharma-pos/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines what is inside the token (The "ID Card")
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens signs and validates the session tokens handed out at login.
type Tokens struct {
	secret []byte
}

// NewTokens wraps the signing secret from configuration.
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

// Generate creates a signed JWT for a user
func (t *Tokens) Generate(user models.User) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour) // Token lasts 1 day

	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate checks if a token is fake or expired
func (t *Tokens) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Principal is the authenticated identity extracted from a verified token.
type Principal struct {
	ID    string
	Email string
	Role  string
}

// TokenService signs and verifies HMAC access tokens.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a token service with a 7-day access token expiry.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: 7 * 24 * time.Hour}
}

// GenerateAccessToken signs a token carrying {id, email, role}.
func (s *TokenService) GenerateAccessToken(id, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    id,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseAndValidateToken parses a token string and returns the principal.
// Expired, malformed, or wrongly signed tokens all fail.
func (s *TokenService) ParseAndValidateToken(tokenStr string) (*Principal, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if id == "" || email == "" || role == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &Principal{ID: id, Email: email, Role: role}, nil
}

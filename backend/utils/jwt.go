package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"eduvibe/backend/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateToken issues a stateless bearer credential carrying the user id and
// role, valid for the configured window (7 days by default).
func GenerateToken(userID, role string, cfg *config.Config) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    now.Unix(),
		"exp":    now.Add(time.Duration(cfg.JWTTTLHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken verifies the signature and expiry and returns the embedded
// identity. Tampered and expired tokens both fail with ErrInvalidToken.
func ParseToken(tokenString string, cfg *config.Config) (userID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}

	userID, ok = claims["userId"].(string)
	if !ok || userID == "" {
		return "", "", ErrInvalidToken
	}
	role, _ = claims["role"].(string)

	return userID, role, nil
}

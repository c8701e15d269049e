package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleType set profile role
type RoleType string

const (
	// RoleUser is the user role
	RoleUser RoleType = "user"
	// RoleGuest is the guest role
	RoleGuest RoleType = "guest"
)

// Claims structure for custom claims in JWT
type Claims struct {
	ProfileID string `json:"profile_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Secret Key for JWT signing and validation
var (
	JWTSecret       = []byte("gamerflow_secret_key")
	tokenExpiration = 24 * time.Hour
)

// SetSecret override signing key, empty keeps default
func SetSecret(secret string) {
	if secret != "" {
		JWTSecret = []byte(secret)
	}
}

// GenerateJWT generates a JWT token
func GenerateJWT(profileID, role, issuer string) (string, error) {
	claims := Claims{
		ProfileID: profileID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

// ParseJWT parses a JWT and extracts the Claims
func ParseJWT(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

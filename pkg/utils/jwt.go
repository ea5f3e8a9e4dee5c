package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTClaims represents the claims in an access token
type JWTClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// JWTManager handles JWT token generation and validation. All signing state
// (secret, algorithm, lifetime) lives here so tests can run with their own
// instances instead of process-wide globals.
type JWTManager struct {
	secretKey         []byte
	method            jwt.SigningMethod
	accessTokenExpiry time.Duration
}

// NewJWTManager creates a new JWT manager. Algorithm must be one of
// HS256, HS384 or HS512; anything else falls back to HS256.
func NewJWTManager(secret, algorithm string, accessExpiry time.Duration) *JWTManager {
	var method jwt.SigningMethod
	switch algorithm {
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		method = jwt.SigningMethodHS256
	}

	return &JWTManager{
		secretKey:         []byte(secret),
		method:            method,
		accessTokenExpiry: accessExpiry,
	}
}

// GenerateAccessToken generates a new access token for the given user
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "receipthub-api",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString(m.secretKey)
}

// ValidateAccessToken validates an access token and returns the claims.
// Signature and expiry are both checked; expired tokens fail parsing.
func (m *JWTManager) ValidateAccessToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// AccessTokenExpiry returns the configured token lifetime
func (m *JWTManager) AccessTokenExpiry() time.Duration {
	return m.accessTokenExpiry
}

package auth

import (
	"time"

	"fitness-server/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity attributes embedded in every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// TokenManager signs and verifies bearer tokens with a process-wide secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl}
}

// Generate mints a signed token for the given identity, expiring after the
// configured TTL.
func (tm *TokenManager) Generate(userID, name, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
		UserID: userID,
		Name:   name,
		Email:  email,
	})

	return token.SignedString(tm.secret)
}

// Verify parses the token string and returns its claims. Any failure
// (bad signature, tampered payload, expiry) comes back as Unauthorized.
func (tm *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnauthorized, "invalid or expired token", err)
	}

	if !token.Valid {
		return nil, apperrors.E(apperrors.KindUnauthorized, "invalid or expired token")
	}

	return claims, nil
}

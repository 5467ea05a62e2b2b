package services

import (
	"fmt"
	"time"

	"stepup-tasks/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the bearer tokens used by the task API.
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

type TokenServiceImpl struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenServiceImpl {
	return &TokenServiceImpl{secret: []byte(secret), ttl: ttl}
}

// Issue signs an HS256 token carrying the user id and an expiry of
// issue-time + TTL. There is no revocation; the token stays valid for
// its full lifetime.
func (s *TokenServiceImpl) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and returns the embedded user id
// unchanged. The id is not re-validated against the user store. All
// failure modes collapse into models.ErrInvalidToken.
func (s *TokenServiceImpl) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", models.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", models.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", models.ErrInvalidToken
	}

	return userID, nil
}

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ishanperera/portfolio-backend/internal/auth/domain"
)

// TokenService issues and verifies HMAC-signed session tokens. Tokens are
// stateless: validity is determined entirely by signature and expiry, there
// is no revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the admin's public fields, valid for the
// configured window from now.
func (s *TokenService) Issue(admin domain.AdminIdentity) (string, error) {
	now := time.Now()
	claims := &domain.Claims{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the decoded claims.
// Expired tokens and tokens with a bad signature fail with distinct
// errors so callers can log the cause; both map to the same HTTP status.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

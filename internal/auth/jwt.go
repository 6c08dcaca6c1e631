package auth

import (
	"errors"
	"time"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/golang-jwt/jwt/v5"
)

type JWTProvider struct {
	secret []byte
	ttl    time.Duration
	logger internal.Logger
}

func NewJWTProvider(secret string, ttl time.Duration, logger internal.Logger) *JWTProvider {
	return &JWTProvider{secret: []byte(secret), ttl: ttl, logger: logger}
}

func (p *JWTProvider) IssueToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *JWTProvider) ValidateToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		p.logger.Warnf("token validation failed: %v", err)
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid or expired token")
	}
	return claims.Subject, nil
}

var _ Provider = (*JWTProvider)(nil)

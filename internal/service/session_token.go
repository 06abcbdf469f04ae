package service

import (
	"fmt"
	"time"

	"sandbox-wallet/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// JWTSessionService implements ports.SessionTokenService using HS256 JWT.
// The subject is the wallet address, which middleware compares against the
// engine's active wallet.
type JWTSessionService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewJWTSessionService creates a new JWT session token service.
func NewJWTSessionService(secret string, expiry time.Duration, issuer string) *JWTSessionService {
	return &JWTSessionService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate creates a signed JWT bound to a wallet address.
func (s *JWTSessionService) Generate(address string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.MapClaims{
		"sub": address,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a session token, returning the claims.
func (s *JWTSessionService) Validate(tokenString string) (*ports.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("missing subject claim")
	}

	return &ports.SessionClaims{Address: sub}, nil
}

package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/KirkDiggler/liarsdice/internal/common/clock"
)

// Claims are the JWT claims issued to API users
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTConfig configures token issuing
type JWTConfig struct {
	Secret string

	// TTL is how long issued tokens stay valid
	TTL time.Duration

	Clock clock.Clock
}

// JWTService issues and validates API tokens
type JWTService struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *JWTConfig) (*JWTService, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &JWTService{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		clock:  cfg.Clock,
	}, nil
}

// GenerateToken issues a signed token for userID
func (s *JWTService) GenerateToken(userID string) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    "liarsdice",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateToken parses tokenString and returns its claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithIssuer("liarsdice"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

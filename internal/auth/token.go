package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"licadmin/internal/config"
	"licadmin/internal/model"
)

var (
	ErrNoSecret     = errors.New("jwt secret is not configured")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims carry the authenticated user's identity and role inside a JWT.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim as the numeric user id.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenManager mints and verifies HS256 bearer tokens for the admin API.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a TokenManager from the auth configuration.
func NewTokenManager(cfg config.AuthConfig) (*TokenManager, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrNoSecret
	}
	ttl := time.Duration(cfg.TokenTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(cfg.JWTSecret), ttl: ttl}, nil
}

// Issue creates a signed token for the given user.
func (m *TokenManager) Issue(u *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a token string and returns its claims.
// Only HMAC-signed tokens are accepted.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

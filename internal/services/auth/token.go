package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/clock"
	"github.com/anvitha1105/Capstone-finalreview/internal/model"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the decoded content of a session token
type Claims struct {
	UserID    model.UserID
	Username  string
	ExpiresAt time.Time
}

// TokenCodec issues and validates signed, self-contained session tokens.
// Tokens are bearer credentials: possession alone authorizes access until
// expiry, and expiry is the only revocation mechanism.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewTokenCodec creates a codec signing HS256 tokens with the given secret
func NewTokenCodec(secret []byte, ttl time.Duration, clk clock.Clock) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl, clock: clk}
}

// Issue creates a token binding the identity to a session expiring after
// the configured duration
func (c *TokenCodec) Issue(userID model.UserID, username string) (string, error) {
	now := c.clock.Now()
	claims := tokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies the signature and expiry and returns the embedded claims
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.clock.Now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:    model.UserID(claims.Subject),
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

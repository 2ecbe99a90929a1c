package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrMissingEmailClaim = errors.New("token missing email field")
)

// Claims carried inside an access token. The email claim is mandatory;
// user_id may be absent or null and the token still validates.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"mail"`
	UserID *int64 `json:"user_id,omitempty"`
}

// TokenCodec issues and validates HS256 access tokens. Secret and TTL come
// from config, loaded once at startup.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec returns a codec signing with secret, issuing tokens valid for ttl.
func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl}
}

// Issue signs a token for email (and optional user id) expiring after the codec TTL.
func (c *TokenCodec) Issue(email string, userID *int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
		},
		Email:  email,
		UserID: userID,
	})
	return token.SignedString(c.secret)
}

// Validate verifies signature and expiry and returns the embedded claims.
// Returns ErrInvalidToken for malformed, tampered or expired tokens and
// ErrMissingEmailClaim when the payload decodes but carries no email.
func (c *TokenCodec) Validate(tokenString string) (Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Email == "" {
		return Claims{}, ErrMissingEmailClaim
	}
	return *claims, nil
}

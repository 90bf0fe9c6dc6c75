package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid covers every verification failure. Expired and tampered
// tokens are deliberately indistinguishable to callers.
var ErrTokenInvalid = errors.New("token invalid or expired")

// TokenIssuer signs and verifies the time-limited auth tokens that embed a
// user ID. The secret comes from application config once at startup and
// never rotates within a process lifetime.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Generate returns a signed HS256 token carrying the user's ID.
func (t *TokenIssuer) Generate(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(t.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify validates signature and expiry and returns the embedded user ID.
// Callers only learn that the token yields no identity, not why.
func (t *TokenIssuer) Verify(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (any, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", tk.Method.Alg())
		}

		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return 0, ErrTokenInvalid
	}

	return uint(id), nil
}

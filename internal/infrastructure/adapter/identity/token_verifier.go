package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	errs "github.com/lionswap/reservation-service/internal/domain/error"
)

// TokenVerifier validates HS256 bearer tokens issued by the identity service
// and extracts the authenticated user from the `user_id` claim.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a verifier for the shared identity signing secret
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token, returning the user ID it carries
func (v *TokenVerifier) Verify(tokenString string) (uint64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrUnauthenticated, err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errs.ErrUnauthenticated
	}

	// Numeric JSON claims decode as float64
	rawUserID, ok := claims["user_id"].(float64)
	if !ok || rawUserID <= 0 {
		return 0, fmt.Errorf("%w: missing user_id claim", errs.ErrUnauthenticated)
	}

	return uint64(rawUserID), nil
}

// Issue signs a token for the given user. Used by tests and local tooling;
// production tokens come from the identity service itself.
func (v *TokenVerifier) Issue(userID uint64, expiresAtUnix int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAtUnix,
	})
	return token.SignedString(v.secret)
}

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSessionToken is returned when a session token cannot be decoded.
var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims is what the client can learn about its own bearer token
// without the server's signing key.
type SessionClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// ParseSessionToken decodes the claims of a bearer token without verifying
// its signature. The client only uses the result to decide which options to
// offer; the server verifies the token on every request.
//
// A "Bearer " prefix is accepted and stripped.
func ParseSessionToken(token string) (SessionClaims, error) {
	token = strings.TrimSpace(token)
	if raw, err := ParseBearerToken(token); err == nil {
		token = raw
	}
	if token == "" {
		return SessionClaims{}, ErrInvalidSessionToken
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return SessionClaims{}, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, fmt.Errorf("%w: unexpected claims type", ErrInvalidSessionToken)
	}

	var out SessionClaims
	if out.Subject, err = claims.GetSubject(); err != nil {
		return SessionClaims{}, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return SessionClaims{}, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}

// IsAuthenticatedSession reports whether token looks like a live user
// session at now: it decodes, names a subject, and has not expired. Tokens
// without an expiry are treated as live.
func IsAuthenticatedSession(token string, now time.Time) bool {
	claims, err := ParseSessionToken(token)
	if err != nil || claims.Subject == "" {
		return false
	}
	return claims.ExpiresAt.IsZero() || now.Before(claims.ExpiresAt)
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

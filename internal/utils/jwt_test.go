package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestParseSessionToken_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "42", "exp": exp.Unix()})

	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.Subject != "42" {
		t.Errorf("expected subject '42', got %q", claims.Subject)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Errorf("expected expiry %v, got %v", exp, claims.ExpiresAt)
	}
}

func TestParseSessionToken_BearerPrefix(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "7"})

	claims, err := ParseSessionToken("Bearer " + token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.Subject != "7" {
		t.Errorf("expected subject '7', got %q", claims.Subject)
	}
}

func TestParseSessionToken_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-jwt", "Bearer "} {
		if _, err := ParseSessionToken(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestIsAuthenticatedSession(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty token", "", false},
		{"garbage", "abc.def.ghi", false},
		{"live session", signedToken(t, jwt.MapClaims{"sub": "1", "exp": now.Add(time.Hour).Unix()}), true},
		{"expired session", signedToken(t, jwt.MapClaims{"sub": "1", "exp": now.Add(-time.Hour).Unix()}), false},
		{"no subject", signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}), false},
		{"no expiry", signedToken(t, jwt.MapClaims{"sub": "1"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthenticatedSession(tt.token, now); got != tt.want {
				t.Errorf("IsAuthenticatedSession() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false},
		{"  Bearer abc  ", "abc", false},
		{"Bearer", "", true},
		{"Basic abc", "", true},
		{"abc", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

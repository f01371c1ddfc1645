package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mwhitby/chalk/internal/api"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "u1"}
	if !expiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestParseRole(t *testing.T) {
	for _, value := range []string{"admin", "teacher", "student"} {
		if _, err := ParseRole(value); err != nil {
			t.Fatalf("ParseRole(%q): %v", value, err)
		}
	}
	for _, value := range []string{"guardian", "superadmin", "", "Admin"} {
		if _, err := ParseRole(value); err == nil {
			t.Fatalf("ParseRole(%q) accepted an unknown role", value)
		}
	}
}

func TestLoginUnknownRoleDenied(t *testing.T) {
	s := New()
	_, err := s.Login("tok", api.Principal{ID: "u1", Name: "Ann", Role: "guardian"})
	if err == nil {
		t.Fatal("Login accepted an unrecognized role")
	}
	if s.Authenticated() {
		t.Fatal("Authenticated() = true after a denied login")
	}
}

func TestLoginReadsExpClaim(t *testing.T) {
	s := New()
	token := signedToken(t, time.Now().Add(time.Hour))

	principal, err := s.Login(token, api.Principal{ID: "u1", Name: "Ann", Role: "admin"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if principal.Role != RoleAdmin {
		t.Fatalf("principal.Role = %q, want admin", principal.Role)
	}
	if !s.Authenticated() {
		t.Fatal("Authenticated() = false for a live token")
	}
	if s.Token() != token {
		t.Fatal("Token() does not return the installed token")
	}
}

func TestLoginRejectsExpiredToken(t *testing.T) {
	s := New()
	token := signedToken(t, time.Now().Add(-time.Minute))

	if _, err := s.Login(token, api.Principal{ID: "u1", Role: "teacher"}); err == nil {
		t.Fatal("Login accepted an already-expired token")
	}
}

func TestSessionExpiresMidway(t *testing.T) {
	s := New()
	current := time.Now()
	s.now = func() time.Time { return current }

	token := signedToken(t, current.Add(30*time.Minute))
	if _, err := s.Login(token, api.Principal{ID: "u1", Role: "student"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !s.Authenticated() {
		t.Fatal("Authenticated() = false right after login")
	}

	current = current.Add(31 * time.Minute)
	if s.Authenticated() {
		t.Fatal("Authenticated() = true past the exp claim")
	}
}

func TestOpaqueTokenHasNoExpiry(t *testing.T) {
	s := New()
	if _, err := s.Login("opaque-session-token", api.Principal{ID: "u1", Role: "admin"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !s.Authenticated() {
		t.Fatal("Authenticated() = false for an opaque token")
	}
}

func TestLogout(t *testing.T) {
	s := New()
	if _, err := s.Login("tok", api.Principal{ID: "u1", Name: "Ann", Role: "admin"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	s.Logout()

	if s.Authenticated() {
		t.Fatal("Authenticated() = true after Logout")
	}
	if _, ok := s.Principal(); ok {
		t.Fatal("Principal() still set after Logout")
	}
	if s.Token() != "" {
		t.Fatal("Token() still set after Logout")
	}
}

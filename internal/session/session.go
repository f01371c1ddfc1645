package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mwhitby/chalk/internal/api"
)

// Role is the server-assigned principal role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ParseRole validates a role string from the server. Unknown roles are
// an error: access is denied rather than defaulted to any dashboard.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return Role(value), nil
	default:
		return "", fmt.Errorf("unrecognized role %q", value)
	}
}

// Principal is the authenticated identity held for the session.
type Principal struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// Session holds the token and principal for the lifetime of the
// process. Login and Logout are the only writers. Nothing is persisted;
// the session ends with the process.
type Session struct {
	mu        sync.RWMutex
	token     string
	principal Principal
	expiry    time.Time
	active    bool

	now func() time.Time // test seam
}

// New returns an anonymous session.
func New() *Session {
	return &Session{now: time.Now}
}

// Login installs the token and principal returned by the credential
// exchange. The principal's role must already be validated. When the
// token is a JWT its exp claim bounds the session; a token that is
// already expired is rejected.
func (s *Session) Login(token string, principal api.Principal) (Principal, error) {
	role, err := ParseRole(principal.Role)
	if err != nil {
		return Principal{}, err
	}
	expiry := tokenExpiry(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !expiry.IsZero() && !expiry.After(s.now()) {
		return Principal{}, fmt.Errorf("token already expired")
	}
	s.token = token
	s.principal = Principal{
		ID:    principal.ID,
		Name:  principal.Name,
		Email: principal.Email,
		Role:  role,
	}
	s.expiry = expiry
	s.active = true
	return s.principal, nil
}

// Logout clears the session back to anonymous.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.principal = Principal{}
	s.expiry = time.Time{}
	s.active = false
	s.mu.Unlock()
}

// Authenticated reports whether a live, unexpired session exists.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.active {
		return false
	}
	if !s.expiry.IsZero() && !s.expiry.After(s.now()) {
		return false
	}
	return true
}

// Principal returns the authenticated identity, if any.
func (s *Session) Principal() (Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.active {
		return Principal{}, false
	}
	return s.principal, true
}

// Token returns the bearer token for the current session.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// tokenExpiry reads the exp claim without verifying the signature. The
// server remains the authority on token validity; the claim is only
// used to drop the session locally instead of surfacing 401s.
func tokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

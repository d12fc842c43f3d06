package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
)

type stubUserStore struct {
	users []domain.User
}

func (s *stubUserStore) FindByUsername(username string) (*domain.User, bool) {
	for i := range s.users {
		if s.users[i].Username == username {
			return &s.users[i], true
		}
	}
	return nil, false
}

func (s *stubUserStore) FindByID(id int) (*domain.User, bool) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], true
		}
	}
	return nil, false
}

func (s *stubUserStore) All() []domain.User {
	return s.users
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(hash)
}

func newAuthService(store *stubUserStore) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(store, tokens, zerolog.Nop())
}

func TestAuthService_Login_BcryptHash(t *testing.T) {
	store := &stubUserStore{users: []domain.User{
		{ID: 1, Username: "alice", Password: mustHash(t, "s3cret"), Role: domain.RoleAdmin},
	}}
	svc := newAuthService(store)

	token, user, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.ID != 1 || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_LegacyPlaintext(t *testing.T) {
	store := &stubUserStore{users: []domain.User{
		{ID: 2, Username: "bob", Password: "plain-pass", Role: domain.RoleUser},
	}}
	svc := newAuthService(store)

	if _, _, err := svc.Login(context.Background(), "bob", "plain-pass"); err != nil {
		t.Fatalf("legacy login: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "bob", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	store := &stubUserStore{users: []domain.User{
		{ID: 1, Username: "alice", Password: mustHash(t, "right"), Role: domain.RoleUser},
	}}
	svc := newAuthService(store)

	if _, _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newAuthService(&stubUserStore{})

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newAuthService(&stubUserStore{})

	for _, tc := range [][2]string{{"", "pass"}, {"user", ""}, {"", ""}} {
		if _, _, err := svc.Login(context.Background(), tc[0], tc[1]); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("credentials %q/%q: expected ErrInvalidCredentials, got %v", tc[0], tc[1], err)
		}
	}
}

func TestAuthService_Login_TokenRoleMatchesUser(t *testing.T) {
	store := &stubUserStore{users: []domain.User{
		{ID: 9, Username: "carol", Password: "pw", Role: domain.RoleAdmin},
	}}
	tokens := NewTokenService("secret", time.Hour)
	svc := NewAuthService(store, tokens, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "carol", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	principal, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if principal.ID != 9 || principal.Role != domain.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

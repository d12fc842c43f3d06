package service

import (
	"context"
	"errors"
	"testing"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
)

func TestUserService_Profile(t *testing.T) {
	store := &stubUserStore{users: []domain.User{
		{ID: 1, Username: "alice", Password: "hidden", Email: "alice@example.com", Role: domain.RoleAdmin},
	}}
	svc := NewUserService(store)

	profile, err := svc.Profile(context.Background(), 1)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Username != "alice" || profile.Email != "alice@example.com" || profile.Role != domain.RoleAdmin {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestUserService_Profile_NotFound(t *testing.T) {
	svc := NewUserService(&stubUserStore{})

	if _, err := svc.Profile(context.Background(), 42); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_List_Sanitized(t *testing.T) {
	store := &stubUserStore{users: []domain.User{
		{ID: 1, Username: "alice", Password: "secret1", Role: domain.RoleAdmin},
		{ID: 2, Username: "bob", Password: "secret2", Role: domain.RoleUser},
	}}
	svc := NewUserService(store)

	users := svc.List(context.Background())
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != 1 || users[1].Username != "bob" {
		t.Fatalf("unexpected listing: %+v", users)
	}
}

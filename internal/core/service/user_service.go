package service

import (
	"context"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
	"github.com/GafnerMendes/contracts-api/internal/core/ports"
)

// UserService serves sanitized user views from the read-only store.
type UserService struct {
	users ports.UserStore
}

func NewUserService(users ports.UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(_ context.Context, id int) (*domain.PublicUser, error) {
	user, ok := s.users.FindByID(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	public := user.Sanitized()
	return &public, nil
}

func (s *UserService) List(_ context.Context) []domain.PublicUser {
	users := s.users.All()
	out := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out
}

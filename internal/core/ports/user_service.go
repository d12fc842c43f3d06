package ports

import (
	"context"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
)

// UserService exposes sanitized user views.
type UserService interface {
	// Profile returns the profile for an authenticated user's id.
	// Returns domain.ErrUserNotFound when the id no longer resolves —
	// tokens are not invalidated when a user disappears.
	Profile(ctx context.Context, id int) (*domain.PublicUser, error)
	List(ctx context.Context) []domain.PublicUser
}

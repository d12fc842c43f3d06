package ports

import (
	"context"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
)

// AuthService authenticates credentials and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenVerifier decodes and validates a bearer token into a Principal.
// Verification fails with domain.ErrTokenExpired or domain.ErrTokenInvalid;
// the distinction drives different HTTP responses.
type TokenVerifier interface {
	Verify(token string) (*domain.Principal, error)
}

package ports

import "github.com/GafnerMendes/contracts-api/internal/core/domain"

// UserStore is the read-only user collection loaded at startup.
// Absence is reported as a boolean, not an error.
type UserStore interface {
	FindByUsername(username string) (*domain.User, bool)
	FindByID(id int) (*domain.User, bool)
	All() []domain.User
}

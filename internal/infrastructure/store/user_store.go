package store

import (
	"github.com/rs/zerolog"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
)

// UserStore is an immutable in-memory user collection. Lookup maps are
// built once at construction; no locking is needed afterwards.
type UserStore struct {
	users      []domain.User
	byID       map[int]*domain.User
	byUsername map[string]*domain.User
}

// NewUserStore builds a UserStore from an already-loaded slice.
func NewUserStore(users []domain.User) *UserStore {
	s := &UserStore{
		users:      users,
		byID:       make(map[int]*domain.User, len(users)),
		byUsername: make(map[string]*domain.User, len(users)),
	}
	for i := range s.users {
		u := &s.users[i]
		s.byID[u.ID] = u
		s.byUsername[u.Username] = u
	}
	return s
}

// LoadUserStore reads users from a JSON file. Unreadable or malformed data
// leaves the store empty rather than failing startup.
func LoadUserStore(path string, log zerolog.Logger) *UserStore {
	var users []domain.User
	if err := loadJSONFile(path, &users); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("user store unavailable, starting empty")
		users = nil
	}
	log.Info().Int("count", len(users)).Str("path", path).Msg("user store loaded")
	return NewUserStore(users)
}

func (s *UserStore) FindByUsername(username string) (*domain.User, bool) {
	u, ok := s.byUsername[username]
	return u, ok
}

func (s *UserStore) FindByID(id int) (*domain.User, bool) {
	u, ok := s.byID[id]
	return u, ok
}

// All returns the full user slice. Callers must treat it as read-only.
func (s *UserStore) All() []domain.User {
	return s.users
}

package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
	"github.com/GafnerMendes/contracts-api/internal/core/ports"
)

// dummyHash is compared against when the username is unknown so login cost
// does not reveal whether a user exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService matches credentials against the user store and issues tokens.
type AuthService struct {
	users  ports.UserStore
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserStore, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Login returns a signed token and the matched user. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(_ context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, ok := s.users.FindByUsername(username)
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", nil, domain.ErrInvalidCredentials
	}

	if !passwordMatches(user.Password, password) {
		s.log.Debug().Str("username", username).Msg("password mismatch")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", username).Str("role", user.Role).Msg("login successful")
	return token, user, nil
}

// passwordMatches compares the supplied password against the stored value.
// Stored bcrypt hashes are verified with bcrypt; anything else is treated
// as a legacy plaintext fixture and compared in constant time.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

package auth

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/nico/guidepanel/internal/admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles console sign-in. The console uses one shared passphrase
// (the store carries no secrets per member); identity comes from picking a
// team member, the passphrase gates the console as a whole.
type Service struct {
	store        *admin.Store
	jwt          *JWTService
	passwordHash []byte
	logger       *slog.Logger
}

// NewService builds the auth service around a bcrypt hash of the console
// passphrase.
func NewService(store *admin.Store, jwt *JWTService, passwordHash []byte, logger *slog.Logger) *Service {
	return &Service{
		store:        store,
		jwt:          jwt,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

// HashPassword bcrypt-hashes the console passphrase, used at boot when no
// precomputed hash is configured.
func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	return hash, nil
}

type LoginInput struct {
	Email    string
	Password string
	UserID   string
}

type LoginResult struct {
	Token       string
	User        admin.SessionUser
	Permissions admin.Permissions
}

// Login verifies the passphrase, resolves the team member, establishes the
// session and mints a token. Credential failures are indistinguishable on
// purpose.
func (s *Service) Login(input LoginInput) (*LoginResult, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password)); err != nil {
		s.logger.Warn("login rejected", "email", input.Email)
		return nil, ErrInvalidCredentials
	}

	member, ok := s.store.Snapshot().UserByID(input.UserID)
	if !ok {
		s.logger.Warn("login rejected", "email", input.Email, "userId", input.UserID)
		return nil, ErrInvalidCredentials
	}

	sessionUser := admin.SessionUser{
		ID:          member.ID,
		Name:        member.Name,
		Role:        member.Role,
		AccessLevel: member.AccessLevel,
		Email:       input.Email,
	}
	if err := s.store.Login(sessionUser); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(sessionUser)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	s.logger.Info("session established", "userId", member.ID, "accessLevel", string(member.AccessLevel))
	return &LoginResult{
		Token:       token,
		User:        sessionUser,
		Permissions: s.store.Permissions(),
	}, nil
}

// Logout clears the session.
func (s *Service) Logout() error {
	return s.store.Logout()
}

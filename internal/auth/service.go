package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"

	"github.com/optionpanel/optionpanel/internal/config"
)

// Service verifies login attempts against the configured administrator account.
type Service struct {
	username     string
	passwordHash string
}

// NewService creates a new auth service from the application configuration.
func NewService(cfg *config.Config) *Service {
	return &Service{
		username:     cfg.Auth.Username,
		passwordHash: cfg.Auth.PasswordHash,
	}
}

// Authenticate checks the given username and password against the configured
// administrator credentials. It returns ErrInvalidCredentials when either does
// not match.
func (s *Service) Authenticate(username, password string) error {
	if s.username == "" || s.passwordHash == "" {
		return ErrNotConfigured
	}

	match, err := argon2id.ComparePasswordAndHash(password, s.passwordHash)
	if err != nil {
		return fmt.Errorf("failed to verify password hash: %w", err)
	}

	// Compare the username after the hash check so both paths take
	// comparable time.
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 || !match {
		log.Warn().Str("username", username).Msg("Rejected login attempt")

		return ErrInvalidCredentials
	}

	return nil
}

// HashPassword produces an Argon2id hash suitable for the passwordHash
// configuration setting.
func HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

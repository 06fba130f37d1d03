package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionpanel/optionpanel/internal/auth"
	"github.com/optionpanel/optionpanel/internal/config"
)

func newTestService(t *testing.T, username, password string) *auth.Service {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	return auth.NewService(&config.Config{
		Auth: config.Auth{
			Enabled:      true,
			Username:     username,
			PasswordHash: hash,
		},
	})
}

func TestServiceAuthenticate(t *testing.T) {
	service := newTestService(t, "admin", "correct horse battery staple")

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "valid credentials",
			username: "admin",
			password: "correct horse battery staple",
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "guess",
			wantErr:  auth.ErrInvalidCredentials,
		},
		{
			name:     "wrong username",
			username: "root",
			password: "correct horse battery staple",
			wantErr:  auth.ErrInvalidCredentials,
		},
		{
			name:     "empty credentials",
			username: "",
			password: "",
			wantErr:  auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Authenticate(tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestServiceAuthenticateUnconfigured(t *testing.T) {
	service := auth.NewService(&config.Config{})

	err := service.Authenticate("admin", "anything")

	assert.ErrorIs(t, err, auth.ErrNotConfigured)
}

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	assert.Contains(t, hash, "$argon2id$")
	assert.NotContains(t, hash, "s3cret")
}

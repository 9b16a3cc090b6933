package services

import (
	"chat-bridge/auth"
	"chat-bridge/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, password string) (IAuthService, *auth.TokenIssuer) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	return NewAuthService(log, HostCredentials{HostID: "desktop", PasswordHash: hash}, issuer), issuer
}

func TestAuthService_Login(t *testing.T) {
	svc, issuer := newAuthService(t, "ComplexPass123!")

	t.Run("should issue a token for the configured host", func(t *testing.T) {
		req := require.New(t)

		token, err := svc.Login("desktop", "ComplexPass123!")

		req.NoError(err)
		claims, err := issuer.ValidateToken(token.String())
		req.NoError(err)
		req.Equal("desktop", claims.HostID)
		req.Equal([]string{"host"}, claims.Roles)
	})

	t.Run("should refuse with the same error whatever is wrong", func(t *testing.T) {
		for _, tc := range []struct{ name, hostID, password string }{
			{"wrong password", "desktop", "WrongPass123!"},
			{"unknown host", "laptop", "ComplexPass123!"},
			{"empty host", "", "ComplexPass123!"},
			{"empty password", "desktop", ""},
		} {
			t.Run(tc.name, func(t *testing.T) {
				req := require.New(t)

				token, err := svc.Login(tc.hostID, tc.password)

				req.ErrorIs(err, errors.ErrInvalidCredentials)
				req.Empty(token)
			})
		}
	})
}

func TestAuthService_LoginWithBrokenHash(t *testing.T) {
	req := require.New(t)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	svc := NewAuthService(logs.GetLoggerFromLevel(slog.LevelError),
		HostCredentials{HostID: "desktop", PasswordHash: "not-a-hash"}, issuer)

	_, err := svc.Login("desktop", "ComplexPass123!")

	req.ErrorIs(err, errors.ErrInvalidCredentials)
}

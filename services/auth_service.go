package services

import (
	"chat-bridge/auth"
	"chat-bridge/errors"
	"crypto/subtle"
	"log/slog"
)

type IAuthService interface {
	Login(hostID, password string) (Token, error)
}

type Token string

func (t Token) String() string {
	return string(t)
}

// HostCredentials identifies the single host process allowed to attach.
// PasswordHash is an argon2id hash produced by `bridge hash-password`.
type HostCredentials struct {
	HostID       string
	PasswordHash string
}

type AuthService struct {
	log    *slog.Logger
	host   HostCredentials
	issuer *auth.TokenIssuer
}

func NewAuthService(log *slog.Logger, host HostCredentials, issuer *auth.TokenIssuer) IAuthService {
	return &AuthService{log: log, host: host, issuer: issuer}
}

func (s *AuthService) Login(hostID, password string) (Token, error) {
	if err := auth.ValidateLogin(auth.LoginRequest{HostID: hostID, Password: password}); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	// The hash is compared even for an unknown host so both paths cost the same
	match, err := auth.ComparePassword(password, s.host.PasswordHash)
	knownHost := subtle.ConstantTimeCompare([]byte(hostID), []byte(s.host.HostID)) == 1
	if err != nil || !match || !knownHost {
		s.log.Warn("Host login refused", "host_id", hostID)
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.issuer.GenerateToken(hostID, []string{"host"})
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	s.log.Info("Host logged in", "host_id", hostID)
	return Token(token), nil
}

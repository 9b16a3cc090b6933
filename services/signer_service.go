package services

import (
	"chat-bridge/contract"
	"chat-bridge/domain"
	"chat-bridge/observability"
	"chat-bridge/signer"
	"context"
	"log/slog"
)

// SignerSession is one host connection holding an external signer.
type SignerSession struct {
	Account domain.Account
	Signer  *signer.ExternalSigner
}

type ISignerService interface {
	LoginWithExternalSigner(ctx context.Context, pubkey string, callbacks contract.IForeignSigner) (SignerSession, error)
	Logout(session SignerSession) bool
}

type SignerService struct {
	log     *slog.Logger
	core    contract.ICore
	monitor *observability.Monitor
}

func NewSignerService(log *slog.Logger, core contract.ICore, monitor *observability.Monitor) *SignerService {
	return &SignerService{log: log, core: core, monitor: monitor}
}

// LoginWithExternalSigner logs an account in whose key lives in an external
// signer app. The signer is registered before the key package is published so
// the core can already route that signature through its registry.
func (s *SignerService) LoginWithExternalSigner(ctx context.Context, pubkey string,
	callbacks contract.IForeignSigner) (SignerSession, error) {
	pk, err := domain.ParsePublicKey(pubkey)
	if err != nil {
		return SignerSession{}, err
	}
	externalSigner := signer.NewExternalSigner(pk, callbacks)

	account, err := s.core.LoginWithExternalSigner(ctx, pk)
	if err != nil {
		return SignerSession{}, err
	}
	s.core.RegisterExternalSigner(pk, externalSigner)

	if err := s.core.PublishKeyPackageWithSigner(ctx, account, externalSigner); err != nil {
		s.core.UnregisterExternalSigner(pk, externalSigner)
		s.log.Warn("Key package not published", "pubkey", pk, "error", err)
		return SignerSession{}, err
	}
	s.monitor.SignerLoggedIn()
	s.log.Info("External signer login", "pubkey", pk, "signer", externalSigner)
	return SignerSession{Account: account, Signer: externalSigner}, nil
}

// Logout detaches the signer of session. A later login for the same pubkey
// owns the registry entry by then and is left alone. The account stays known.
func (s *SignerService) Logout(session SignerSession) bool {
	pk := session.Account.Pubkey
	if !s.core.UnregisterExternalSigner(pk, session.Signer) {
		s.log.Debug("External signer already replaced", "pubkey", pk)
		return false
	}
	s.log.Info("External signer detached", "pubkey", pk)
	return true
}

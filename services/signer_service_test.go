package services

import (
	"chat-bridge/contract"
	"chat-bridge/domain"
	"chat-bridge/errors"
	"chat-bridge/mocks"
	"chat-bridge/observability"
	"chat-bridge/signer"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSignerService(ctrl *gomock.Controller) (*SignerService, *mocks.MockICore, *observability.Monitor) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	core := mocks.NewMockICore(ctrl)
	monitor := observability.NewMonitor(log)
	return NewSignerService(log, core, monitor), core, monitor
}

func TestSignerService_Registers_Before_Publishing_Key_Package(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc, core, monitor := newSignerService(ctrl)
	callbacks := mocks.NewMockIForeignSigner(ctrl)
	ctx := context.Background()
	account := domain.Account{Pubkey: alice, ExternalSigner: true}

	var registered contract.INostrSigner
	gomock.InOrder(
		core.EXPECT().LoginWithExternalSigner(ctx, alice).Return(account, nil),
		core.EXPECT().RegisterExternalSigner(alice, gomock.Any()).
			Do(func(_ domain.PublicKey, s contract.INostrSigner) { registered = s }),
		core.EXPECT().PublishKeyPackageWithSigner(ctx, account, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Account, s contract.INostrSigner) error {
				// Then the signer publishing is the one the core already knows
				req.Same(registered, s)
				return nil
			}),
	)

	// When
	session, err := svc.LoginWithExternalSigner(ctx, alice.Npub(), callbacks)

	req.NoError(err)
	req.Equal(account, session.Account)
	req.Same(registered, session.Signer)
	req.Equal(uint64(1), monitor.GetLatest().SignerLogins)
	pubkey, err := registered.GetPublicKey(ctx)
	req.NoError(err)
	req.Equal(alice, pubkey)
}

func TestSignerService_Login_Fails_When_Key_Package_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc, core, monitor := newSignerService(ctrl)
	ctx := context.Background()
	account := domain.Account{Pubkey: alice, ExternalSigner: true}

	core.EXPECT().LoginWithExternalSigner(ctx, alice).Return(account, nil)
	var registered contract.INostrSigner
	core.EXPECT().RegisterExternalSigner(alice, gomock.Any()).
		Do(func(_ domain.PublicKey, s contract.INostrSigner) { registered = s })
	core.EXPECT().PublishKeyPackageWithSigner(ctx, account, gomock.Any()).
		Return(fmt.Errorf("%w: user refused", errors.ErrSigningFailed))
	// Then only the signer of this login is unregistered
	core.EXPECT().UnregisterExternalSigner(alice, gomock.Any()).
		DoAndReturn(func(_ domain.PublicKey, s contract.INostrSigner) bool {
			req.Same(registered, s)
			return true
		})

	_, err := svc.LoginWithExternalSigner(ctx, alice.Hex(), mocks.NewMockIForeignSigner(ctrl))

	req.ErrorIs(err, errors.ErrSigningFailed)
	req.Zero(monitor.GetLatest().SignerLogins)
}

func TestSignerService_Rejects_Invalid_Pubkey(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc, _, _ := newSignerService(ctrl)

	_, err := svc.LoginWithExternalSigner(context.Background(), "npub1garbage", mocks.NewMockIForeignSigner(ctrl))

	req.ErrorIs(err, errors.ErrInvalidPublicKey)
}

func TestSignerService_Logout_Unregisters_Its_Own_Signer(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc, core, _ := newSignerService(ctrl)
	session := SignerSession{
		Account: domain.Account{Pubkey: alice, ExternalSigner: true},
		Signer:  signer.NewExternalSigner(alice, mocks.NewMockIForeignSigner(ctrl)),
	}

	core.EXPECT().UnregisterExternalSigner(alice, session.Signer).Return(true)

	req.True(svc.Logout(session))
}

func TestSignerService_Logout_Of_Replaced_Session_Is_Noop(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc, core, _ := newSignerService(ctrl)
	stale := SignerSession{
		Account: domain.Account{Pubkey: alice, ExternalSigner: true},
		Signer:  signer.NewExternalSigner(alice, mocks.NewMockIForeignSigner(ctrl)),
	}

	// Given the core holds a newer signer for the same pubkey
	core.EXPECT().UnregisterExternalSigner(alice, stale.Signer).Return(false)

	// When the stale session logs out
	detached := svc.Logout(stale)

	// Then nothing is reported as detached
	req.False(detached)
}

package errors

import (
	stdErrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrInvalidPublicKey    = fmt.Errorf("invalid public key")
	ErrInvalidGroupID      = fmt.Errorf("invalid group id")
	ErrInvalidSearchParams = fmt.Errorf("invalid search parameters")
	ErrAccountNotFound     = fmt.Errorf("account not found")
	ErrGroupNotFound       = fmt.Errorf("group not found")
	ErrMessageNotFound     = fmt.Errorf("message not found")
	ErrSigningFailed       = fmt.Errorf("signing failed")
	ErrSignerDisconnected  = fmt.Errorf("external signer disconnected")
	ErrSignerOperation     = fmt.Errorf("external signer operation failed")
	ErrUnauthenticated     = fmt.Errorf("unauthenticated")
	ErrInvalidCredentials  = fmt.Errorf("invalid credentials")
	ErrTokenGeneration     = fmt.Errorf("token generation failed")
	ErrWeakPassword        = fmt.Errorf("password does not meet complexity requirements")
)

// MapToGRPCError translates domain errors into gRPC status errors.
// Errors that already carry a status are returned untouched.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case stdErrors.Is(err, ErrInvalidPublicKey),
		stdErrors.Is(err, ErrInvalidGroupID),
		stdErrors.Is(err, ErrInvalidSearchParams):
		return status.Error(codes.InvalidArgument, err.Error())
	case stdErrors.Is(err, ErrAccountNotFound),
		stdErrors.Is(err, ErrGroupNotFound),
		stdErrors.Is(err, ErrMessageNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stdErrors.Is(err, ErrUnauthenticated),
		stdErrors.Is(err, ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case stdErrors.Is(err, ErrSignerDisconnected):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const (
	HostIDKey contextKey = "host_id"
	RolesKey  contextKey = "roles"
)

// Interceptor validates the bearer token of incoming gRPC calls.
type Interceptor struct {
	issuer        *TokenIssuer
	publicMethods map[string]struct{}
}

// NewInterceptor builds an interceptor letting publicMethods through without
// a token.
func NewInterceptor(issuer *TokenIssuer, publicMethods ...string) *Interceptor {
	public := make(map[string]struct{}, len(publicMethods))
	for _, method := range publicMethods {
		public[method] = struct{}{}
	}
	return &Interceptor{issuer: issuer, publicMethods: public}
}

func (i *Interceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if i.isPublicMethod(info.FullMethod) {
			return handler(ctx, req)
		}
		authCtx, err := i.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		return handler(authCtx, req)
	}
}

func (i *Interceptor) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if i.isPublicMethod(info.FullMethod) {
			return handler(srv, ss)
		}
		authCtx, err := i.authenticate(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, &authenticatedStream{ServerStream: ss, ctx: authCtx})
	}
}

// Authenticate checks a raw authorization header value, for transports
// outside gRPC.
func (i *Interceptor) Authenticate(ctx context.Context, authorization string) (context.Context, error) {
	if authorization == "" {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}
	claims, err := i.issuer.ValidateToken(strings.TrimPrefix(authorization, "Bearer "))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	ctx = context.WithValue(ctx, HostIDKey, claims.HostID)
	return context.WithValue(ctx, RolesKey, claims.Roles), nil
}

func (i *Interceptor) authenticate(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}
	return i.Authenticate(ctx, values[0])
}

func (i *Interceptor) isPublicMethod(method string) bool {
	_, ok := i.publicMethods[method]
	return ok
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context { return s.ctx }

// HostID returns the authenticated host of ctx, if any.
func HostID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(HostIDKey).(string)
	return id, ok
}

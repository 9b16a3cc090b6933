package server

import (
	"chat-bridge/auth"
	pb "chat-bridge/proto/bridge"
	"log/slog"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
)

// NewGrpcServer wires the bridge service behind logging and authentication.
func NewGrpcServer(log *slog.Logger, interceptor *auth.Interceptor, bridgeServer *BridgeServer) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(log),
			interceptor.Unary(),
		),
		grpc.ChainStreamInterceptor(interceptor.Stream()),
	)
	pb.RegisterBridgeServiceServer(s, bridgeServer)
	return s
}

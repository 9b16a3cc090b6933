package workers

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
)

const grpcStopGrace = 5 * time.Second

// GrpcServerWorker serves a gRPC server until ctx is done. Open streams get
// a grace period to end before they are cut.
type GrpcServerWorker struct {
	log     *slog.Logger
	server  *grpc.Server
	address string
}

func NewGrpcServerWorker(log *slog.Logger, server *grpc.Server, address string) *GrpcServerWorker {
	return &GrpcServerWorker{log: log, server: server, address: address}
}

func (w *GrpcServerWorker) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", w.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", w.address, err)
	}

	errChan := make(chan error, 1)
	go func() {
		w.log.Info("Starting gRPC server", "address", w.address)
		for serviceName := range w.server.GetServiceInfo() {
			w.log.Debug("gRPC exposed services", "name", serviceName)
		}
		errChan <- w.server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		w.log.Info("Stopping gRPC server")
		stopped := make(chan struct{})
		go func() {
			w.server.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(grpcStopGrace):
			w.log.Warn("gRPC streams still open, forcing stop")
			w.server.Stop()
		}
		<-errChan
		return nil
	case err := <-errChan:
		if err == nil || stdErrors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("gRPC server error: %w", err)
	}
}

package main

import (
	"bufio"
	"chat-bridge/auth"
	"chat-bridge/infrastructure/api"
	"chat-bridge/infrastructure/grpc/server"
	"chat-bridge/internal"
	"chat-bridge/observability"
	"chat-bridge/runtime"
	"chat-bridge/runtime/workers"
	"chat-bridge/services"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	var code int
	var err error
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		code, err = hashPassword()
	} else {
		code, err = run()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bridge terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the core, the services and both servers, then blocks until a
// signal arrives. Every defer runs before the exit code is returned.
func run() (int, error) {
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	if config.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core := runtime.NewCore(logger, runtime.Config{
		BufferSize:          config.BufferSize,
		SearchRadiusCap:     config.SearchRadiusCap,
		SearchRadiusTimeout: config.SearchRadiusTimeout,
	})
	defer core.Close()
	monitor := observability.NewMonitor(logger)

	issuer := auth.NewTokenIssuer(config.AuthSecret, config.AuthTokenDuration)
	interceptor := auth.NewInterceptor(issuer, server.PublicMethods...)
	authService := services.NewAuthService(logger, services.HostCredentials{
		HostID:       config.HostID,
		PasswordHash: config.HostPasswordHash,
	}, issuer)
	feedService := services.NewFeedService(logger, core, monitor)
	groupService := services.NewGroupService(logger, core)
	signerService := services.NewSignerService(logger, core, monitor)

	bridgeServer := server.NewBridgeServer(logger, authService, feedService, groupService)
	grpcServer := server.NewGrpcServer(logger, interceptor, bridgeServer)
	httpServer := api.NewServer(logger, monitor, core, signerService, interceptor)

	supervisor := workers.NewSupervisor(logger, monitor, workers.NewBackoff(config.RestartInterval))
	supervisor.Add(
		workers.NewGrpcServerWorker(logger, grpcServer, config.GrpcAddress()),
		workers.NewHttpServerWorker(logger, config.HttpAddress(), httpServer.Routes()),
		workers.NewHealthMonitoringWorker(logger, monitor, config.MetricInterval),
		workers.NewTopicPrunerWorker(logger, core, config.PruneInterval),
	)
	if config.DemoSeed {
		supervisor.Add(workers.NewDemoSeederWorker(logger, core, config.DemoInterval))
	}

	logger.Info("Bridge starting", "grpc", config.GrpcAddress(), "http", config.HttpAddress())
	supervisor.Run(ctx)
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

// hashPassword reads a host password on stdin and prints the value expected
// in HOST_PASSWORD_HASH.
func hashPassword() (int, error) {
	fmt.Fprint(os.Stderr, "Host password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return exitRuntime, fmt.Errorf("could not read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if err := auth.ValidateNewPassword(auth.NewPasswordRequest{Password: password}); err != nil {
		return exitConfig, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return exitRuntime, err
	}
	fmt.Println(hash)
	return exitOK, nil
}

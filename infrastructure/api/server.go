// Package api is the HTTP side of the bridge: health and the remote signer
// socket.
package api

import (
	"chat-bridge/auth"
	"chat-bridge/domain"
	"chat-bridge/observability"
	"chat-bridge/runtime"
	"chat-bridge/services"
	"chat-bridge/signer/remote"
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// CloseLoginFailed is the close code sent when the signer login is refused.
const CloseLoginFailed = 4001

type coreStats interface {
	Stats() runtime.Stats
}

type Server struct {
	log           *slog.Logger
	monitor       *observability.Monitor
	core          coreStats
	signerService services.ISignerService
	interceptor   *auth.Interceptor
	upgrader      websocket.Upgrader
}

func NewServer(log *slog.Logger, monitor *observability.Monitor, core coreStats,
	signerService services.ISignerService, interceptor *auth.Interceptor) *Server {
	return &Server{
		log:           log,
		monitor:       monitor,
		core:          core,
		signerService: signerService,
		interceptor:   interceptor,
		upgrader: websocket.Upgrader{
			// The host connects from the same machine without a browser origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Routes() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())
	engine.GET("/healthz", s.handleHealthz)
	engine.GET("/signer/ws", s.authenticated(), s.handleSignerSocket)
	return engine
}

type healthResponse struct {
	Status  string              `json:"status"`
	Monitor observability.Stats `json:"monitor"`
	Core    runtime.Stats       `json:"core"`
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:  "ok",
		Monitor: s.monitor.GetLatest(),
		Core:    s.core.Stats(),
	})
}

func (s *Server) authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, err := s.interceptor.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// handleSignerSocket attaches an external signer for the pubkey of the query.
// The socket carries the signer callbacks for as long as the host keeps it
// open; the signer is detached when it closes.
func (s *Server) handleSignerSocket(c *gin.Context) {
	pubkey, err := domain.ParsePublicKey(c.Query("pubkey"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("Signer socket upgrade failed", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	callbacks := remote.NewCallbacks(s.log, conn)
	runErr := make(chan error, 1)
	go func() { runErr <- callbacks.Run(ctx) }()

	session, err := s.signerService.LoginWithExternalSigner(ctx, pubkey.Hex(), callbacks)
	if err != nil {
		s.log.Warn("External signer login refused", "pubkey", pubkey, "error", err)
		callbacks.Close(CloseLoginFailed, err.Error())
		<-runErr
		return
	}
	defer s.signerService.Logout(session)

	if err := <-runErr; err != nil {
		s.log.Warn("Signer socket ended", "pubkey", pubkey, "error", err)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status())
	}
}

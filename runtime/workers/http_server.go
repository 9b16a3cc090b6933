package workers

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const httpShutdownTimeout = 5 * time.Second

type HttpServerWorker struct {
	log    *slog.Logger
	server *http.Server
}

func NewHttpServerWorker(log *slog.Logger, address string, handler http.Handler) *HttpServerWorker {
	return &HttpServerWorker{
		log: log,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (w *HttpServerWorker) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		w.log.Info("Starting HTTP server", "address", w.server.Addr)
		errChan <- w.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		if err := w.server.Shutdown(shutdownCtx); err != nil {
			w.log.Warn("HTTP server shutdown", "error", err)
		}
		<-errChan
		return nil
	case err := <-errChan:
		if stdErrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

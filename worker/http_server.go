package worker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPServer serves an echo instance until ctx is done.
type HTTPServer struct {
	Echo            *echo.Echo
	Addr            string
	ShutdownTimeout time.Duration
}

func (w *HTTPServer) Name() string { return "http-server" }

func (w *HTTPServer) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		slog.Info("server: listening", "addr", w.Addr)
		if err := w.Echo.Start(w.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
			return
		}
		errc <- nil
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	timeout := w.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	slog.Info("server: shutting down")
	if err := w.Echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}

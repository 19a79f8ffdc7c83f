package httpx

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"cafe-bot/internal/config"
)

// ShutdownTimeout bounds how long in-flight requests may finish after stop.
const ShutdownTimeout = 5 * time.Second

type Server struct{ *http.Server }

func New(cfg config.ServerConfig, h http.Handler) *Server {
	return &Server{Server: &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.Server.Serve(ln) }()
	select {
	case <-ctx.Done():
		ctx2, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.Shutdown(ctx2)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

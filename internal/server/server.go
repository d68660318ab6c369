package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kubev2v/hello-server/internal/config"
	"github.com/kubev2v/hello-server/internal/handlers"
)

type Server struct {
	srv *http.Server
}

func NewServer(cfg *config.Configuration, logger *zap.Logger, routes *handlers.Routes) (*Server, error) {
	gin.SetMode(ginMode(cfg.Server.Mode))

	engine, err := NewRouter(cfg, logger, routes)
	if err != nil {
		return nil, err
	}

	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Start blocks until the server stops. It returns http.ErrServerClosed after Stop.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	zap.S().Named("server").Infow("server listening", "addr", ln.Addr().String())
	return s.srv.Serve(ln)
}

// Stop waits for in-flight requests until ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("server").Info("server stopping")
	return s.srv.Shutdown(ctx)
}

func ginMode(m config.Mode) string {
	switch m {
	case config.ModeDevelopment:
		return gin.DebugMode
	case config.ModeTest:
		return gin.TestMode
	case config.ModeProduction:
		return gin.ReleaseMode
	default:
		return gin.ReleaseMode
	}
}

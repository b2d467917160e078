// Package server is the palette generation backend: an HTTP API compatible
// with the web client, plus an optional MCP tool over SSE.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"paletteai/internal/config"
	"paletteai/pkg/logging"
)

const shutdownGrace = 5 * time.Second

// Server wires the generation service behind the middleware chain.
type Server struct {
	cfg     config.ServerConfig
	service *Service
	version string

	sse     *mcpserver.SSEServer
	handler http.Handler
}

// New builds the backend. Nothing listens until Run.
func New(cfg config.ServerConfig, svc *Service, version string) *Server {
	s := &Server{cfg: cfg, service: svc, version: version}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /api/generate-palette", s.handleGenerate)

	if cfg.MCP.Enabled {
		s.sse = mcpserver.NewSSEServer(
			newMCPServer(svc, version),
			mcpserver.WithBaseURL(s.mcpBaseURL()),
			mcpserver.WithSSEEndpoint("/mcp/sse"),
			mcpserver.WithMessageEndpoint("/mcp/message"),
			mcpserver.WithKeepAlive(true),
			mcpserver.WithKeepAliveInterval(30*time.Second),
		)
		mux.Handle("/mcp/", s.sse)
	}

	logger := logging.Logger()
	s.handler = ApplyMiddlewares(mux,
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(cfg.AllowOrigins),
		RateLimitMiddleware(cfg.RateLimit, logger),
	)
	return s
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) mcpBaseURL() string {
	if s.cfg.MCP.BaseURL != "" {
		return strings.TrimRight(s.cfg.MCP.BaseURL, "/")
	}
	host, port, err := net.SplitHostPort(s.cfg.Listen)
	if err != nil {
		return "http://localhost:5000"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

// Run serves until ctx is cancelled, then shuts down with a short grace period.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var metrics *MetricsServer
	if s.cfg.MetricsListen != "" {
		metrics = NewMetricsServer(s.cfg.MetricsListen)
		metrics.Start()
		logging.Info("Server", "Metrics available on %s/metrics", s.cfg.MetricsListen)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server", "PaletteAI backend listening on %s", s.cfg.Listen)
		if s.sse != nil {
			logging.Info("MCP", "generate_palette tool at %s/mcp/sse", s.mcpBaseURL())
		}
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", s.cfg.Listen, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Server", "Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		if metrics != nil {
			if err := metrics.Shutdown(shutdownCtx); err != nil {
				logging.Warn("Server", "Error shutting down metrics server: %v", err)
			}
		}
		err := httpServer.Shutdown(shutdownCtx)
		if errors.Is(err, context.DeadlineExceeded) {
			// Open SSE streams never go idle on their own.
			logging.Warn("Server", "Grace period over, closing remaining connections")
			return httpServer.Close()
		}
		return err
	})
	return g.Wait()
}

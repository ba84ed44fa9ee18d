package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dusk-indust/sowbuilder/internal/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// NewHTTPHandler mounts the streamable MCP endpoint at path and a health
// check at /healthz. newServer is called for every request; sessions are
// never reused across requests.
func NewHTTPHandler(path string, newServer func() *mcp.Server, logger *slog.Logger) http.Handler {
	mcpHandler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return newServer() },
		&mcp.StreamableHTTPOptions{Stateless: true},
	)

	mux := http.NewServeMux()
	mux.Handle(path, mcpHandler)
	mux.HandleFunc("GET /healthz", handleHealth)

	return withRequestLogging(mux, logger)
}

// RunMCPServer starts an HTTP server exposing the SOW tools on cfg.Addr().
// It returns when ctx is cancelled and the server has shut down.
func RunMCPServer(ctx context.Context, cfg *config.ServerConfig, svc *SOWService, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	handler := NewHTTPHandler(cfg.Path, func() *mcp.Server { return NewSOWMCPServer(svc) }, logger)
	return Serve(ctx, ln, handler, logger)
}

// Serve serves handler on ln until ctx is cancelled, then shuts the server
// down gracefully.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *slog.Logger) error {
	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("MCP server listening", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	// Shutdown gracefully when the context is cancelled or Serve fails.
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("MCP server stopped")
		return nil
	})

	return g.Wait()
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

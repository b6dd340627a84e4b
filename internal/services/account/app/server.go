package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/postitapplications/account-service/internal/services/account/api/rest"
	"github.com/postitapplications/account-service/internal/services/account/service"
	"github.com/postitapplications/account-service/internal/services/account/storage"
	"github.com/postitapplications/account-service/internal/services/account/storage/memory"
	accountsqlite "github.com/postitapplications/account-service/internal/services/account/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server hosts the account service HTTP API.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	store      io.Closer
}

// Options configure the account server.
type Options struct {
	// HTTPAddr is the address the HTTP server listens on.
	HTTPAddr string
	// DBPath is the SQLite file path. Empty selects the in-memory store.
	DBPath string
}

// New creates a configured account server listening on the provided address.
func New(opts Options) (*Server, error) {
	listener, err := net.Listen("tcp", opts.HTTPAddr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", opts.HTTPAddr, err)
	}

	store, closer, err := openAccountStore(opts.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	mux := http.NewServeMux()
	rest.NewHandler(service.New(store)).RegisterRoutes(mux)

	httpServer := &http.Server{
		Handler:           otelhttp.NewHandler(mux, "account-service"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		listener:   listener,
		httpServer: httpServer,
		store:      closer,
	}, nil
}

// Addr returns the listener address for the account server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves an account server until the context ends.
func Run(ctx context.Context, opts Options) error {
	accountServer, err := New(opts)
	if err != nil {
		return err
	}
	return accountServer.Serve(ctx)
}

// Serve starts the account server and blocks until it stops or the context
// ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	log.Printf("account server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve HTTP: %w", err)
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(shutdownCtx)
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

// openAccountStore picks the persistent store when a path is configured and
// falls back to the in-memory store otherwise.
func openAccountStore(path string) (storage.AccountStore, io.Closer, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		log.Print("no db path configured, using in-memory account store")
		return memory.New(), nil, nil
	}

	if dir := filepath.Dir(trimmed); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := accountsqlite.Open(trimmed)
	if err != nil {
		return nil, nil, fmt.Errorf("open account sqlite store: %w", err)
	}
	return store, store, nil
}

func (s *Server) closeStore() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close account store: %v", err)
	}
}

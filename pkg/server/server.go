package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/releaseorder/pkg/pipeline"
)

// Defaults for [Settings].
const (
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 4 << 20
	DefaultMaxItems     = 10000
	DefaultOrderTimeout = 10 * time.Second
)

// Settings configures the HTTP listener.
type Settings struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// MaxBodyBytes bounds request bodies; larger bodies get 413.
	MaxBodyBytes int64
	// MaxItems bounds the manifest size; larger manifests get 413.
	MaxItems int
	// OrderTimeout bounds one ordering run, cycle search included. Runs
	// that exceed it get 503.
	OrderTimeout time.Duration
}

// DefaultSettings returns settings suitable for local use.
func DefaultSettings() Settings {
	return Settings{
		Addr:         DefaultAddr,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		MaxBodyBytes: DefaultMaxBodyBytes,
		MaxItems:     DefaultMaxItems,
		OrderTimeout: DefaultOrderTimeout,
	}
}

// Server serves the ordering API.
type Server struct {
	settings Settings
	runner   *pipeline.Runner
	logger   *log.Logger

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// New creates a server. Zero settings fields take their defaults and a nil
// logger uses the runner's.
func New(runner *pipeline.Runner, logger *log.Logger, settings Settings) *Server {
	def := DefaultSettings()
	if settings.Addr == "" {
		settings.Addr = def.Addr
	}
	if settings.MaxBodyBytes <= 0 {
		settings.MaxBodyBytes = def.MaxBodyBytes
	}
	if settings.MaxItems <= 0 {
		settings.MaxItems = def.MaxItems
	}
	if settings.OrderTimeout <= 0 {
		settings.OrderTimeout = def.OrderTimeout
	}
	if logger == nil {
		logger = runner.Logger
	}
	return &Server{settings: settings, runner: runner, logger: logger}
}

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/order", s.handleOrder)
	})
	return r
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return errors.New("server already started")
	}

	ln, err := net.Listen("tcp", s.settings.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.settings.Addr, err)
	}
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.settings.ReadTimeout,
		WriteTimeout: s.settings.WriteTimeout,
		IdleTimeout:  s.settings.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
	s.listener = ln
	s.server = srv

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve failed", "err", err)
		}
	}()
	s.logger.Info("listening", "addr", ln.Addr().String())
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return nil
	}
	err := s.server.Shutdown(ctx)
	s.server = nil
	s.listener = nil
	return err
}

// Run starts the server and blocks until ctx is done, then shuts down with
// a bounded grace period.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return s.Shutdown(shutdownCtx)
}

// Addr returns the bound address once started, or the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.settings.Addr
	}
	return s.listener.Addr().String()
}

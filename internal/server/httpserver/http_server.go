// Package httpserver runs the docs and admin HTTP servers on pre-bound listeners.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"git.home.luguber.info/inful/coffeedocs/internal/config"
	derrors "git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
	"git.home.luguber.info/inful/coffeedocs/internal/logfields"
	"git.home.luguber.info/inful/coffeedocs/internal/server/handlers"
	smw "git.home.luguber.info/inful/coffeedocs/internal/server/middleware"
)

// Server manages the docs and admin endpoints.
type Server struct {
	cfg    *config.Config
	opts   Options
	logger *slog.Logger

	monitoringHandlers *handlers.MonitoringHandlers
	apiHandlers        *handlers.APIHandlers
	errorAdapter       *derrors.HTTPErrorAdapter

	mu          sync.Mutex
	docsServer  *http.Server
	adminServer *http.Server
	docsAddr    net.Addr
	adminAddr   net.Addr
}

// New constructs a new HTTP server wiring instance.
func New(cfg *config.Config, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:                cfg,
		opts:               opts,
		logger:             logger,
		monitoringHandlers: handlers.NewMonitoringHandlers(opts.Runtime),
		apiHandlers:        handlers.NewAPIHandlers(opts.LinkChecker),
		errorAdapter:       derrors.NewHTTPErrorAdapter(logger),
	}
}

// Start binds both ports and starts serving. Either both servers start or
// neither does.
func (s *Server) Start(ctx context.Context) error {
	type preBind struct {
		name string
		port int
		ln   net.Listener
	}
	binds := []preBind{
		{name: "docs", port: s.cfg.HTTP.DocsPort},
		{name: "admin", port: s.cfg.HTTP.AdminPort},
	}
	var bindErrs []error
	lc := net.ListenConfig{}
	for i := range binds {
		addr := net.JoinHostPort(s.cfg.HTTP.Host, strconv.Itoa(binds[i].port))
		ln, err := lc.Listen(ctx, "tcp", addr)
		if err != nil {
			bindErrs = append(bindErrs, fmt.Errorf("%s port %d: %w", binds[i].name, binds[i].port, err))
			continue
		}
		binds[i].ln = ln
	}
	if len(bindErrs) > 0 {
		for _, b := range binds {
			if b.ln != nil {
				_ = b.ln.Close()
			}
		}
		return derrors.WrapError(errors.Join(bindErrs...), derrors.CategoryNetwork, "http startup failed").Build()
	}

	s.mu.Lock()
	s.docsServer = s.newServer("docs", s.docsHandler())
	s.adminServer = s.newServer("admin", s.adminMux())
	s.docsAddr = binds[0].ln.Addr()
	s.adminAddr = binds[1].ln.Addr()
	s.mu.Unlock()

	s.serve("docs", s.docsServer, binds[0].ln)
	s.serve("admin", s.adminServer, binds[1].ln)

	s.logger.Info("HTTP servers started",
		slog.String("docs_addr", s.docsAddr.String()),
		slog.String("admin_addr", s.adminAddr.String()))
	return nil
}

// Stop gracefully shuts down both servers.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if s.adminServer != nil {
		if err := s.adminServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("admin server shutdown: %w", err))
		}
	}
	if s.docsServer != nil {
		if err := s.docsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("docs server shutdown: %w", err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.logger.Info("HTTP servers stopped")
	return nil
}

// DocsAddr returns the bound docs address, or nil before Start.
func (s *Server) DocsAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docsAddr
}

// AdminAddr returns the bound admin address, or nil before Start.
func (s *Server) AdminAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adminAddr
}

func (s *Server) newServer(name string, h http.Handler) *http.Server {
	return &http.Server{
		Handler:      smw.Chain(name, s.logger, s.errorAdapter, s.opts.Recorder)(h),
		ReadTimeout:  s.cfg.HTTP.ReadTimeout,
		WriteTimeout: s.cfg.HTTP.WriteTimeout,
		IdleTimeout:  s.cfg.HTTP.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}
}

// serve launches srv on its pre-bound listener.
func (s *Server) serve(kind string, srv *http.Server, ln net.Listener) {
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", logfields.Server(kind), logfields.Error(err))
		}
	}()
}

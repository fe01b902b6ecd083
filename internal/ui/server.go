// Package ui provides the web server behind the designer canvas.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/canvasql/canvasql/internal/state"
	"github.com/canvasql/canvasql/internal/ui/router"
)

// Server is the designer UI server.
type Server struct {
	store        *state.Store
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	projectFile  string
	logger       *slog.Logger
}

// Config holds configuration for the UI server.
type Config struct {
	Store         *state.Store
	Port          int
	Watch         bool
	SessionSecret string
	ProjectFile   string
	Logger        *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		store:        cfg.Store,
		sessionStore: sessionStore,
		port:         cfg.Port,
		watch:        cfg.Watch,
		projectFile:  cfg.ProjectFile,
		logger:       logger,
	}
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting designer UI", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.store, s.sessionStore, s.projectFile, s.logger); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch && s.projectFile != "" {
		eg.Go(func() error {
			return s.watchProjectFile(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchProjectFile reloads the store when the project file changes on
// disk, debounced so editors that write in bursts trigger one reload.
func (s *Server) watchProjectFile(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(s.projectFile)
	if err := watcher.Add(dir); err != nil {
		s.logger.Error("failed to watch project directory", "dir", dir, "error", err)
		return nil
	}

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Name != s.projectFile || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(250*time.Millisecond, func() {
				if err := s.reloadProject(); err != nil {
					s.logger.Error("project reload failed", "file", s.projectFile, "error", err)
					return
				}
				s.logger.Info("project reloaded", "file", s.projectFile)
			})

		case err := <-watcher.Errors:
			s.logger.Error("watch error", "error", err)
		}
	}
}

func (s *Server) reloadProject() error {
	return state.LoadFile(s.store, s.projectFile)
}

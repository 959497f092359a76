package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SubhankarA8415/portfolio/internal/config"
	"github.com/SubhankarA8415/portfolio/internal/content"
	"github.com/SubhankarA8415/portfolio/internal/pkg/logger"
	"github.com/SubhankarA8415/portfolio/internal/render"
	"github.com/SubhankarA8415/portfolio/internal/view"
)

type Server struct {
	cfg      *config.Config
	store    *content.Store
	renderer *render.Renderer
	log      *logger.Logger
	engine   *gin.Engine
}

// New wires the routes. The client is advertised to the page only when the
// assets directory exists.
func New(cfg *config.Config, store *content.Store, log *logger.Logger) (*Server, error) {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	var opts []render.Option
	appDir := clientDir(cfg.Assets)
	if appDir != "" {
		opts = append(opts, render.WithClient(render.ClientPath))
	}
	renderer, err := render.New(opts...)
	if err != nil {
		return nil, err
	}

	salt := cfg.HashSalt
	if salt == "" {
		if salt, err = newSalt(); err != nil {
			return nil, fmt.Errorf("generating hash salt: %w", err)
		}
	}

	s := &Server{cfg: cfg, store: store, renderer: renderer, log: log}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(visitLogger(log, ipHasher{salt: salt}))

	r.StaticFS("/static", http.FS(render.Assets()))
	if appDir != "" {
		r.Static("/"+render.ClientPath, appDir)
	} else {
		log.Warn("client assets not found, serving page without client", "assets", cfg.Assets)
	}

	r.GET("/", s.page)
	r.GET("/healthz", s.health)
	r.GET("/api/portfolio", s.portfolio)

	s.engine = r
	return s, nil
}

func clientDir(dir string) string {
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

// Handler exposes the gin engine, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// page renders into a buffer first so a template error becomes a clean 500
// rather than a truncated document.
func (s *Server) page(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, s.store.Portfolio(), view.NewState().Snapshot()); err != nil {
		s.log.Error("rendering page", "error", err)
		c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) portfolio(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Portfolio())
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("serving portfolio", "addr", srv.Addr, "mode", s.cfg.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

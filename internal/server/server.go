// Package server exposes the parsing pipeline over HTTP: clients
// upload the roster and exam documents and receive the extracted
// schedules and availability matches as JSON.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/adawood/tawafur/internal/config"
)

// Server is the HTTP front end.
type Server struct {
	cfg    *config.Config
	logger zerolog.Logger
	echo   *echo.Echo
}

// New builds the server and its routes.
func New(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(requestID())
	e.Use(requestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit(fmt.Sprintf("%d", cfg.MaxUploadBytes)))

	s := &Server{cfg: cfg, logger: logger, echo: e}

	e.GET("/healthz", s.handleHealth)
	e.POST("/parse", s.handleParse)

	return s, nil
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	return s.echo.Start(":" + s.cfg.Port)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

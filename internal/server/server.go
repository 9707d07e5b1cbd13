// ABOUTME: Echo web server for the workout log UI.
// ABOUTME: Wires routes, request logging, and graceful shutdown.
package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"liftlog/internal/storage"
)

// Server serves the workout log web UI.
type Server struct {
	echo *echo.Echo
	repo storage.Repository
	log  *logrus.Logger
	now  func() time.Time
}

// New creates a web server over the given repository.
func New(repo storage.Repository, log *logrus.Logger) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	s := &Server{
		echo: e,
		repo: repo,
		log:  log,
		now:  time.Now,
	}

	e.Use(middleware.Recover())
	e.Use(s.requestLogger)

	s.routes()
	return s, nil
}

// routes registers all UI routes.
func (s *Server) routes() {
	s.echo.GET("/", s.handleIndex)
	s.echo.POST("/workouts", s.handleAddEntry)
	s.echo.GET("/workouts/:id/edit", s.handleEditPage)
	s.echo.POST("/workouts/:id", s.handleUpdateEntry)
	s.echo.POST("/workouts/:id/delete", s.handleDeleteEntry)

	s.echo.GET("/templates", s.handleTemplatesPage)
	s.echo.POST("/templates", s.handleCreateTemplate)
	s.echo.POST("/templates/:id/delete", s.handleDeleteTemplate)
	s.echo.POST("/templates/:id/exercises", s.handleAddTemplateExercise)
	s.echo.POST("/template-exercises/:id/delete", s.handleDeleteTemplateExercise)
	s.echo.POST("/templates/:id/expand", s.handleExpandTemplate)
}

// requestLogger attaches a correlation id to every request and logs its
// outcome with structured fields.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := uuid.NewString()
		c.Set("request_id", reqID)

		start := time.Now()
		err := next(c)

		fields := logrus.Fields{
			"request_id": reqID,
			"method":     c.Request().Method,
			"path":       c.Request().URL.Path,
			"status":     c.Response().Status,
			"duration":   time.Since(start).String(),
		}
		if err != nil {
			s.log.WithFields(fields).WithError(err).Error("request failed")
			return err
		}
		s.log.WithFields(fields).Info("request")
		return nil
	}
}

// Start runs the server until the listener fails or is shut down.
func (s *Server) Start(addr string) error {
	s.log.WithField("addr", addr).Info("starting web server")
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

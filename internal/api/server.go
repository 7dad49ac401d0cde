// Package api exposes the documentation assistant over HTTP: roster CRUD,
// reference tables for the note and assessment editors, and the two
// generation endpoints.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/clinical-docs-server/internal/domain"
	"github.com/clinical-docs-server/internal/middleware"
	"github.com/clinical-docs-server/internal/service"
)

// Server represents the HTTP server
type Server struct {
	configManager     domain.ConfigManager
	logger            *logrus.Logger
	roster            domain.RosterStore
	documents         domain.DocumentStore
	noteService       *service.NoteService
	assessmentService *service.AssessmentService
	router            *gin.Engine
	server            *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(
	configManager domain.ConfigManager,
	logger *logrus.Logger,
	roster domain.RosterStore,
	documents domain.DocumentStore,
	noteService *service.NoteService,
	assessmentService *service.AssessmentService,
) *Server {
	cfg := configManager.GetConfig()

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.CORS())

	server := &Server{
		configManager:     configManager,
		logger:            logger,
		roster:            roster,
		documents:         documents,
		noteService:       noteService,
		assessmentService: assessmentService,
		router:            router,
	}

	server.setupRoutes()

	return server
}

// Start starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/partners", s.handleListPartners)
		v1.POST("/partners", s.handleCreatePartner)
		v1.PUT("/partners/:id", s.handleUpdatePartner)
		v1.DELETE("/partners/:id", s.handleDeletePartner)

		v1.GET("/programs", s.handleListPrograms)
		v1.POST("/programs", s.handleCreateProgram)
		v1.PUT("/programs/:id", s.handleUpdateProgram)
		v1.DELETE("/programs/:id", s.handleDeleteProgram)

		v1.GET("/clients", s.handleListClients)
		v1.GET("/clients/:id", s.handleGetClient)
		v1.POST("/clients", s.handleCreateClient)
		v1.PUT("/clients/:id", s.handleUpdateClient)
		v1.DELETE("/clients/:id", s.handleDeleteClient)

		v1.GET("/documents", s.handleListDocuments)
		v1.POST("/documents", s.handleCreateDocument)
		v1.DELETE("/documents/:id", s.handleDeleteDocument)

		v1.POST("/notes/generate", s.handleGenerateNotes)
		v1.POST("/assessments/generate", s.handleGenerateAssessment)

		ref := v1.Group("/reference")
		{
			ref.GET("/note-types", s.handleNoteTypes)
			ref.GET("/checkbox-groups", s.handleCheckboxGroups)
			ref.GET("/assessment-types", s.handleAssessmentTypes)
			ref.GET("/assessment-sections", s.handleAssessmentSections)
			ref.GET("/profile-options", s.handleProfileOptions)
		}
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	})
}

// respondError maps pipeline error codes onto HTTP statuses
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch domain.ErrorCode(err) {
	case domain.ErrConfiguration:
		status = http.StatusServiceUnavailable
	case domain.ErrGeneration:
		status = http.StatusBadGateway
	case domain.ErrInvalidInput:
		status = http.StatusBadRequest
	case domain.ErrNotFound:
		status = http.StatusNotFound
	}

	s.logger.WithFields(logrus.Fields{
		"status": status,
		"error":  err.Error(),
	}).Error("Request failed")

	c.JSON(status, gin.H{
		"error":          err.Error(),
		"code":           domain.ErrorCode(err),
		"correlation_id": c.GetString("correlation_id"),
	})
}

package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clinical-docs-server/internal/domain"
)

// Partners

func (s *Server) handleListPartners(c *gin.Context) {
	c.JSON(http.StatusOK, s.roster.ListPartners())
}

type partnerRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) handleCreatePartner(c *gin.Context) {
	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput, "invalid partner payload", err))
		return
	}
	c.JSON(http.StatusCreated, s.roster.CreatePartner(strings.TrimSpace(req.Name)))
}

func (s *Server) handleUpdatePartner(c *gin.Context) {
	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput, "invalid partner payload", err))
		return
	}
	partner := domain.Partner{ID: c.Param("id"), Name: strings.TrimSpace(req.Name)}
	if err := s.roster.UpdatePartner(partner); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrNotFound, err.Error(), nil))
		return
	}
	c.JSON(http.StatusOK, partner)
}

func (s *Server) handleDeletePartner(c *gin.Context) {
	if err := s.roster.DeletePartner(c.Param("id")); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrNotFound, err.Error(), nil))
		return
	}
	c.Status(http.StatusNoContent)
}

// Programs

func (s *Server) handleListPrograms(c *gin.Context) {
	c.JSON(http.StatusOK, s.roster.ListPrograms())
}

type programRequest struct {
	Name      string `json:"name" binding:"required"`
	PartnerID string `json:"partner_id" binding:"required"`
}

func (s *Server) handleCreateProgram(c *gin.Context) {
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput, "invalid program payload", err))
		return
	}
	program, err := s.roster.CreateProgram(strings.TrimSpace(req.Name), req.PartnerID)
	if err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrNotFound, err.Error(), nil))
		return
	}
	c.JSON(http.StatusCreated, program)
}

func (s *Server) handleUpdateProgram(c *gin.Context) {
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput, "invalid program payload", err))
		return
	}
	program := domain.Program{ID: c.Param("id"), Name: strings.TrimSpace(req.Name), PartnerID: req.PartnerID}
	if err := s.roster.UpdateProgram(program); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrNotFound, err.Error(), nil))
		return
	}
	c.JSON(http.StatusOK, program)
}

func (s *Server) handleDeleteProgram(c *gin.Context) {
	if err := s.roster.DeleteProgram(c.Param("id")); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrNotFound, err.Error(), nil))
		return
	}
	c.Status(http.StatusNoContent)
}

// Clients

func (s *Server) handleListClients(c *gin.Context) {
	if programID := c.Query("program_id"); programID != "" {
		c.JSON(http.StatusOK, s.roster.ListClientsByProgram(programID))
		return
	}
	c.JSON(http.StatusOK, s.roster.ListClients())
}

func (s *Server) handleGetClient(c *gin.Context) {
	client, ok := s.roster.GetClient(c.Param("id"))
	if !ok {
		s.respondError(c, domain.NewGenerationError(domain.ErrNotFound, "client not found", nil))
		return
	}
	c.JSON(http.StatusOK, client)
}

type clientRequest struct {
	Name      string               `json:"name" binding:"required"`
	ProgramID string               `json:"program_id"`
	Profile   domain.ClientProfile `json:"profile"`
}

func (s *Server) handleCreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput, "invalid client payload", err))
		return
	}
	client, err := s.roster.CreateClient(domain.Client{
		Name:      strings.TrimSpace(req.Name),
		ProgramID: req.ProgramID,
		Profile:   req.Profile,
	})
	if err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrNotFound, err.Error(), nil))
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (s *Server) handleUpdateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput, "invalid client payload", err))
		return
	}
	client := domain.Client{
		ID:        c.Param("id"),
		Name:      strings.TrimSpace(req.Name),
		ProgramID: req.ProgramID,
		Profile:   req.Profile,
	}
	if err := s.roster.UpdateClient(client); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrNotFound, err.Error(), nil))
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) handleDeleteClient(c *gin.Context) {
	if err := s.roster.DeleteClient(c.Param("id")); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrNotFound, err.Error(), nil))
		return
	}
	c.Status(http.StatusNoContent)
}

// Documents

func (s *Server) handleListDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, s.documents.ListDocuments())
}

type documentRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (s *Server) handleCreateDocument(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput, "invalid document payload", err))
		return
	}
	c.JSON(http.StatusCreated, s.documents.CreateDocument(req.Title, req.Content))
}

func (s *Server) handleDeleteDocument(c *gin.Context) {
	if err := s.documents.DeleteDocument(c.Param("id")); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrNotFound, err.Error(), nil))
		return
	}
	c.Status(http.StatusNoContent)
}

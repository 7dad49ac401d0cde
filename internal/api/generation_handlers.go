package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinical-docs-server/internal/domain"
	"github.com/clinical-docs-server/internal/service"
)

// generateNotesRequest is the session submission from the note editor.
// Selection groups arrive in the order the editor renders them and keep that
// order in the prompt.
type generateNotesRequest struct {
	NoteType            domain.NoteType   `json:"note_type" binding:"required"`
	ClientIDs           []string          `json:"client_ids"`
	SessionIntervention string            `json:"session_intervention"`
	Selections          domain.Selections `json:"selections"`
	IncludeDocuments    bool              `json:"include_documents"`
}

func (s *Server) handleGenerateNotes(c *gin.Context) {
	var req generateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput, "invalid note generation payload", err))
		return
	}

	if !validNoteType(req.NoteType) {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput,
			fmt.Sprintf("unknown note type: %s", req.NoteType), nil))
		return
	}

	clients := make([]domain.Client, 0, len(req.ClientIDs))
	for _, id := range req.ClientIDs {
		client, ok := s.roster.GetClient(id)
		if !ok {
			s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput,
				fmt.Sprintf("unknown client id: %s", id), nil))
			return
		}
		clients = append(clients, client)
	}

	var documents []domain.Document
	if req.IncludeDocuments {
		documents = s.documents.ListDocuments()
	}

	notes, err := s.noteService.GenerateNotes(c.Request.Context(), service.GenerateNotesParams{
		NoteType:            req.NoteType,
		Clients:             clients,
		Programs:            s.roster.ListPrograms(),
		Partners:            s.roster.ListPartners(),
		Documents:           documents,
		SessionIntervention: req.SessionIntervention,
		Selections:          req.Selections,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// generateAssessmentRequest is the submission from the assessment editor
type generateAssessmentRequest struct {
	ClientInfo     domain.AssessmentClientInfo `json:"client_info"`
	AssessmentType domain.AssessmentType       `json:"assessment_type" binding:"required"`
	AssessmentData domain.AssessmentData       `json:"assessment_data"`
}

func (s *Server) handleGenerateAssessment(c *gin.Context) {
	var req generateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput, "invalid assessment payload", err))
		return
	}

	if req.AssessmentType != domain.INITIAL_ASSESSMENT && req.AssessmentType != domain.COMPREHENSIVE_ASSESSMENT {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput,
			fmt.Sprintf("unknown assessment type: %s", req.AssessmentType), nil))
		return
	}

	assessment, err := s.assessmentService.GenerateAssessment(c.Request.Context(), service.GenerateAssessmentParams{
		ClientInfo:     req.ClientInfo,
		AssessmentType: req.AssessmentType,
		AssessmentData: req.AssessmentData,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func validNoteType(t domain.NoteType) bool {
	switch t {
	case domain.GROUP_THERAPY, domain.INDIVIDUAL, domain.CASE_MANAGEMENT, domain.PEER_SUPPORT:
		return true
	}
	return false
}

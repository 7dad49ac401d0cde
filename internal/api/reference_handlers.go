package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinical-docs-server/internal/domain"
	"github.com/clinical-docs-server/internal/reference"
)

// The reference endpoints serve the static tables the editors render:
// note/assessment type lists, checkbox groups per note type, and the
// section/field schemas assessments are scripted from.

func (s *Server) handleNoteTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"note_types": reference.NoteTypes})
}

func (s *Server) handleCheckboxGroups(c *gin.Context) {
	noteType := domain.NoteType(c.Query("note_type"))
	if noteType == "" {
		noteType = domain.GROUP_THERAPY
	}
	if !validNoteType(noteType) {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput,
			fmt.Sprintf("unknown note type: %s", noteType), nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"note_type": noteType,
		"groups":    reference.GroupsForNoteType(noteType),
	})
}

func (s *Server) handleAssessmentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assessment_types": reference.AssessmentTypes})
}

func (s *Server) handleAssessmentSections(c *gin.Context) {
	assessmentType := domain.AssessmentType(c.Query("type"))
	if assessmentType == "" {
		assessmentType = domain.INITIAL_ASSESSMENT
	}
	if assessmentType != domain.INITIAL_ASSESSMENT && assessmentType != domain.COMPREHENSIVE_ASSESSMENT {
		s.respondError(c, domain.NewGenerationError(domain.ErrInvalidInput,
			fmt.Sprintf("unknown assessment type: %s", assessmentType), nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"assessment_type": assessmentType,
		"sections":        reference.SectionsForAssessmentType(assessmentType),
	})
}

func (s *Server) handleProfileOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stages_of_change":      reference.StagesOfChange,
		"mbti_types":            reference.MBTITypes,
		"housing_statuses":      reference.HousingStatuses,
		"case_management_needs": reference.CaseManagementNeedOptions,
	})
}

package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/clinical-docs-server/internal/domain"
	"github.com/clinical-docs-server/internal/prompt"
)

// AssessmentService orchestrates clinical assessment generation
type AssessmentService struct {
	logger    *logrus.Logger
	generator domain.TextGenerator
}

// NewAssessmentService creates a new assessment generation service
func NewAssessmentService(logger *logrus.Logger, generator domain.TextGenerator) *AssessmentService {
	return &AssessmentService{
		logger:    logger,
		generator: generator,
	}
}

// GenerateAssessmentParams carries the inputs for assessment generation
type GenerateAssessmentParams struct {
	ClientInfo     domain.AssessmentClientInfo
	AssessmentType domain.AssessmentType
	AssessmentData domain.AssessmentData
}

// GenerateAssessment drafts a narrative assessment document from the
// clinician's section/field notes. The response is free text, surfaced
// verbatim.
func (s *AssessmentService) GenerateAssessment(ctx context.Context, params GenerateAssessmentParams) (*domain.GeneratedAssessment, error) {
	s.logger.WithFields(logrus.Fields{
		"assessment_type": params.AssessmentType,
		"client_name":     params.ClientInfo.Name,
		"sections":        len(params.AssessmentData),
	}).Info("Starting assessment generation")

	request := prompt.BuildAssessmentPrompt(params.ClientInfo, params.AssessmentType, params.AssessmentData)

	text, err := s.generator.GenerateText(ctx, request.Prompt)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"assessment_type": params.AssessmentType,
		"length":          len(text),
	}).Info("Assessment generation completed")

	return &domain.GeneratedAssessment{
		ClientName:     params.ClientInfo.Name,
		AssessmentText: text,
	}, nil
}

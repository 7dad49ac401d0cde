package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinical-docs-server/internal/domain"
)

func TestBuildAssessmentPrompt_Demographics(t *testing.T) {
	clientInfo := domain.AssessmentClientInfo{
		Name:             "Jane Doe",
		DateOfAssessment: "2024-08-01",
	}

	request := BuildAssessmentPrompt(clientInfo, domain.INITIAL_ASSESSMENT, domain.AssessmentData{})

	assert.Equal(t, domain.OutputFreeText, request.Mode)
	assert.Nil(t, request.Schema)

	p := request.Prompt
	assert.Contains(t, p, "- Client Name: Jane Doe")
	assert.Contains(t, p, "- Date of Assessment: 2024-08-01")
	assert.Contains(t, p, "- Date of Birth: Not Provided")
	assert.Contains(t, p, "- Clinician Name: Not Provided")
	assert.Contains(t, p, "- Program: Not Provided")
}

func TestBuildAssessmentPrompt_WhitespaceCountsAsAbsent(t *testing.T) {
	clientInfo := domain.AssessmentClientInfo{Name: "   "}

	request := BuildAssessmentPrompt(clientInfo, domain.INITIAL_ASSESSMENT, domain.AssessmentData{})

	assert.Contains(t, request.Prompt, "- Client Name: Not Provided")
}

func TestBuildAssessmentPrompt_TypeAndDataIncluded(t *testing.T) {
	data := domain.AssessmentData{
		"presentingProblem": {"description": "Client reports racing thoughts."},
	}

	request := BuildAssessmentPrompt(domain.AssessmentClientInfo{Name: "Jane Doe"},
		domain.COMPREHENSIVE_ASSESSMENT, data)

	p := request.Prompt
	assert.Contains(t, p, "**Assessment Type to Generate:** Comprehensive Assessment")
	assert.Contains(t, p, "Generate a complete and cohesive **Comprehensive Assessment**.")
	assert.Contains(t, p, "Client reports racing thoughts.")
	assert.Contains(t, p, "**DO NOT** use JSON.")
}

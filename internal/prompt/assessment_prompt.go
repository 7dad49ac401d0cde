package prompt

import (
	"fmt"
	"strings"

	"github.com/clinical-docs-server/internal/domain"
)

// NotProvided is the literal used for absent demographic fields in the
// assessment header.
const NotProvided = "Not Provided"

// AssessmentSystemPrompt establishes the clinical-writer persona for
// assessment generation.
const AssessmentSystemPrompt = `You are an expert clinical writer specializing in comprehensive psychological and substance use assessments. Your task is to synthesize the provided clinician's notes into a formal, narrative-style assessment document. The document must be well-organized, professional, and use appropriate clinical language.`

// BuildAssessmentPrompt composes the assessment generation request: persona,
// demographics block with "Not Provided" defaults, assessment type, formatted
// clinician notes, and the explicit instruction list. Output mode is free
// text, never JSON.
func BuildAssessmentPrompt(
	clientInfo domain.AssessmentClientInfo,
	assessmentType domain.AssessmentType,
	assessmentData domain.AssessmentData,
) domain.GenerationRequest {
	formattedData := FormatAssessmentData(assessmentData, assessmentType)

	var b strings.Builder
	b.WriteString(AssessmentSystemPrompt)
	b.WriteString("\n\n**Client & Assessment Information:**\n")
	fmt.Fprintf(&b, "- Client Name: %s\n", orNotProvided(clientInfo.Name))
	fmt.Fprintf(&b, "- Date of Birth: %s\n", orNotProvided(clientInfo.DateOfBirth))
	fmt.Fprintf(&b, "- Date of Assessment: %s\n", orNotProvided(clientInfo.DateOfAssessment))
	fmt.Fprintf(&b, "- Clinician Name: %s\n", orNotProvided(clientInfo.ClinicianName))
	fmt.Fprintf(&b, "- Program: %s\n", orNotProvided(clientInfo.ProgramName))

	fmt.Fprintf(&b, "\n**Assessment Type to Generate:** %s\n", assessmentType)
	fmt.Fprintf(&b, "\n**Clinician's Notes / Data Points:**\n%s\n", formattedData)

	b.WriteString("\n**Mission Critical Instructions:**\n")
	fmt.Fprintf(&b, "1. Generate a complete and cohesive **%s**.\n", assessmentType)
	b.WriteString("2. Use the provided **Clinician's Notes** to construct the assessment. Transform the notes from bullet points or brief statements into full, well-written paragraphs under the appropriate headings.\n")
	b.WriteString("3. Structure the output logically, following the standard sections of a clinical assessment (e.g., Presenting Problem, Risk Assessment, Substance Use History, etc.).\n")
	b.WriteString("4. Ensure the tone is objective, formal, and clinical.\n")
	b.WriteString("5. Do not just repeat the notes. You must integrate them into a flowing, professional narrative.\n")
	b.WriteString("6. If a section in the clinician's notes is empty, you may state \"Information not provided\" or omit the section if appropriate.\n")
	b.WriteString("7. The final output must be a single block of formatted text. **DO NOT** use JSON.\n")
	b.WriteString("\nGenerate the complete assessment document now.\n")

	return domain.GenerationRequest{
		Prompt: b.String(),
		Mode:   domain.OutputFreeText,
	}
}

func orNotProvided(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotProvided
	}
	return value
}

package prompt

import (
	"fmt"
	"strings"

	"github.com/clinical-docs-server/internal/domain"
	"github.com/clinical-docs-server/internal/reference"
)

// FormatAssessmentData projects the clinician's section/field answers into a
// text block, following the fixed section schema for the assessment type.
// Sections in which every field is empty or whitespace-only are absent from
// the output; empty fields inside a populated section are omitted
// individually.
func FormatAssessmentData(data domain.AssessmentData, assessmentType domain.AssessmentType) string {
	sections := reference.SectionsForAssessmentType(assessmentType)

	var b strings.Builder
	for _, section := range sections {
		sectionData, ok := data[section.ID]
		if !ok || !sectionHasContent(section, sectionData) {
			continue
		}

		fmt.Fprintf(&b, "\n## %s\n", section.Title)
		for _, field := range section.Fields {
			value := strings.TrimSpace(sectionData[field.ID])
			if value == "" {
				continue
			}
			fmt.Fprintf(&b, "- **%s**\n  - %s\n", field.Label, value)
		}
	}

	return b.String()
}

func sectionHasContent(section reference.AssessmentSection, sectionData map[string]string) bool {
	for _, field := range section.Fields {
		if strings.TrimSpace(sectionData[field.ID]) != "" {
			return true
		}
	}
	return false
}

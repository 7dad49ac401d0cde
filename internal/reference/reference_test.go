package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-docs-server/internal/domain"
)

func TestGroupsForNoteType(t *testing.T) {
	dapIDs := make([]string, 0, len(DAPCheckboxGroups))
	for _, g := range DAPCheckboxGroups {
		dapIDs = append(dapIDs, g.ID)
	}

	tests := []struct {
		name     string
		noteType domain.NoteType
		wantIDs  []string
	}{
		{name: "group therapy has only the DAP groups", noteType: domain.GROUP_THERAPY, wantIDs: dapIDs},
		{name: "case management has only the DAP groups", noteType: domain.CASE_MANAGEMENT, wantIDs: dapIDs},
		{name: "individual appends therapy modality to the DAP groups", noteType: domain.INDIVIDUAL, wantIDs: append(append([]string{}, dapIDs...), "therapyType")},
		{name: "peer support uses its own group set without the DAP groups", noteType: domain.PEER_SUPPORT, wantIDs: []string{"peerStrategies"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupsForNoteType(tt.noteType)
			require.Len(t, groups, len(tt.wantIDs))
			for i, id := range tt.wantIDs {
				assert.Equal(t, id, groups[i].ID)
			}
		})
	}
}

func TestSectionsForAssessmentType(t *testing.T) {
	initial := SectionsForAssessmentType(domain.INITIAL_ASSESSMENT)
	assert.Len(t, initial, 5)
	assert.Equal(t, "presentingProblem", initial[0].ID)

	comprehensive := SectionsForAssessmentType(domain.COMPREHENSIVE_ASSESSMENT)
	assert.Len(t, comprehensive, 16)
	assert.Equal(t, "summary", comprehensive[len(comprehensive)-1].ID)
}

func TestSectionFieldsAreComplete(t *testing.T) {
	for _, sections := range [][]AssessmentSection{InitialAssessmentSections, ComprehensiveAssessmentSections} {
		for _, section := range sections {
			assert.NotEmpty(t, section.ID)
			assert.NotEmpty(t, section.Title)
			assert.NotEmpty(t, section.Fields, "section %s has no fields", section.ID)
			for _, field := range section.Fields {
				assert.NotEmpty(t, field.ID, "section %s has a field without an id", section.ID)
				assert.NotEmpty(t, field.Label)
			}
		}
	}
}

func TestCheckboxGroupsHaveOptions(t *testing.T) {
	for _, groups := range [][]CheckboxGroup{DAPCheckboxGroups, IndividualTherapyModalityGroups, PeerSupportGroups} {
		for _, g := range groups {
			assert.NotEmpty(t, g.ID)
			assert.NotEmpty(t, g.Title)
			assert.NotEmpty(t, g.Options, "group %s has no options", g.ID)
		}
	}
}

func TestDAPTemplateSections(t *testing.T) {
	assert.Contains(t, DAPTemplate, "**D - Data:**")
	assert.Contains(t, DAPTemplate, "**A - Assessment:**")
	assert.Contains(t, DAPTemplate, "**P - Plan:**")
}

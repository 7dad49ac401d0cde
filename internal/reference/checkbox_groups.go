// Package reference holds the static clinical reference tables the form and
// prompt layers are driven by: checkbox-group schemas per note type,
// assessment section schemas per assessment type, and the fixed DAP template.
// Everything here is pure data; nothing is computed.
package reference

import (
	"github.com/clinical-docs-server/internal/domain"
)

// CheckboxOption is one selectable observation label
type CheckboxOption struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// CheckboxGroup is one ordered block of observation checkboxes, optionally
// paired with a free-text narrative field
type CheckboxGroup struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	Options        []CheckboxOption `json:"options"`
	HasNarrative   bool             `json:"has_narrative"`
	NarrativeLabel string           `json:"narrative_label,omitempty"`
}

// NoteTypes lists the supported note types in display order
var NoteTypes = []domain.NoteType{
	domain.GROUP_THERAPY,
	domain.INDIVIDUAL,
	domain.CASE_MANAGEMENT,
	domain.PEER_SUPPORT,
}

// AssessmentTypes lists the supported assessment types in display order
var AssessmentTypes = []domain.AssessmentType{
	domain.INITIAL_ASSESSMENT,
	domain.COMPREHENSIVE_ASSESSMENT,
}

// StagesOfChange lists the transtheoretical stages in model order
var StagesOfChange = []domain.StageOfChange{
	domain.PRECONTEMPLATION,
	domain.CONTEMPLATION,
	domain.PREPARATION,
	domain.ACTION,
	domain.MAINTENANCE,
	domain.RECURRENCE,
}

// MBTITypes lists the selectable MBTI values, empty first for "unset"
var MBTITypes = []string{
	"", "ISTJ", "ISFJ", "INFJ", "INTJ", "ISTP", "ISFP", "INFP", "INTP",
	"ESTP", "ESFP", "ENFP", "ENTP", "ESTJ", "ESFJ", "ENFJ", "ENTJ", "Unknown",
}

// HousingStatuses lists the selectable housing situations
var HousingStatuses = []domain.HousingStatus{
	domain.HOUSING_STABLE,
	domain.HOUSING_TRANSITIONAL,
	domain.HOUSING_HOMELESS,
	domain.HOUSING_OTHER,
}

// CaseManagementNeedOptions lists the selectable case-management needs
var CaseManagementNeedOptions = []string{
	"Housing Assistance",
	"Food Security",
	"Employment Services",
	"Legal Aid",
	"Benefits Application (SNAP, Medicaid)",
	"Educational Support",
}

// DAPCheckboxGroups are the observation groups shared by every note type
var DAPCheckboxGroups = []CheckboxGroup{
	{
		ID:          "participation",
		Title:       "1. Participation",
		Description: "This section captures the client's level of engagement in the session.",
		Options: []CheckboxOption{
			{Label: "Active and Engaged"},
			{Label: "Cooperative and Responsive"},
			{Label: "Appropriately Participatory"},
			{Label: "Somewhat Passive/Reserved"},
			{Label: "Guarded or Resistant"},
			{Label: "Distracted or Inattentive"},
			{Label: "Hesitant or Anxious"},
		},
		HasNarrative:   true,
		NarrativeLabel: "Narrative Details on Participation",
	},
	{
		ID:          "responseToIntervention",
		Title:       "2. Response to Intervention(s)",
		Description: "This assesses how the client reacted to the clinical work done in the session.",
		Options: []CheckboxOption{
			{Label: "Receptive and Insightful"},
			{Label: "Appeared to Benefit"},
			{Label: "Able to Apply Concepts"},
			{Label: "Demonstrated Understanding"},
			{Label: "Processed Material Effectively"},
			{Label: "Struggled to Grasp Concepts"},
			{Label: "Responded with Skepticism"},
			{Label: "Became Emotionally Activated"},
		},
		HasNarrative:   true,
		NarrativeLabel: "Narrative on Response",
	},
	{
		ID:          "progress",
		Title:       "3. Progress",
		Description: "This directly addresses movement toward or away from ISP goals.",
		Options: []CheckboxOption{
			{Label: "Made Significant Progress"},
			{Label: "Made Moderate Progress"},
			{Label: "Made Minimal/Limited Progress"},
			{Label: "Maintained Baseline"},
			{Label: "Experienced a Setback / Some Regression"},
			{Label: "Encountered New Barriers"},
			{Label: "Successfully Utilized Skill(s)"},
		},
		HasNarrative:   true,
		NarrativeLabel: "Narrative on Progress (MUST link to specific ISP Goal #)",
	},
	{
		ID:          "riskAssessment",
		Title:       "4. Suicidality / Risk Assessment",
		Description: "A mandatory part of the Assessment.",
		Options: []CheckboxOption{
			{Label: "Suicidal ideas or intentions are not in evidence and not expressed. No suicidal plans are present. Client denies SI/HI."},
			{Label: "Client reported passive suicidal ideation without active intent or plan."},
			{Label: "Client reported active suicidal ideation."},
			{Label: "Client reported homicidal ideation."},
			{Label: "Risk factors were assessed"},
			{Label: "Protective factors were reviewed"},
		},
		HasNarrative:   true,
		NarrativeLabel: "Narrative on Risk / Safety Plan Details",
	},
	{
		ID:          "plan",
		Title:       "5. Plan",
		Description: "This outlines what happens next.",
		Options: []CheckboxOption{
			{Label: "Continue with Current Treatment Plan"},
			{Label: "Modify Treatment Plan"},
			{Label: "Focus on Skill-Building in Next Session"},
			{Label: "Focus on Insight/Processing in Next Session"},
			{Label: "Provide Psychoeducation on..."},
			{Label: "Coordinate Care with..."},
			{Label: "Provide Client with Resources for..."},
			{Label: "Next session is scheduled for..."},
			{Label: "Client to call to schedule next session."},
		},
		HasNarrative:   true,
		NarrativeLabel: "Narrative for Plan Specifics (Detail homework, coordination, etc.)",
	},
}

// IndividualTherapyModalityGroups are appended for individual-therapy notes
var IndividualTherapyModalityGroups = []CheckboxGroup{
	{
		ID:    "therapyType",
		Title: "Therapy Type(s) Utilized",
		Options: []CheckboxOption{
			{Label: "Motivational Interviewing (MI)"},
			{Label: "Cognitive Behavioral Therapy (CBT)"},
			{Label: "Dialectical Behavior Therapy (DBT)"},
			{Label: "Choice Theory"},
			{Label: "Polyvagal Theory"},
		},
		HasNarrative:   true,
		NarrativeLabel: "Other/Specifics",
	},
}

// PeerSupportGroups replace the DAP groups for peer-support notes
var PeerSupportGroups = []CheckboxGroup{
	{
		ID:    "peerStrategies",
		Title: "Peer Support Strategies Implemented",
		Options: []CheckboxOption{
			{Label: "Active Listening"},
			{Label: "Validation and Empathy"},
			{Label: "Encouragement and Celebrating Successes"},
			{Label: "Sharing of Relevant Lived Experience"},
			{Label: "Skill-Building Collaboration"},
			{Label: "Goal Setting Support"},
			{Label: "Resource Connection/Navigation"},
			{Label: "Empowerment/Advocacy Support"},
		},
		HasNarrative:   true,
		NarrativeLabel: "Purpose of sharing lived experience, if applicable",
	},
}

// GroupsForNoteType returns the ordered checkbox groups a session form shows
// for the given note type. Individual therapy appends the modality group to
// the DAP groups; peer support documents against its own group set only.
func GroupsForNoteType(noteType domain.NoteType) []CheckboxGroup {
	switch noteType {
	case domain.INDIVIDUAL:
		groups := make([]CheckboxGroup, 0, len(DAPCheckboxGroups)+len(IndividualTherapyModalityGroups))
		groups = append(groups, DAPCheckboxGroups...)
		return append(groups, IndividualTherapyModalityGroups...)
	case domain.PEER_SUPPORT:
		return PeerSupportGroups
	}
	return DAPCheckboxGroups
}

// DAPTemplate is the skeleton every generated note must follow
const DAPTemplate = `
**D - Data:**
(Client's self-report, clinician's observations, and the specific intervention performed. This section is for factual information.)

**A - Assessment:**
(Clinician's professional interpretation of the data, client's response to the intervention, progress towards goals, and risk assessment.)

**P - Plan:**
(Next steps for the client and clinician, and the date/time of the next scheduled appointment.)
`

package domain

// Core Enums and Types

// NoteType represents the kind of clinical service being documented
type NoteType string

const (
	GROUP_THERAPY   NoteType = "Group Therapy"
	INDIVIDUAL      NoteType = "Individual Therapy"
	CASE_MANAGEMENT NoteType = "Case Management"
	PEER_SUPPORT    NoteType = "Peer Support"
)

// AssessmentType represents the depth of clinical assessment being generated
type AssessmentType string

const (
	INITIAL_ASSESSMENT       AssessmentType = "Initial Assessment"
	COMPREHENSIVE_ASSESSMENT AssessmentType = "Comprehensive Assessment"
)

// StageOfChange represents a client's readiness to change behavior
// (transtheoretical model)
type StageOfChange string

const (
	PRECONTEMPLATION StageOfChange = "Precontemplation"
	CONTEMPLATION    StageOfChange = "Contemplation"
	PREPARATION      StageOfChange = "Preparation"
	ACTION           StageOfChange = "Action"
	MAINTENANCE      StageOfChange = "Maintenance"
	RECURRENCE       StageOfChange = "Recurrence"
)

// HousingStatus represents a client's current housing situation
type HousingStatus string

const (
	HOUSING_STABLE       HousingStatus = "Stable Housing"
	HOUSING_TRANSITIONAL HousingStatus = "Transitional"
	HOUSING_HOMELESS     HousingStatus = "Homeless"
	HOUSING_OTHER        HousingStatus = "Other"
)

// Roster Models

// Partner represents a behavioral-health partner organization
type Partner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Program represents a treatment program operated by a partner
type Program struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PartnerID string `json:"partner_id"`
}

// ClientProfile is a flat bag of optional clinical attributes. Every field is
// absent-by-default; formatting emits only what is present.
type ClientProfile struct {
	// Core demographics
	DateOfBirth           string        `json:"date_of_birth,omitempty"`
	ContactPhone          string        `json:"contact_phone,omitempty"`
	ContactEmail          string        `json:"contact_email,omitempty"`
	Address               string        `json:"address,omitempty"`
	HousingStatus         HousingStatus `json:"housing_status,omitempty"`
	IntakeDate            string        `json:"intake_date,omitempty"`
	ReferralSource        string        `json:"referral_source,omitempty"`
	EmergencyContact      string        `json:"emergency_contact,omitempty"`
	ExpectedDischargeDate string        `json:"expected_discharge_date,omitempty"`

	// Clinical and psychosocial portrait
	PresentingProblem       string        `json:"presenting_problem,omitempty"`
	MBTI                    string        `json:"mbti,omitempty"`
	IntrovertExtrovertScale int           `json:"introvert_extrovert_scale,omitempty"` // 1-10
	StageOfChange           StageOfChange `json:"stage_of_change,omitempty"`
	PrimaryMotivators       string        `json:"primary_motivators,omitempty"`
	ReadinessRuler          int           `json:"readiness_ruler,omitempty"` // 1-10
	Strengths               []string      `json:"strengths,omitempty"`
	SkillsAndHobbies        []string      `json:"skills_and_hobbies,omitempty"`
	SupportSystem           []string      `json:"support_system,omitempty"`
	Barriers                []string      `json:"barriers,omitempty"`
	CaseManagementNeeds     []string      `json:"case_management_needs,omitempty"`

	// History flags, rendered as a single comma-joined line when any is set
	HistoryOfTrauma              bool   `json:"history_of_trauma,omitempty"`
	HistoryOfSubstanceUse        bool   `json:"history_of_substance_use,omitempty"`
	SignificantMedicalConditions bool   `json:"significant_medical_conditions,omitempty"`
	NotesOnHistory               string `json:"notes_on_history,omitempty"`
}

// Client represents a client on the roster
type Client struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	ProgramID string        `json:"program_id"`
	Profile   ClientProfile `json:"profile"`
}

// Document represents a background knowledge document appended verbatim to
// note prompts
type Document struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Session Observation Models

// SelectionGroup holds the chosen option labels and optional free-text
// narrative for one checkbox group. Group order is significant: prompts must
// render groups in the order the caller supplied them.
type SelectionGroup struct {
	GroupID   string   `json:"group_id"`
	Options   []string `json:"options"`
	Narrative string   `json:"narrative,omitempty"`
}

// Selections is the ordered set of checkbox-group selections captured for a
// session
type Selections struct {
	Groups []SelectionGroup `json:"groups"`
}

// IsEmpty reports whether no group contributes any options or narrative
func (s Selections) IsEmpty() bool {
	for _, g := range s.Groups {
		if len(g.Options) > 0 || g.Narrative != "" {
			return false
		}
	}
	return true
}

// Assessment Models

// AssessmentData maps section id -> field id -> free-text answer
type AssessmentData map[string]map[string]string

// AssessmentClientInfo carries the demographic fields of the assessment
// header. Absent fields render as "Not Provided".
type AssessmentClientInfo struct {
	Name             string `json:"name"`
	DateOfBirth      string `json:"date_of_birth"`
	DateOfAssessment string `json:"date_of_assessment"`
	ClinicianName    string `json:"clinician_name"`
	ProgramName      string `json:"program_name"`
}

// Generation Models

// OutputMode selects between schema-constrained JSON and free text
type OutputMode string

const (
	OutputStructured OutputMode = "structured"
	OutputFreeText   OutputMode = "free_text"
)

// ResponseSchema declares the shape the generation service must produce in
// structured mode. It mirrors the generateContent responseSchema wire format.
type ResponseSchema struct {
	Type        string                    `json:"type"`
	Items       *ResponseSchema           `json:"items,omitempty"`
	Properties  map[string]ResponseSchema `json:"properties,omitempty"`
	Required    []string                  `json:"required,omitempty"`
	Description string                    `json:"description,omitempty"`
}

// GenerationRequest is the composed prompt plus its output-shape constraint
type GenerationRequest struct {
	Prompt string          `json:"prompt"`
	Mode   OutputMode      `json:"mode"`
	Schema *ResponseSchema `json:"schema,omitempty"`
}

// GeneratedNote is one client's drafted DAP note as returned by the model
type GeneratedNote struct {
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName"`
	Note       string `json:"note"`
}

// GeneratedAssessment is a drafted narrative assessment document
type GeneratedAssessment struct {
	ClientName     string `json:"client_name"`
	AssessmentText string `json:"assessment_text"`
}

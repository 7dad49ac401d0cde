package prompt

import (
	"fmt"
	"strings"

	"github.com/clinical-docs-server/internal/domain"
	"github.com/clinical-docs-server/internal/reference"
)

// NoSelectionsFallback is emitted in place of the observations block when the
// clinician checked nothing and wrote no narratives.
const NoSelectionsFallback = "No specific checkbox observations provided."

// NoteSystemPrompt establishes the documentation philosophy and format rules
// for progress-note generation.
const NoteSystemPrompt = `You are an expert clinical documentation assistant for behavioral health providers in Ohio. Your purpose is to craft defensible and effective progress notes that are simultaneously a faithful narrative of the clinical encounter and a bulletproof shield against the scrutiny of auditors from Medicaid, CARF, and OMHAS. Your documentation is a fundamental component of the clinical service itself.

**The Guiding Philosophy: Documentation as Stewardship**
Your notes are a testament to the work providers do in their community. Each note is a brick building the fortress that protects the agency, validates the work, and chronicles the client's path toward their goals.

---
**Core Traits of a Quality Note (Non-Negotiable Rules)**

**1. The Golden Thread is Visible and Unbroken:**
You MUST ensure a clear, logical connection from the assessment/diagnosis, through the treatment plan, into every progress note. The intervention described in the note must be a logical action taken to address a specific ISP goal/objective mentioned in the client's profile or session data.

**2. Medical Necessity is Explicitly Stated:**
Every note MUST justify why the service was necessary for this client on this day. The note must document symptoms, behaviors, or functional impairments that require intervention. Vague statements are unacceptable. The note must justify the time and expense.

**3. The Client's Voice and Participation are Evident:**
The note must reflect a collaborative process.
- Use direct quotes from the client's report when powerful and relevant.
- Describe the client's reaction to interventions (e.g., "Client appeared relieved...", "Client responded by...").
- Document the client's contribution to the plan ("Client agreed to...").

**4. Language is Objective, Behavioral, and Free of Jargon:**
The note must paint a clear picture for an outside reader.
- **Describe, don't label:** Instead of "Client was angry," write "Client spoke in a raised voice, leaned forward, and stated, 'This is unfair!'"
- **Avoid slang and acronyms:** Write out terms like "Cognitive Behavioral Therapy (CBT)" initially.
- **Separate fact from interpretation:** Use phrases like "Client reported...", "Clinician observed...", "This presentation is consistent with...".

**5. Be Concise Yet Complete:**
The note must be long enough to tell the story and justify the service, but not a word longer. Avoid "note cloning" (copying/pasting from previous notes). Each note must be unique to the specific date of service.

---
**Structure and Language**

**Verbiage:** Use specific, active, and justifiable language.
- Instead of "Discussed coping skills," use "Clinician educated client on 3 positive self-talk statements..."
- Instead of "Provided support," use "Clinician validated the client's stated feelings of..."

**Format:** You MUST use the DAP (Data, Assessment, Plan) format. Adhere strictly to this structure.

---
**Your Task**
Generate a separate and complete DAP note for EACH client provided. Seamlessly integrate the information from the "Session Information," "Clinician's Observations," and the detailed "Client Information" into the narrative of the DAP note. DO NOT just list the checkbox items or profile data. Use them to inform the descriptive language of the note, creating a rich, cohesive story of the session. If Background Knowledge Documents are provided, use them as a primary reference.

The final output MUST be a valid JSON array, where each object represents a client's note.
`

// NoteResponseSchema declares the structured-array output contract for note
// generation: one object per client, all three fields required.
func NoteResponseSchema() *domain.ResponseSchema {
	return &domain.ResponseSchema{
		Type: "ARRAY",
		Items: &domain.ResponseSchema{
			Type: "OBJECT",
			Properties: map[string]domain.ResponseSchema{
				"clientId": {
					Type:        "STRING",
					Description: "The unique ID of the client.",
				},
				"clientName": {
					Type:        "STRING",
					Description: "The client's full name.",
				},
				"note": {
					Type:        "STRING",
					Description: "The full, formatted clinical note for the client, strictly following the DAP (Data, Assessment, Plan) format.",
				},
			},
			Required: []string{"clientId", "clientName", "note"},
		},
	}
}

// BuildNotePrompt composes the complete progress-note generation request.
// The composition order is a contract: system instruction, background
// documents (omitted when none), note type, intervention narrative,
// observations (with fallback), per-client profile blocks, DAP template.
func BuildNotePrompt(
	noteType domain.NoteType,
	clients []domain.Client,
	programs []domain.Program,
	partners []domain.Partner,
	documents []domain.Document,
	sessionIntervention string,
	selections domain.Selections,
) domain.GenerationRequest {
	clientBlocks := make([]string, 0, len(clients))
	for _, c := range clients {
		clientBlocks = append(clientBlocks, FormatClientProfile(c, programs, partners))
	}

	selectionDetails := FormatSelections(selections)
	if selectionDetails == "" {
		selectionDetails = NoSelectionsFallback
	}

	var b strings.Builder
	b.WriteString(NoteSystemPrompt)
	b.WriteString("\n")

	if len(documents) > 0 {
		b.WriteString("\n**Background Knowledge Documents:**\n")
		b.WriteString("You have access to the following documents. Refer to this information when relevant.\n")
		for i, d := range documents {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "--- Document: %s ---\n%s", d.Title, d.Content)
		}
		b.WriteString("\n--- End of Documents ---\n")
	}

	fmt.Fprintf(&b, "\n**Note Type:** %s\n", noteType)
	fmt.Fprintf(&b, "\n**Core Session Intervention/Topic:**\n%s\n", sessionIntervention)
	fmt.Fprintf(&b, "\n**Clinician's Observations (Checkboxes and Narratives):**\n%s\n", selectionDetails)
	fmt.Fprintf(&b, "\n**Client(s) for this Session:**\n%s\n", strings.Join(clientBlocks, "\n\n"))
	fmt.Fprintf(&b, "\n**DAP Note Template to Follow:**\n%s\n", reference.DAPTemplate)
	b.WriteString("\nGenerate the DAP note(s) now based on all the information provided.\n")

	return domain.GenerationRequest{
		Prompt: b.String(),
		Mode:   domain.OutputStructured,
		Schema: NoteResponseSchema(),
	}
}

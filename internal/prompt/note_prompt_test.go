package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-docs-server/internal/domain"
)

func TestBuildNotePrompt_Composition(t *testing.T) {
	programs, partners := testRoster()
	clients := []domain.Client{
		{
			ID: "c-1", Name: "Jane Doe", ProgramID: "prog-1",
			Profile: domain.ClientProfile{PresentingProblem: "Anxiety"},
		},
	}
	selections := domain.Selections{Groups: []domain.SelectionGroup{
		{GroupID: "participation", Options: []string{"Engaged"}},
	}}

	request := BuildNotePrompt(domain.GROUP_THERAPY, clients, programs, partners, nil,
		"Processed grief using the empty chair technique.", selections)

	assert.Equal(t, domain.OutputStructured, request.Mode)
	require.NotNil(t, request.Schema)
	assert.Equal(t, "ARRAY", request.Schema.Type)
	require.NotNil(t, request.Schema.Items)
	assert.ElementsMatch(t, []string{"clientId", "clientName", "note"}, request.Schema.Items.Required)

	p := request.Prompt
	assert.Contains(t, p, "**Note Type:** Group Therapy")
	assert.Contains(t, p, "**Core Session Intervention/Topic:**\nProcessed grief using the empty chair technique.")
	assert.Contains(t, p, "- participation: Engaged")
	assert.Contains(t, p, "Partner: Acme")
	assert.Contains(t, p, "Presenting Problem: Anxiety")
	assert.Contains(t, p, "**D - Data:**")

	// No documents supplied, so the documents block must be absent entirely
	assert.NotContains(t, p, "Background Knowledge Documents")
	assert.NotContains(t, p, "--- Document:")
}

func TestBuildNotePrompt_SectionOrderIsFixed(t *testing.T) {
	programs, partners := testRoster()
	clients := []domain.Client{
		{ID: "c-1", Name: "Jane Doe", ProgramID: "prog-1"},
	}
	documents := []domain.Document{
		{ID: "d-1", Title: "House Rules", Content: "Curfew at 10pm."},
	}

	request := BuildNotePrompt(domain.INDIVIDUAL, clients, programs, partners, documents,
		"CBT thought record", domain.Selections{})

	p := request.Prompt
	order := []string{
		"**Background Knowledge Documents:**",
		"--- Document: House Rules ---",
		"--- End of Documents ---",
		"**Note Type:**",
		"**Core Session Intervention/Topic:**",
		"**Clinician's Observations (Checkboxes and Narratives):**",
		"**Client(s) for this Session:**",
		"**DAP Note Template to Follow:**",
	}

	last := -1
	for _, marker := range order {
		idx := strings.Index(p, marker)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", marker)
		assert.Greater(t, idx, last, "section %q out of order", marker)
		last = idx
	}
}

func TestBuildNotePrompt_EmptySelectionsUseFallback(t *testing.T) {
	programs, partners := testRoster()
	clients := []domain.Client{{ID: "c-1", Name: "Jane Doe", ProgramID: "prog-1"}}

	// A selections value whose groups are all empty counts as empty too
	selections := domain.Selections{Groups: []domain.SelectionGroup{
		{GroupID: "participation"},
	}}

	request := BuildNotePrompt(domain.PEER_SUPPORT, clients, programs, partners, nil, "", selections)

	assert.Contains(t, request.Prompt, NoSelectionsFallback)
	assert.NotContains(t, request.Prompt, "- participation")
}

func TestBuildNotePrompt_MultipleClientBlocks(t *testing.T) {
	programs, partners := testRoster()
	clients := []domain.Client{
		{ID: "c-1", Name: "Jane Doe", ProgramID: "prog-1"},
		{ID: "c-2", Name: "John Roe", ProgramID: "prog-2"},
	}

	request := BuildNotePrompt(domain.GROUP_THERAPY, clients, programs, partners, nil, "Check-in", domain.Selections{})

	assert.Contains(t, request.Prompt, "### Client Information for: Jane Doe (ID: c-1)")
	assert.Contains(t, request.Prompt, "### Client Information for: John Roe (ID: c-2)")
	assert.Less(t,
		strings.Index(request.Prompt, "Jane Doe"),
		strings.Index(request.Prompt, "John Roe"),
		"client blocks keep the request order")
}

func TestBuildNotePrompt_MultipleDocumentsSeparated(t *testing.T) {
	programs, partners := testRoster()
	clients := []domain.Client{{ID: "c-1", Name: "Jane Doe", ProgramID: "prog-1"}}
	documents := []domain.Document{
		{ID: "d-1", Title: "First", Content: "one"},
		{ID: "d-2", Title: "Second", Content: "two"},
	}

	request := BuildNotePrompt(domain.CASE_MANAGEMENT, clients, programs, partners, documents, "", domain.Selections{})

	assert.Contains(t, request.Prompt, "--- Document: First ---\none")
	assert.Contains(t, request.Prompt, "--- Document: Second ---\ntwo")
	assert.Equal(t, 1, strings.Count(request.Prompt, "--- End of Documents ---"))
}

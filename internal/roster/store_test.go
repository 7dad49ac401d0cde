package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-docs-server/internal/domain"
)

func TestPartnerCRUD(t *testing.T) {
	store := NewStore()

	created := store.CreatePartner("Miracle House")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Miracle House", created.Name)

	got, ok := store.GetPartner(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)

	created.Name = "Miracle House East"
	require.NoError(t, store.UpdatePartner(created))
	got, _ = store.GetPartner(created.ID)
	assert.Equal(t, "Miracle House East", got.Name)

	assert.Error(t, store.UpdatePartner(domain.Partner{ID: "missing", Name: "x"}))

	require.NoError(t, store.DeletePartner(created.ID))
	_, ok = store.GetPartner(created.ID)
	assert.False(t, ok)
	assert.Error(t, store.DeletePartner(created.ID))
}

func TestDeletePartnerCascades(t *testing.T) {
	store := NewStore()

	partner := store.CreatePartner("Stairway to Recovery")
	program, err := store.CreateProgram("IOP SUD", partner.ID)
	require.NoError(t, err)
	client, err := store.CreateClient(domain.Client{Name: "Jane Doe", ProgramID: program.ID})
	require.NoError(t, err)

	other := store.CreatePartner("Untouched Org")
	otherProg, err := store.CreateProgram("Outpatient SUD", other.ID)
	require.NoError(t, err)

	require.NoError(t, store.DeletePartner(partner.ID))

	_, ok := store.GetProgram(program.ID)
	assert.False(t, ok, "programs of a deleted partner are removed")
	_, ok = store.GetClient(client.ID)
	assert.False(t, ok, "clients of a deleted partner's programs are removed")

	_, ok = store.GetProgram(otherProg.ID)
	assert.True(t, ok, "unrelated programs survive")
}

func TestDeleteProgramCascadesToClients(t *testing.T) {
	store := NewStore()

	partner := store.CreatePartner("Monte's Place")
	program, err := store.CreateProgram("Peer Support Only", partner.ID)
	require.NoError(t, err)
	client, err := store.CreateClient(domain.Client{Name: "John Roe", ProgramID: program.ID})
	require.NoError(t, err)

	require.NoError(t, store.DeleteProgram(program.ID))

	_, ok := store.GetClient(client.ID)
	assert.False(t, ok)
	_, ok = store.GetPartner(partner.ID)
	assert.True(t, ok, "partner survives program deletion")
}

func TestCreateProgramRequiresPartner(t *testing.T) {
	store := NewStore()
	_, err := store.CreateProgram("Orphan Program", "missing")
	assert.Error(t, err)
}

func TestClientCRUD(t *testing.T) {
	store := NewStore()
	partner := store.CreatePartner("Reach One Recovery Services")
	program, err := store.CreateProgram("Outpatient SUD", partner.ID)
	require.NoError(t, err)

	created, err := store.CreateClient(domain.Client{
		Name:      "Jane Doe",
		ProgramID: program.ID,
		Profile:   domain.ClientProfile{PresentingProblem: "Anxiety"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "new client is assigned an id")

	_, err = store.CreateClient(domain.Client{Name: "Bad", ProgramID: "missing"})
	assert.Error(t, err, "client cannot be enrolled in a missing program")

	created.Profile.PresentingProblem = "Anxiety, improving"
	require.NoError(t, store.UpdateClient(created))
	got, ok := store.GetClient(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Anxiety, improving", got.Profile.PresentingProblem)

	require.NoError(t, store.DeleteClient(created.ID))
	_, ok = store.GetClient(created.ID)
	assert.False(t, ok)
}

func TestCreateClientKeepsPresetID(t *testing.T) {
	store := NewStore()
	store.seedPartner(domain.Partner{ID: "partner-1", Name: "Acme"})
	store.seedProgram(domain.Program{ID: "prog-1", Name: "IOP", PartnerID: "partner-1"})

	created, err := store.CreateClient(domain.Client{ID: "fixed-id", Name: "Jane Doe", ProgramID: "prog-1"})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", created.ID)

	_, err = store.CreateClient(domain.Client{ID: "fixed-id", Name: "Duplicate", ProgramID: "prog-1"})
	assert.Error(t, err)
}

func TestListClientsByProgram(t *testing.T) {
	store := NewStore()
	partner := store.CreatePartner("Journey to Resilience")
	progA, _ := store.CreateProgram("IOP SUD", partner.ID)
	progB, _ := store.CreateProgram("Outpatient SUD", partner.ID)

	_, err := store.CreateClient(domain.Client{Name: "Zoe", ProgramID: progA.ID})
	require.NoError(t, err)
	_, err = store.CreateClient(domain.Client{Name: "Adam", ProgramID: progA.ID})
	require.NoError(t, err)
	_, err = store.CreateClient(domain.Client{Name: "Eve", ProgramID: progB.ID})
	require.NoError(t, err)

	clients := store.ListClientsByProgram(progA.ID)
	require.Len(t, clients, 2)
	assert.Equal(t, "Adam", clients[0].Name, "listing is ordered by name")
	assert.Equal(t, "Zoe", clients[1].Name)
}

func TestSeed(t *testing.T) {
	store := NewStore()
	Seed(store)

	partners := store.ListPartners()
	assert.Len(t, partners, 8)

	programs := store.ListPrograms()
	assert.Len(t, programs, 24, "each partner carries the three standard programs")

	clients := store.ListClients()
	assert.NotEmpty(t, clients)

	// Every seeded client must resolve to a seeded program and partner
	for _, c := range clients {
		program, ok := store.GetProgram(c.ProgramID)
		require.True(t, ok, "client %s references missing program %s", c.ID, c.ProgramID)
		_, ok = store.GetPartner(program.PartnerID)
		require.True(t, ok)
	}
}

func TestDocumentStore(t *testing.T) {
	store := NewDocumentStore()

	doc := store.CreateDocument("House Rules", "Curfew at 10pm.")
	assert.NotEmpty(t, doc.ID)

	got, ok := store.GetDocument(doc.ID)
	require.True(t, ok)
	assert.Equal(t, doc, got)

	store.CreateDocument("Agency Policy", "Confidentiality first.")
	docs := store.ListDocuments()
	require.Len(t, docs, 2)
	assert.Equal(t, "Agency Policy", docs[0].Title, "listing is ordered by title")

	require.NoError(t, store.DeleteDocument(doc.ID))
	assert.Error(t, store.DeleteDocument(doc.ID))
}

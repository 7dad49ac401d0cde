package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-docs-server/internal/domain"
	"github.com/clinical-docs-server/internal/roster"
	"github.com/clinical-docs-server/internal/service"
)

// stubConfigManager serves a fixed configuration
type stubConfigManager struct {
	config domain.Config
}

func (m *stubConfigManager) GetConfig() *domain.Config             { return &m.config }
func (m *stubConfigManager) GetServerConfig() *domain.ServerConfig { return &m.config.Server }
func (m *stubConfigManager) GetGenAIConfig() *domain.GenAIConfig   { return &m.config.GenAI }
func (m *stubConfigManager) Reload() error                         { return nil }
func (m *stubConfigManager) Validate() error                       { return nil }
func (m *stubConfigManager) IsProduction() bool                    { return false }
func (m *stubConfigManager) IsDevelopment() bool                   { return true }

// stubGenerator returns canned generation responses
type stubGenerator struct {
	structuredResp json.RawMessage
	textResp       string
	err            error
	calls          int
}

func (s *stubGenerator) GenerateStructured(_ context.Context, _ string, _ *domain.ResponseSchema) (json.RawMessage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.structuredResp, nil
}

func (s *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.textResp, nil
}

func newTestServer(t *testing.T, gen *stubGenerator) *Server {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := roster.NewStore()
	roster.Seed(store)
	documents := roster.NewDocumentStore()

	server := NewServer(
		&stubConfigManager{config: domain.Config{
			Logging: domain.LoggingConfig{Level: "error"},
		}},
		logger,
		store,
		documents,
		service.NewNoteService(logger, gen),
		service.NewAssessmentService(logger, gen),
	)
	return server
}

func doRequest(server *Server, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(t, &stubGenerator{})

	w := doRequest(server, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestPartnerEndpoints(t *testing.T) {
	server := newTestServer(t, &stubGenerator{})

	w := doRequest(server, http.MethodGet, "/api/v1/partners", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var partners []domain.Partner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &partners))
	assert.Len(t, partners, 8)

	w = doRequest(server, http.MethodPost, "/api/v1/partners", map[string]string{"name": "New Org"})
	assert.Equal(t, http.StatusCreated, w.Code)
	var created domain.Partner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	w = doRequest(server, http.MethodPost, "/api/v1/partners", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(server, http.MethodPut, "/api/v1/partners/"+created.ID, map[string]string{"name": "Renamed Org"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(server, http.MethodDelete, "/api/v1/partners/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(server, http.MethodDelete, "/api/v1/partners/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientEndpoints(t *testing.T) {
	server := newTestServer(t, &stubGenerator{})

	w := doRequest(server, http.MethodGet, "/api/v1/clients/dc-01", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var client domain.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))
	assert.Equal(t, "Bruce Wayne", client.Name)

	w = doRequest(server, http.MethodGet, "/api/v1/clients/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(server, http.MethodGet, "/api/v1/clients?program_id=prog-1-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var scoped []domain.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scoped))
	for _, c := range scoped {
		assert.Equal(t, "prog-1-1", c.ProgramID)
	}

	w = doRequest(server, http.MethodPost, "/api/v1/clients", map[string]any{
		"name":       "New Client",
		"program_id": "prog-1-1",
		"profile":    map[string]any{"presenting_problem": "Insomnia"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(server, http.MethodPost, "/api/v1/clients", map[string]any{
		"name":       "Orphan",
		"program_id": "no-such-program",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentEndpoints(t *testing.T) {
	server := newTestServer(t, &stubGenerator{})

	w := doRequest(server, http.MethodPost, "/api/v1/documents", map[string]string{
		"title":   "House Rules",
		"content": "Curfew at 10pm.",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var doc domain.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	w = doRequest(server, http.MethodGet, "/api/v1/documents", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(server, http.MethodDelete, "/api/v1/documents/"+doc.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGenerateNotesEndpoint(t *testing.T) {
	gen := &stubGenerator{
		structuredResp: json.RawMessage(`[{"clientId":"dc-01","clientName":"Bruce Wayne","note":"D: ... A: ... P: ..."}]`),
	}
	server := newTestServer(t, gen)

	w := doRequest(server, http.MethodPost, "/api/v1/notes/generate", map[string]any{
		"note_type":            "Group Therapy",
		"client_ids":           []string{"dc-01"},
		"session_intervention": "Processed triggers.",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Notes []domain.GeneratedNote `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, "dc-01", resp.Notes[0].ClientID)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateNotesEndpoint_Validation(t *testing.T) {
	gen := &stubGenerator{}
	server := newTestServer(t, gen)

	// Unknown client id fails before the generator is touched
	w := doRequest(server, http.MethodPost, "/api/v1/notes/generate", map[string]any{
		"note_type":  "Group Therapy",
		"client_ids": []string{"no-such-client"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gen.calls)

	w = doRequest(server, http.MethodPost, "/api/v1/notes/generate", map[string]any{
		"note_type": "Interpretive Dance",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No clients selected: success with an empty result, zero generation calls
	w = doRequest(server, http.MethodPost, "/api/v1/notes/generate", map[string]any{
		"note_type": "Group Therapy",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateNotesEndpoint_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "missing credential maps to 503",
			err:        domain.NewConfigurationError("API key is missing; set the GENAI_API_KEY environment variable"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "generation failure maps to 502",
			err:        domain.NewGenerationFailure("generation service returned status 500", nil),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, &stubGenerator{err: tt.err})

			w := doRequest(server, http.MethodPost, "/api/v1/notes/generate", map[string]any{
				"note_type":  "Group Therapy",
				"client_ids": []string{"dc-01"},
			})

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGenerateAssessmentEndpoint(t *testing.T) {
	gen := &stubGenerator{textResp: "**Initial Assessment**\n\nClient presents with..."}
	server := newTestServer(t, gen)

	w := doRequest(server, http.MethodPost, "/api/v1/assessments/generate", map[string]any{
		"assessment_type": "Initial Assessment",
		"client_info":     map[string]string{"name": "Jane Doe"},
		"assessment_data": map[string]map[string]string{
			"presentingProblem": {"description": "Low mood."},
		},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp domain.GeneratedAssessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.ClientName)
	assert.Equal(t, gen.textResp, resp.AssessmentText)

	w = doRequest(server, http.MethodPost, "/api/v1/assessments/generate", map[string]any{
		"assessment_type": "Vibes Check",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReferenceEndpoints(t *testing.T) {
	server := newTestServer(t, &stubGenerator{})

	w := doRequest(server, http.MethodGet, "/api/v1/reference/note-types", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Group Therapy")

	w = doRequest(server, http.MethodGet, "/api/v1/reference/checkbox-groups?note_type=Peer+Support", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "peerStrategies")

	w = doRequest(server, http.MethodGet, "/api/v1/reference/checkbox-groups?note_type=Unknown", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(server, http.MethodGet, "/api/v1/reference/assessment-sections?type=Comprehensive+Assessment", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "traumaHistory")

	w = doRequest(server, http.MethodGet, "/api/v1/reference/assessment-types", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(server, http.MethodGet, "/api/v1/reference/profile-options", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Precontemplation")
}

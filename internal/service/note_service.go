package service

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/clinical-docs-server/internal/domain"
	"github.com/clinical-docs-server/internal/prompt"
)

// NoteService orchestrates progress-note generation: prompt composition, one
// generation call, and result sanitization. The service is stateless and
// reentrant; callers serialize their own requests.
type NoteService struct {
	logger    *logrus.Logger
	generator domain.TextGenerator
}

// NewNoteService creates a new note generation service
func NewNoteService(logger *logrus.Logger, generator domain.TextGenerator) *NoteService {
	return &NoteService{
		logger:    logger,
		generator: generator,
	}
}

// GenerateNotesParams carries the session inputs for note generation
type GenerateNotesParams struct {
	NoteType            domain.NoteType
	Clients             []domain.Client
	Programs            []domain.Program
	Partners            []domain.Partner
	Documents           []domain.Document
	SessionIntervention string
	Selections          domain.Selections
}

// GenerateNotes drafts one DAP note per requested client. An empty client
// list short-circuits to an empty result without building a request or
// touching the generator. Entries returned for unknown client ids are
// silently dropped; a client may legitimately come back with no note.
func (s *NoteService) GenerateNotes(ctx context.Context, params GenerateNotesParams) ([]domain.GeneratedNote, error) {
	if len(params.Clients) == 0 {
		return []domain.GeneratedNote{}, nil
	}

	s.logger.WithFields(logrus.Fields{
		"note_type":    params.NoteType,
		"client_count": len(params.Clients),
		"doc_count":    len(params.Documents),
	}).Info("Starting note generation")

	request := prompt.BuildNotePrompt(
		params.NoteType,
		params.Clients,
		params.Programs,
		params.Partners,
		params.Documents,
		params.SessionIntervention,
		params.Selections,
	)

	raw, err := s.generator.GenerateStructured(ctx, request.Prompt, request.Schema)
	if err != nil {
		return nil, err
	}

	var notes []domain.GeneratedNote
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, domain.NewGenerationFailure("generated notes did not match the declared shape", err)
	}

	filtered := FilterNotesByClients(notes, params.Clients)

	if len(filtered) != len(params.Clients) {
		s.logger.WithFields(logrus.Fields{
			"requested": len(params.Clients),
			"returned":  len(filtered),
		}).Warn("Generated note count does not match requested client count")
	}

	s.logger.WithFields(logrus.Fields{
		"note_type": params.NoteType,
		"notes":     len(filtered),
		"discarded": len(notes) - len(filtered),
	}).Info("Note generation completed")

	return filtered, nil
}

// FilterNotesByClients retains only notes whose client id matches one of the
// requested clients, discarding hallucinated ids and duplicate entries. The
// operation is idempotent and does not guarantee one note per client.
func FilterNotesByClients(notes []domain.GeneratedNote, clients []domain.Client) []domain.GeneratedNote {
	known := make(map[string]bool, len(clients))
	for _, c := range clients {
		known[c.ID] = true
	}

	filtered := make([]domain.GeneratedNote, 0, len(notes))
	for _, note := range notes {
		if known[note.ClientID] {
			filtered = append(filtered, note)
			delete(known, note.ClientID)
		}
	}
	return filtered
}

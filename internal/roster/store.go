// Package roster holds the in-memory partner/program/client record set the
// documentation pipeline reads from. State is seeded at startup and resets on
// restart; there is deliberately no persistence layer.
package roster

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/clinical-docs-server/internal/domain"
)

// Store is a thread-safe in-memory roster of partners, programs and clients
type Store struct {
	mu       sync.RWMutex
	partners map[string]domain.Partner
	programs map[string]domain.Program
	clients  map[string]domain.Client
}

// NewStore creates an empty roster store
func NewStore() *Store {
	return &Store{
		partners: make(map[string]domain.Partner),
		programs: make(map[string]domain.Program),
		clients:  make(map[string]domain.Client),
	}
}

// Partners

// ListPartners returns all partners ordered by name
func (s *Store) ListPartners() []domain.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()

	partners := make([]domain.Partner, 0, len(s.partners))
	for _, p := range s.partners {
		partners = append(partners, p)
	}
	sort.Slice(partners, func(i, j int) bool { return partners[i].Name < partners[j].Name })
	return partners
}

// GetPartner returns the partner with the given id
func (s *Store) GetPartner(id string) (domain.Partner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.partners[id]
	return p, ok
}

// CreatePartner adds a new partner organization
func (s *Store) CreatePartner(name string) domain.Partner {
	s.mu.Lock()
	defer s.mu.Unlock()

	partner := domain.Partner{ID: uuid.New().String(), Name: name}
	s.partners[partner.ID] = partner
	return partner
}

// UpdatePartner replaces an existing partner record
func (s *Store) UpdatePartner(partner domain.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.partners[partner.ID]; !ok {
		return fmt.Errorf("partner %s not found", partner.ID)
	}
	s.partners[partner.ID] = partner
	return nil
}

// DeletePartner removes a partner and cascades to its programs and their
// clients, matching the roster editor's behavior
func (s *Store) DeletePartner(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.partners[id]; !ok {
		return fmt.Errorf("partner %s not found", id)
	}
	delete(s.partners, id)

	for progID, prog := range s.programs {
		if prog.PartnerID != id {
			continue
		}
		delete(s.programs, progID)
		for clientID, client := range s.clients {
			if client.ProgramID == progID {
				delete(s.clients, clientID)
			}
		}
	}
	return nil
}

// Programs

// ListPrograms returns all programs ordered by name
func (s *Store) ListPrograms() []domain.Program {
	s.mu.RLock()
	defer s.mu.RUnlock()

	programs := make([]domain.Program, 0, len(s.programs))
	for _, p := range s.programs {
		programs = append(programs, p)
	}
	sort.Slice(programs, func(i, j int) bool {
		if programs[i].Name == programs[j].Name {
			return programs[i].ID < programs[j].ID
		}
		return programs[i].Name < programs[j].Name
	})
	return programs
}

// GetProgram returns the program with the given id
func (s *Store) GetProgram(id string) (domain.Program, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.programs[id]
	return p, ok
}

// CreateProgram adds a new program under an existing partner
func (s *Store) CreateProgram(name, partnerID string) (domain.Program, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.partners[partnerID]; !ok {
		return domain.Program{}, fmt.Errorf("partner %s not found", partnerID)
	}

	program := domain.Program{ID: uuid.New().String(), Name: name, PartnerID: partnerID}
	s.programs[program.ID] = program
	return program, nil
}

// UpdateProgram replaces an existing program record
func (s *Store) UpdateProgram(program domain.Program) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.programs[program.ID]; !ok {
		return fmt.Errorf("program %s not found", program.ID)
	}
	if _, ok := s.partners[program.PartnerID]; !ok {
		return fmt.Errorf("partner %s not found", program.PartnerID)
	}
	s.programs[program.ID] = program
	return nil
}

// DeleteProgram removes a program and its clients
func (s *Store) DeleteProgram(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.programs[id]; !ok {
		return fmt.Errorf("program %s not found", id)
	}
	delete(s.programs, id)

	for clientID, client := range s.clients {
		if client.ProgramID == id {
			delete(s.clients, clientID)
		}
	}
	return nil
}

// Clients

// ListClients returns all clients ordered by name
func (s *Store) ListClients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := make([]domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients
}

// ListClientsByProgram returns the clients enrolled in one program, ordered
// by name
func (s *Store) ListClientsByProgram(programID string) []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := make([]domain.Client, 0)
	for _, c := range s.clients {
		if c.ProgramID == programID {
			clients = append(clients, c)
		}
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients
}

// GetClient returns the client with the given id
func (s *Store) GetClient(id string) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	return c, ok
}

// CreateClient adds a new client. An empty id is assigned a fresh uuid;
// seeded ids are kept as-is.
func (s *Store) CreateClient(client domain.Client) (domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client.ProgramID != "" {
		if _, ok := s.programs[client.ProgramID]; !ok {
			return domain.Client{}, fmt.Errorf("program %s not found", client.ProgramID)
		}
	}
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if _, exists := s.clients[client.ID]; exists {
		return domain.Client{}, fmt.Errorf("client %s already exists", client.ID)
	}

	s.clients[client.ID] = client
	return client, nil
}

// UpdateClient replaces an existing client record
func (s *Store) UpdateClient(client domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[client.ID]; !ok {
		return fmt.Errorf("client %s not found", client.ID)
	}
	if client.ProgramID != "" {
		if _, ok := s.programs[client.ProgramID]; !ok {
			return fmt.Errorf("program %s not found", client.ProgramID)
		}
	}
	s.clients[client.ID] = client
	return nil
}

// DeleteClient removes a client from the roster
func (s *Store) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return fmt.Errorf("client %s not found", id)
	}
	delete(s.clients, id)
	return nil
}

// seedPartner inserts a partner with a fixed id, used by Seed
func (s *Store) seedPartner(partner domain.Partner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partners[partner.ID] = partner
}

// seedProgram inserts a program with a fixed id, used by Seed
func (s *Store) seedProgram(program domain.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs[program.ID] = program
}

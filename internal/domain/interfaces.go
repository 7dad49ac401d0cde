package domain

import (
	"context"
	"encoding/json"
)

// TextGenerator is the outbound interface to the model generation service.
// Implementations make exactly one attempt per call: no retry, no partial
// results. Tests inject counting stubs.
type TextGenerator interface {
	// GenerateStructured sends a structured-mode request and returns the raw
	// JSON document the service produced under the declared schema.
	GenerateStructured(ctx context.Context, prompt string, schema *ResponseSchema) (json.RawMessage, error)

	// GenerateText sends a free-text request and returns the response body
	// unmodified.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// RosterStore supplies the partner/program/client record set consumed by the
// prompt pipeline
type RosterStore interface {
	ListPartners() []Partner
	GetPartner(id string) (Partner, bool)
	CreatePartner(name string) Partner
	UpdatePartner(partner Partner) error
	DeletePartner(id string) error

	ListPrograms() []Program
	GetProgram(id string) (Program, bool)
	CreateProgram(name, partnerID string) (Program, error)
	UpdateProgram(program Program) error
	DeleteProgram(id string) error

	ListClients() []Client
	ListClientsByProgram(programID string) []Client
	GetClient(id string) (Client, bool)
	CreateClient(client Client) (Client, error)
	UpdateClient(client Client) error
	DeleteClient(id string) error
}

// DocumentStore supplies background knowledge documents
type DocumentStore interface {
	ListDocuments() []Document
	GetDocument(id string) (Document, bool)
	CreateDocument(title, content string) Document
	DeleteDocument(id string) error
}

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	GetGenAIConfig() *GenAIConfig
	Reload() error
	Validate() error
	IsProduction() bool
	IsDevelopment() bool
}

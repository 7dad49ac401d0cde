package roster

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/clinical-docs-server/internal/domain"
)

// DocumentStore is a thread-safe in-memory store of background knowledge
// documents appended to note prompts
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates an empty document store
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// ListDocuments returns all documents ordered by title
func (s *DocumentStore) ListDocuments() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]domain.Document, 0, len(s.documents))
	for _, d := range s.documents {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Title < docs[j].Title })
	return docs
}

// GetDocument returns the document with the given id
func (s *DocumentStore) GetDocument(id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.documents[id]
	return d, ok
}

// CreateDocument adds a new document
func (s *DocumentStore) CreateDocument(title, content string) domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := domain.Document{ID: uuid.New().String(), Title: title, Content: content}
	s.documents[doc.ID] = doc
	return doc
}

// DeleteDocument removes a document
func (s *DocumentStore) DeleteDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return fmt.Errorf("document %s not found", id)
	}
	delete(s.documents, id)
	return nil
}

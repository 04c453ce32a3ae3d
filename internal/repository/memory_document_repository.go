package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
	"github.com/ridwanfathin/erp-pricing-service/internal/filter"
)

// MemoryDocumentRepository implements DocumentRepository in process memory.
// Stored documents are copied on the way in and out, so callers never share
// state with the store.
type MemoryDocumentRepository struct {
	mutex     sync.RWMutex
	documents map[string]*domain.Document
	order     []string
	sequences *sequencer
	now       func() time.Time
}

// NewMemoryDocumentRepository creates an empty in-memory document store
func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{
		documents: make(map[string]*domain.Document),
		sequences: newSequencer(),
		now:       time.Now,
	}
}

// Create stores a new document, assigning its ID, number and timestamps
func (r *MemoryDocumentRepository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RepositoryError{Op: "create_document", Err: err}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := doc.Clone()
	now := r.now().UTC()
	if stored.IssueDate.IsZero() {
		stored.IssueDate = domain.NewDateOnly(now)
	}
	stored.ID = uuid.NewString()
	stored.Number = FormatDocumentNumber(
		stored.Kind.NumberPrefix(),
		stored.IssueDate.Year(),
		r.sequences.next(stored.Kind.NumberPrefix(), stored.IssueDate.Year()),
	)
	stored.Version = 1
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.documents[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return stored.Clone(), nil
}

// GetByID retrieves a document by its ID
func (r *MemoryDocumentRepository) GetByID(ctx context.Context, documentID string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RepositoryError{Op: "get_document", Err: err}
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	doc, ok := r.documents[documentID]
	if !ok {
		return nil, &RepositoryError{
			Op:  "get_document",
			Err: &domain.NotFoundError{Resource: "document", ID: documentID},
		}
	}
	return doc.Clone(), nil
}

// Update replaces a stored document; ID, number and creation time are preserved.
// doc.Version must match the stored version, otherwise a ConflictError is returned.
func (r *MemoryDocumentRepository) Update(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RepositoryError{Op: "update_document", Err: err}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, ok := r.documents[doc.ID]
	if !ok {
		return nil, &RepositoryError{
			Op:  "update_document",
			Err: &domain.NotFoundError{Resource: "document", ID: doc.ID},
		}
	}

	if doc.Version != existing.Version {
		return nil, &RepositoryError{
			Op:  "update_document",
			Err: &domain.ConflictError{DocumentID: doc.ID, Version: doc.Version, Current: existing.Version},
		}
	}

	stored := doc.Clone()
	stored.Version = existing.Version + 1
	stored.Number = existing.Number
	stored.Kind = existing.Kind
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.now().UTC()

	r.documents[stored.ID] = stored
	return stored.Clone(), nil
}

// List returns the documents matching query in creation order
func (r *MemoryDocumentRepository) List(ctx context.Context, query filter.DocumentQuery) ([]*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RepositoryError{Op: "list_documents", Err: err}
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	docs := make([]*domain.Document, 0, len(r.order))
	for _, id := range r.order {
		docs = append(docs, r.documents[id])
	}

	matched := filter.Apply(docs, query)
	for i, doc := range matched {
		matched[i] = doc.Clone()
	}
	return matched, nil
}

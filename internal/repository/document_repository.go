package repository

import (
	"context"
	"fmt"

	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
	"github.com/ridwanfathin/erp-pricing-service/internal/filter"
)

// RepositoryError represents an error that occurred within a repository
type RepositoryError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap exposes the underlying error to errors.Is and errors.As
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// DocumentRepository defines the storage operations for commercial documents
type DocumentRepository interface {
	// Create assigns ID and number to the document and stores it
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	GetByID(ctx context.Context, documentID string) (*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	List(ctx context.Context, query filter.DocumentQuery) ([]*domain.Document, error)
}

package domain

import "fmt"

// ValidationError reports a bad input value such as a quantity, price or tax rate
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// EmptyDocumentError is returned when a document without items is submitted
type EmptyDocumentError struct {
	DocumentID string
}

func (e *EmptyDocumentError) Error() string {
	if e.DocumentID == "" {
		return "document has no line items"
	}
	return fmt.Sprintf("document %s has no line items", e.DocumentID)
}

// NotFoundError reports an unknown product, service or document reference
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// IndexError reports a line item position outside the document's item list
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("line item index %d out of range [0,%d)", e.Index, e.Length)
}

// ConflictError reports a write based on an outdated copy of a document
type ConflictError struct {
	DocumentID string
	Version    int64
	Current    int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("document %s changed concurrently (version %d, current %d)", e.DocumentID, e.Version, e.Current)
}

// Package filter implements free-text and facet filtering over document lists.
package filter

import (
	"strings"

	"github.com/ridwanfathin/erp-pricing-service/internal/domain"
)

// DocumentQuery selects documents by text and by kind/status facets.
// Zero-valued fields match every document.
type DocumentQuery struct {
	Text     string
	Kind     domain.DocumentKind
	Statuses []domain.Status
}

// IsEmpty reports whether the query matches everything
func (q DocumentQuery) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == "" && q.Kind == "" && len(q.Statuses) == 0
}

// Match reports whether doc satisfies every criterion of the query
func (q DocumentQuery) Match(doc *domain.Document) bool {
	if q.Kind != "" && doc.Kind != q.Kind {
		return false
	}
	if len(q.Statuses) > 0 && !containsStatus(q.Statuses, doc.Status) {
		return false
	}

	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text == "" {
		return true
	}
	for _, field := range []string{doc.Number, doc.CounterpartyName, doc.Notes} {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}
	return false
}

// Apply returns the documents matching q in their original order
func Apply(docs []*domain.Document, q DocumentQuery) []*domain.Document {
	if q.IsEmpty() {
		return append(make([]*domain.Document, 0, len(docs)), docs...)
	}
	matched := make([]*domain.Document, 0, len(docs))
	for _, doc := range docs {
		if q.Match(doc) {
			matched = append(matched, doc)
		}
	}
	return matched
}

func containsStatus(statuses []domain.Status, s domain.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

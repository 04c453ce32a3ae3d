package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	kind, err := ParseKind(" Invoice ")
	require.NoError(t, err)
	assert.Equal(t, KindInvoice, kind)

	_, err = ParseKind("budget")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "kind", vErr.Field)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		kind    DocumentKind
		raw     string
		want    Status
		wantErr bool
	}{
		{"quotation accepted", KindQuotation, "accepted", StatusAccepted, false},
		{"invoice paid upper case", KindInvoice, "PAID", StatusPaid, false},
		{"po received", KindPurchaseOrder, "received", StatusReceived, false},
		{"paid is not a quotation state", KindQuotation, "paid", "", true},
		{"accepted is not an invoice state", KindInvoice, "accepted", "", true},
		{"unknown", KindInvoice, "archived", "", true},
		{"empty", KindInvoice, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.kind, tt.raw)
			if tt.wantErr {
				var vErr *ValidationError
				assert.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEveryStatusHasDisplay(t *testing.T) {
	for _, kind := range Kinds {
		statuses := kind.Statuses()
		require.NotEmpty(t, statuses, kind)
		assert.Equal(t, StatusDraft, statuses[0], "%s must start as draft", kind)
		assert.True(t, kind.Allows(kind.SubmittedStatus()), kind)
		for _, s := range statuses {
			_, ok := statusDisplays[s]
			assert.True(t, ok, "status %s has no display entry", s)
		}
	}
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, StatusDisplay{Label: "Paid", Variant: VariantSuccess, Terminal: true}, StatusPaid.Display())
	assert.Equal(t, VariantDanger, StatusOverdue.Display().Variant)
	assert.False(t, StatusDraft.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestNumberPrefix(t *testing.T) {
	assert.Equal(t, "QUO", KindQuotation.NumberPrefix())
	assert.Equal(t, "INV", KindInvoice.NumberPrefix())
	assert.Equal(t, "PO", KindPurchaseOrder.NumberPrefix())
}

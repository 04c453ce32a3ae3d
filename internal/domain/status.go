package domain

import (
	"fmt"
	"strings"
)

// DocumentKind identifies which type of commercial document a record is
type DocumentKind string

const (
	KindQuotation     DocumentKind = "quotation"
	KindInvoice       DocumentKind = "invoice"
	KindPurchaseOrder DocumentKind = "purchase_order"
)

// Kinds lists every supported document kind in display order
var Kinds = []DocumentKind{KindQuotation, KindInvoice, KindPurchaseOrder}

// ParseKind converts a raw string into a DocumentKind, rejecting unknown values
func ParseKind(s string) (DocumentKind, error) {
	k := DocumentKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", NewValidationError("kind", fmt.Sprintf("unknown document kind %q", s))
	}
	return k, nil
}

// IsValid reports whether k is one of the supported kinds
func (k DocumentKind) IsValid() bool {
	switch k {
	case KindQuotation, KindInvoice, KindPurchaseOrder:
		return true
	}
	return false
}

// NumberPrefix returns the prefix used when numbering documents of this kind
func (k DocumentKind) NumberPrefix() string {
	switch k {
	case KindQuotation:
		return "QUO"
	case KindInvoice:
		return "INV"
	case KindPurchaseOrder:
		return "PO"
	}
	return "DOC"
}

// Statuses returns the closed set of lifecycle states for the kind
func (k DocumentKind) Statuses() []Status {
	return kindStatuses[k]
}

// SubmittedStatus is the status a draft moves to once it passes submission
func (k DocumentKind) SubmittedStatus() Status {
	if k == KindPurchaseOrder {
		return StatusPending
	}
	return StatusSent
}

// Status is a document lifecycle state
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusExpired   Status = "expired"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusReceived  Status = "received"
)

var kindStatuses = map[DocumentKind][]Status{
	KindQuotation:     {StatusDraft, StatusSent, StatusAccepted, StatusRejected, StatusExpired},
	KindInvoice:       {StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled},
	KindPurchaseOrder: {StatusDraft, StatusPending, StatusApproved, StatusReceived, StatusCancelled},
}

// Badge variants understood by the front end
const (
	VariantDefault = "default"
	VariantInfo    = "info"
	VariantSuccess = "success"
	VariantWarning = "warning"
	VariantDanger  = "danger"
)

// StatusDisplay holds the presentation attributes of a status
type StatusDisplay struct {
	Label    string `json:"label"`
	Variant  string `json:"variant"`
	Terminal bool   `json:"terminal"`
}

// statusDisplays must have an entry for every Status constant.
var statusDisplays = map[Status]StatusDisplay{
	StatusDraft:     {Label: "Draft", Variant: VariantDefault},
	StatusSent:      {Label: "Sent", Variant: VariantInfo},
	StatusAccepted:  {Label: "Accepted", Variant: VariantSuccess, Terminal: true},
	StatusRejected:  {Label: "Rejected", Variant: VariantDanger, Terminal: true},
	StatusExpired:   {Label: "Expired", Variant: VariantWarning, Terminal: true},
	StatusPaid:      {Label: "Paid", Variant: VariantSuccess, Terminal: true},
	StatusOverdue:   {Label: "Overdue", Variant: VariantDanger},
	StatusCancelled: {Label: "Cancelled", Variant: VariantDanger, Terminal: true},
	StatusPending:   {Label: "Pending Approval", Variant: VariantWarning},
	StatusApproved:  {Label: "Approved", Variant: VariantInfo},
	StatusReceived:  {Label: "Received", Variant: VariantSuccess, Terminal: true},
}

// ParseStatus converts a raw string into a Status valid for the given kind
func ParseStatus(kind DocumentKind, s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Allows(status) {
		return "", NewValidationError("status", fmt.Sprintf("status %q is not valid for %s", s, kind))
	}
	return status, nil
}

// Allows reports whether status belongs to the kind's lifecycle
func (k DocumentKind) Allows(status Status) bool {
	for _, s := range kindStatuses[k] {
		if s == status {
			return true
		}
	}
	return false
}

// Display returns the presentation attributes for the status
func (s Status) Display() StatusDisplay {
	if d, ok := statusDisplays[s]; ok {
		return d
	}
	return StatusDisplay{Label: string(s), Variant: VariantDefault}
}

// IsTerminal reports whether the status normally ends the document's lifecycle
func (s Status) IsTerminal() bool {
	return s.Display().Terminal
}

func (s Status) String() string {
	return string(s)
}

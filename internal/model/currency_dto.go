package model

import "github.com/ridwanfathin/erp-pricing-service/internal/domain"

// ConversionResponse is the result of GET /v1/currency/convert
type ConversionResponse struct {
	Amount    string `json:"amount"`
	From      string `json:"from"`
	To        string `json:"to"`
	Result    string `json:"result"`
	Formatted string `json:"formatted"`
}

// StatusDTO describes one lifecycle status and how to badge it
type StatusDTO struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Variant  string `json:"variant"`
	Terminal bool   `json:"terminal"`
}

// KindStatusesResponse lists the statuses of one document kind
type KindStatusesResponse struct {
	Kind            string      `json:"kind"`
	NumberPrefix    string      `json:"number_prefix"`
	SubmittedStatus string      `json:"submitted_status"`
	Statuses        []StatusDTO `json:"statuses"`
}

// NewKindStatusesResponse describes the lifecycle of kind
func NewKindStatusesResponse(kind domain.DocumentKind) KindStatusesResponse {
	statuses := make([]StatusDTO, 0, len(kind.Statuses()))
	for _, s := range kind.Statuses() {
		d := s.Display()
		statuses = append(statuses, StatusDTO{
			Value:    s.String(),
			Label:    d.Label,
			Variant:  d.Variant,
			Terminal: d.Terminal,
		})
	}
	return KindStatusesResponse{
		Kind:            string(kind),
		NumberPrefix:    kind.NumberPrefix(),
		SubmittedStatus: kind.SubmittedStatus().String(),
		Statuses:        statuses,
	}
}

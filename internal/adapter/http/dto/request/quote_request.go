package request

import (
	"strings"

	"commercial_agent/internal/domain/entities"
)

// CreateQuoteRequest starts the quote saga. The two payloads are forwarded
// verbatim to the Operations and Finance agents; their shape is owned by
// those agents, not by this service.
type CreateQuoteRequest struct {
	LeadID            string                 `json:"lead_id" binding:"required"`
	OperationsPayload map[string]interface{} `json:"operations_payload"`
	FinancePayload    map[string]interface{} `json:"finance_payload"`
}

func (r CreateQuoteRequest) ResolveLeadID() string {
	return strings.TrimSpace(r.LeadID)
}

// Valid requires both agent payloads to be present (an empty object is fine,
// a missing key is not).
func (r CreateQuoteRequest) Valid() bool {
	return r.ResolveLeadID() != "" && r.OperationsPayload != nil && r.FinancePayload != nil
}

// UpdateQuoteStatusRequest is used by the downstream sales-closing process to
// mark a quote SENT, WON or LOST.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateQuoteStatusRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

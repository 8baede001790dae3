package entities

import "time"

// QuoteStatus tracks the quote orchestration saga.
//
// Domain notes:
//   - DRAFT through AWAITING_FINANCE mark dispatch progress, not response order:
//     the two agent responses arrive out-of-band and in any order.
//   - The saga ends in READY_TO_SEND, REJECTED_CAPACITY, ERROR_COSTING,
//     ERROR_OPERATIONS or ERROR_FINANCE. SENT/WON/LOST are applied afterwards
//     by the sales-closing process.

type QuoteStatus string

const (
	QuoteStatusDraft             QuoteStatus = "DRAFT"
	QuoteStatusAwaitingOps       QuoteStatus = "AWAITING_OPERATIONS"
	QuoteStatusAwaitingFinance   QuoteStatus = "AWAITING_FINANCE"
	QuoteStatusCalculatingPrice  QuoteStatus = "CALCULATING_PRICE"
	QuoteStatusReadyToSend       QuoteStatus = "READY_TO_SEND"
	QuoteStatusRejectedCapacity  QuoteStatus = "REJECTED_CAPACITY"
	QuoteStatusErrorCosting      QuoteStatus = "ERROR_COSTING"
	QuoteStatusErrorOperations   QuoteStatus = "ERROR_OPERATIONS"
	QuoteStatusErrorFinance      QuoteStatus = "ERROR_FINANCE"
	QuoteStatusSent              QuoteStatus = "SENT"
	QuoteStatusWon               QuoteStatus = "WON"
	QuoteStatusLost              QuoteStatus = "LOST"
)

// SagaTerminal reports whether the orchestration saga has reached a final
// decision for this status. Pricing must never run again past this point.
func (s QuoteStatus) SagaTerminal() bool {
	switch s {
	case QuoteStatusReadyToSend, QuoteStatusRejectedCapacity, QuoteStatusErrorCosting,
		QuoteStatusErrorOperations, QuoteStatusErrorFinance,
		QuoteStatusSent, QuoteStatusWon, QuoteStatusLost:
		return true
	}
	return false
}

// OperationsResponse is the capacity-check answer posted back by the
// Operations agent.
type OperationsResponse struct {
	CheckID              string   `json:"check_id"`
	CanBeFulfilled       bool     `json:"can_be_fulfilled"`
	ConfidenceScore      float64  `json:"confidence_score"`
	PotentialBottlenecks []string `json:"potential_bottlenecks,omitempty"`
	EstimatedStartDate   string   `json:"estimated_start_date,omitempty"`
}

// FinanceResponse is the costing answer posted back by the Finance agent.
type FinanceResponse struct {
	QuoteID          string  `json:"quote_id"`
	BaseCostForQuote float64 `json:"base_cost_for_quote"`
	CurrentFCFRate   float64 `json:"current_fcf_rate"`
	Notes            string  `json:"notes,omitempty"`
}

// OperationsCheck holds the outbound capacity-check correlation id plus the
// response once it arrives. Response moves from nil to non-nil at most once.
type OperationsCheck struct {
	RequestID string              `json:"request_id"`
	Response  *OperationsResponse `json:"response"`
}

type FinanceCheck struct {
	Response *FinanceResponse `json:"response"`
}

// Quote is the central saga entity. The quote repository exclusively owns the
// record; the saga use case is the only writer of Status, the two check
// responses, BaseCostForQuote and FinalPrice.
type Quote struct {
	ID     string      `json:"id"`
	LeadID string      `json:"lead_id"`
	Status QuoteStatus `json:"status"`

	OperationsCheck OperationsCheck `json:"operations_check"`
	FinanceCheck    FinanceCheck    `json:"finance_check"`

	// Original creation payloads, forwarded verbatim on dispatch.
	OperationsPayload map[string]interface{} `json:"operations_payload,omitempty"`
	FinancePayload    map[string]interface{} `json:"finance_payload,omitempty"`

	BaseCostForQuote float64  `json:"base_cost_for_quote"`
	FinalPrice       *float64 `json:"final_price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

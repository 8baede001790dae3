package response

import (
	"time"

	"commercial_agent/internal/domain/entities"
)

// QuoteAcceptedResponse is the 202 body returned when the saga starts.
type QuoteAcceptedResponse struct {
	Message string `json:"message"`
	QuoteID string `json:"quote_id"`
}

func QuoteAccepted(quoteID string) QuoteAcceptedResponse {
	return QuoteAcceptedResponse{Message: "Quote process initiated", QuoteID: quoteID}
}

type OperationsCheckResponse struct {
	RequestID string                       `json:"request_id"`
	Response  *entities.OperationsResponse `json:"response"`
}

type FinanceCheckResponse struct {
	Response *entities.FinanceResponse `json:"response"`
}

// QuoteResponse is the externally visible quote record. Readers always see a
// well-defined status; there is no "merge in progress" state.
type QuoteResponse struct {
	ID               string                  `json:"id"`
	LeadID           string                  `json:"lead_id"`
	Status           string                  `json:"status"`
	OperationsCheck  OperationsCheckResponse `json:"operations_check"`
	FinanceCheck     FinanceCheckResponse    `json:"finance_check"`
	BaseCostForQuote float64                 `json:"base_cost_for_quote"`
	FinalPrice       *float64                `json:"final_price,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:     q.ID,
		LeadID: q.LeadID,
		Status: string(q.Status),
		OperationsCheck: OperationsCheckResponse{
			RequestID: q.OperationsCheck.RequestID,
			Response:  q.OperationsCheck.Response,
		},
		FinanceCheck:     FinanceCheckResponse{Response: q.FinanceCheck.Response},
		BaseCostForQuote: q.BaseCostForQuote,
		FinalPrice:       q.FinalPrice,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

// CallbackAckResponse acknowledges a processed agent callback.
type CallbackAckResponse struct {
	Message string `json:"message"`
}

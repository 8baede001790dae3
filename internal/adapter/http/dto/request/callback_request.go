package request

import "commercial_agent/internal/domain/entities"

// CapacityCheckResponseRequest is the Operations agent's callback body.
// CanBeFulfilled is a pointer so that an explicit false still satisfies the
// required binding; a missing field is an invalid payload.
type CapacityCheckResponseRequest struct {
	CheckID              string   `json:"check_id"`
	CanBeFulfilled       *bool    `json:"can_be_fulfilled" binding:"required"`
	ConfidenceScore      float64  `json:"confidence_score"`
	PotentialBottlenecks []string `json:"potential_bottlenecks"`
	EstimatedStartDate   string   `json:"estimated_start_date"`
}

func (r CapacityCheckResponseRequest) ToEntity() entities.OperationsResponse {
	return entities.OperationsResponse{
		CheckID:              r.CheckID,
		CanBeFulfilled:       *r.CanBeFulfilled,
		ConfidenceScore:      r.ConfidenceScore,
		PotentialBottlenecks: r.PotentialBottlenecks,
		EstimatedStartDate:   r.EstimatedStartDate,
	}
}

// CostingParametersRequest is the Finance agent's callback body. The pointer
// on BaseCostForQuote distinguishes "missing" from an explicit zero; a zero
// cost is a valid payload that the pricing policy then rejects.
type CostingParametersRequest struct {
	QuoteID          string   `json:"quote_id"`
	BaseCostForQuote *float64 `json:"base_cost_for_quote" binding:"required"`
	CurrentFCFRate   float64  `json:"current_fcf_rate"`
	Notes            string   `json:"notes"`
}

func (r CostingParametersRequest) ToEntity() entities.FinanceResponse {
	return entities.FinanceResponse{
		QuoteID:          r.QuoteID,
		BaseCostForQuote: *r.BaseCostForQuote,
		CurrentFCFRate:   r.CurrentFCFRate,
		Notes:            r.Notes,
	}
}

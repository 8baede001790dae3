package pricing

import (
	"math"

	"commercial_agent/internal/domain/entities"
)

// DefaultMargin is the commercial margin applied on top of the finance base
// cost when a quote is priced.
const DefaultMargin = 0.20

// Result is the pricing decision for a quote whose two agent responses are
// both present.
type Result struct {
	Status     entities.QuoteStatus
	FinalPrice float64
	Priced     bool
}

// Policy computes the final quote price from the two agent responses. It is a
// pure function of its inputs: no I/O, no store access.
type Policy struct {
	Margin float64
}

func NewPolicy() Policy {
	return Policy{Margin: DefaultMargin}
}

// Price maps (capacity result, cost basis) to a terminal pricing decision:
//   - capacity denied  -> REJECTED_CAPACITY
//   - cost basis <= 0  -> ERROR_COSTING
//   - otherwise        -> READY_TO_SEND with base_cost * (1 + margin)
func (p Policy) Price(ops entities.OperationsResponse, fin entities.FinanceResponse) Result {
	if !ops.CanBeFulfilled {
		return Result{Status: entities.QuoteStatusRejectedCapacity}
	}
	if fin.BaseCostForQuote <= 0 {
		return Result{Status: entities.QuoteStatusErrorCosting}
	}

	final := round2(fin.BaseCostForQuote * (1 + p.Margin))
	return Result{Status: entities.QuoteStatusReadyToSend, FinalPrice: final, Priced: true}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

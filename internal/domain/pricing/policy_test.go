package pricing

import (
	"testing"

	"commercial_agent/internal/domain/entities"
)

func TestPolicy_Price(t *testing.T) {
	policy := NewPolicy()

	t.Run("fulfillable with positive cost", func(t *testing.T) {
		res := policy.Price(
			entities.OperationsResponse{CanBeFulfilled: true},
			entities.FinanceResponse{BaseCostForQuote: 1000},
		)
		if res.Status != entities.QuoteStatusReadyToSend {
			t.Fatalf("expected READY_TO_SEND, got %s", res.Status)
		}
		if !res.Priced || res.FinalPrice != 1200.00 {
			t.Fatalf("expected final price 1200.00, got %+v", res)
		}
	})

	t.Run("capacity denied wins over cost", func(t *testing.T) {
		res := policy.Price(
			entities.OperationsResponse{CanBeFulfilled: false},
			entities.FinanceResponse{BaseCostForQuote: 1000},
		)
		if res.Status != entities.QuoteStatusRejectedCapacity {
			t.Fatalf("expected REJECTED_CAPACITY, got %s", res.Status)
		}
		if res.Priced || res.FinalPrice != 0 {
			t.Fatalf("rejected quote must not carry a price: %+v", res)
		}
	})

	t.Run("zero cost", func(t *testing.T) {
		res := policy.Price(
			entities.OperationsResponse{CanBeFulfilled: true},
			entities.FinanceResponse{BaseCostForQuote: 0},
		)
		if res.Status != entities.QuoteStatusErrorCosting {
			t.Fatalf("expected ERROR_COSTING, got %s", res.Status)
		}
		if res.Priced {
			t.Fatalf("costing error must not carry a price: %+v", res)
		}
	})

	t.Run("negative cost", func(t *testing.T) {
		res := policy.Price(
			entities.OperationsResponse{CanBeFulfilled: true},
			entities.FinanceResponse{BaseCostForQuote: -50},
		)
		if res.Status != entities.QuoteStatusErrorCosting {
			t.Fatalf("expected ERROR_COSTING, got %s", res.Status)
		}
	})

	t.Run("rounds to cents", func(t *testing.T) {
		res := policy.Price(
			entities.OperationsResponse{CanBeFulfilled: true},
			entities.FinanceResponse{BaseCostForQuote: 33.333},
		)
		if res.FinalPrice != 40.00 {
			t.Fatalf("expected 40.00, got %v", res.FinalPrice)
		}
	})
}

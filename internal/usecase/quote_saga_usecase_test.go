package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"commercial_agent/internal/adapter/persistence/repository"
	"commercial_agent/internal/domain/entities"
	"commercial_agent/internal/infrastructure/tasks"
	mock_interfaces "commercial_agent/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func waitForStatus(t *testing.T, uc *QuoteSagaUseCase, id string, want entities.QuoteStatus) entities.Quote {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		q, err := uc.GetQuote(context.Background(), id)
		if err == nil && q.Status == want {
			return q
		}
		time.Sleep(5 * time.Millisecond)
	}
	q, _ := uc.GetQuote(context.Background(), id)
	t.Fatalf("quote %s never reached %s (last status: %s)", id, want, q.Status)
	return entities.Quote{}
}

// seedAwaitingQuote plants a quote that already passed both dispatches, so
// callback behavior can be tested without the worker pool in the picture.
func seedAwaitingQuote(t *testing.T, repo *repository.QuoteMemoryRepository, id string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := repo.Create(context.Background(), entities.Quote{
		ID:              id,
		LeadID:          "lead-abc123",
		Status:          entities.QuoteStatusAwaitingFinance,
		OperationsCheck: entities.OperationsCheck{RequestID: id},
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		t.Fatalf("seed quote: %v", err)
	}
}

func okOps() entities.OperationsResponse {
	return entities.OperationsResponse{CheckID: "CAP-CHECK-1", CanBeFulfilled: true, ConfidenceScore: 0.9}
}

func okFin() entities.FinanceResponse {
	return entities.FinanceResponse{BaseCostForQuote: 1000, CurrentFCFRate: 0.3}
}

func TestQuoteSagaUseCase_CreateQuoteValidation(t *testing.T) {
	uc := NewQuoteSagaUseCase(repository.NewQuoteMemoryRepository(), nil, nil, nil)

	if _, err := uc.CreateQuote(context.Background(), "  ", map[string]interface{}{}, map[string]interface{}{}); !errors.Is(err, ErrInvalidQuoteLeadID) {
		t.Fatalf("expected ErrInvalidQuoteLeadID, got %v", err)
	}
	if _, err := uc.CreateQuote(context.Background(), "lead-1", nil, map[string]interface{}{}); !errors.Is(err, ErrMissingAgentPayload) {
		t.Fatalf("expected ErrMissingAgentPayload, got %v", err)
	}
	if _, err := uc.CreateQuote(context.Background(), "lead-1", map[string]interface{}{}, nil); !errors.Is(err, ErrMissingAgentPayload) {
		t.Fatalf("expected ErrMissingAgentPayload, got %v", err)
	}
}

func TestQuoteSagaUseCase_CreateQuoteRegeneratesTakenID(t *testing.T) {
	t.Run("retries with a fresh id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		capacity := mock_interfaces.NewMockICapacityClient(ctrl)
		costing := mock_interfaces.NewMockICostingClient(ctrl)
		pool := tasks.NewPool(1, 4)
		defer pool.Stop()

		uc := NewQuoteSagaUseCase(repo, capacity, costing, pool)

		var ids []string
		taken := repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				ids = append(ids, q.ID)
				return entities.Quote{}, nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).After(taken).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				ids = append(ids, q.ID)
				return q, nil
			})

		// The queued dispatch looks the quote up first; answering with a zero
		// quote ends it there.
		dispatched := make(chan struct{})
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string) (entities.Quote, error) {
				close(dispatched)
				return entities.Quote{}, nil
			})

		q, err := uc.CreateQuote(context.Background(), "lead-abc123", map[string]interface{}{}, map[string]interface{}{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID == "" {
			t.Fatalf("expected a usable quote after the id retry, got %+v", q)
		}
		if len(ids) != 2 || ids[0] == ids[1] {
			t.Fatalf("expected a regenerated id, got %v", ids)
		}
		if q.OperationsCheck.RequestID != q.ID {
			t.Fatalf("request_id must follow the final id: %+v", q.OperationsCheck)
		}

		select {
		case <-dispatched:
		case <-time.After(2 * time.Second):
			t.Fatalf("dispatch was never scheduled")
		}
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		pool := tasks.NewPool(1, 4)
		defer pool.Stop()

		uc := NewQuoteSagaUseCase(repo, nil, nil, pool)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(maxIDAttempts).Return(entities.Quote{}, nil)

		if _, err := uc.CreateQuote(context.Background(), "lead-abc123", map[string]interface{}{}, map[string]interface{}{}); !errors.Is(err, ErrQuoteIDConflict) {
			t.Fatalf("expected ErrQuoteIDConflict, got %v", err)
		}
	})
}

func TestQuoteSagaUseCase_CreateQuoteDispatchesBothChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	capacity := mock_interfaces.NewMockICapacityClient(ctrl)
	costing := mock_interfaces.NewMockICostingClient(ctrl)
	pool := tasks.NewPool(1, 4)
	defer pool.Stop()

	store := repository.NewQuoteMemoryRepository()
	uc := NewQuoteSagaUseCase(store, capacity, costing, pool)

	opsPayload := map[string]interface{}{"project_type": "industrial"}
	finPayload := map[string]interface{}{"estimated_direct_costs": 5000}

	capacity.EXPECT().Dispatch(gomock.Any(), gomock.Any(), opsPayload).Return(nil)
	costing.EXPECT().Dispatch(gomock.Any(), gomock.Any(), finPayload).Return(nil)

	q, err := uc.CreateQuote(context.Background(), "lead-abc123", opsPayload, finPayload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != entities.QuoteStatusDraft {
		t.Fatalf("creation must return a DRAFT quote, got %s", q.Status)
	}
	if q.OperationsCheck.RequestID != q.ID {
		t.Fatalf("request_id must equal the quote id: %+v", q.OperationsCheck)
	}

	waitForStatus(t, uc, q.ID, entities.QuoteStatusAwaitingFinance)
}

func TestQuoteSagaUseCase_OperationsDispatchFailureSkipsCosting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	capacity := mock_interfaces.NewMockICapacityClient(ctrl)
	costing := mock_interfaces.NewMockICostingClient(ctrl)
	pool := tasks.NewPool(1, 4)
	defer pool.Stop()

	uc := NewQuoteSagaUseCase(repository.NewQuoteMemoryRepository(), capacity, costing, pool)

	capacity.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connect refused"))
	// No costing expectation: a costing dispatch would fail the test.

	q, err := uc.CreateQuote(context.Background(), "lead-abc123", map[string]interface{}{}, map[string]interface{}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := waitForStatus(t, uc, q.ID, entities.QuoteStatusErrorOperations)
	if got.FinalPrice != nil {
		t.Fatalf("errored quote must not carry a price: %+v", got)
	}
}

func TestQuoteSagaUseCase_FinanceDispatchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	capacity := mock_interfaces.NewMockICapacityClient(ctrl)
	costing := mock_interfaces.NewMockICostingClient(ctrl)
	pool := tasks.NewPool(1, 4)
	defer pool.Stop()

	uc := NewQuoteSagaUseCase(repository.NewQuoteMemoryRepository(), capacity, costing, pool)

	capacity.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	costing.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

	q, err := uc.CreateQuote(context.Background(), "lead-abc123", map[string]interface{}{}, map[string]interface{}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	waitForStatus(t, uc, q.ID, entities.QuoteStatusErrorFinance)
}

func TestQuoteSagaUseCase_CallbackOrderIsCommutative(t *testing.T) {
	ctx := context.Background()

	type step func(uc *QuoteSagaUseCase, id string) error
	ops := func(uc *QuoteSagaUseCase, id string) error {
		_, err := uc.ApplyOperationsResponse(ctx, id, okOps())
		return err
	}
	fin := func(uc *QuoteSagaUseCase, id string) error {
		_, err := uc.ApplyFinanceResponse(ctx, id, okFin())
		return err
	}

	orderings := map[string][]step{
		"operations then finance": {ops, fin},
		"finance then operations": {fin, ops},
	}

	for name, steps := range orderings {
		t.Run(name, func(t *testing.T) {
			store := repository.NewQuoteMemoryRepository()
			uc := NewQuoteSagaUseCase(store, nil, nil, nil)
			seedAwaitingQuote(t, store, "QT-2025-0001")

			for _, s := range steps {
				if err := s(uc, "QT-2025-0001"); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			q, err := uc.GetQuote(ctx, "QT-2025-0001")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Status != entities.QuoteStatusReadyToSend {
				t.Fatalf("expected READY_TO_SEND, got %s", q.Status)
			}
			if q.FinalPrice == nil || *q.FinalPrice != 1200.00 {
				t.Fatalf("expected final price 1200.00, got %+v", q.FinalPrice)
			}
			if q.BaseCostForQuote != 1000 {
				t.Fatalf("expected base cost 1000, got %v", q.BaseCostForQuote)
			}
		})
	}

	t.Run("simultaneous", func(t *testing.T) {
		store := repository.NewQuoteMemoryRepository()
		uc := NewQuoteSagaUseCase(store, nil, nil, nil)
		seedAwaitingQuote(t, store, "QT-2025-0002")

		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); _, _ = uc.ApplyOperationsResponse(ctx, "QT-2025-0002", okOps()) }()
		go func() { defer wg.Done(); _, _ = uc.ApplyFinanceResponse(ctx, "QT-2025-0002", okFin()) }()
		wg.Wait()

		q, _ := uc.GetQuote(ctx, "QT-2025-0002")
		if q.Status != entities.QuoteStatusReadyToSend || q.FinalPrice == nil || *q.FinalPrice != 1200.00 {
			t.Fatalf("simultaneous callbacks diverged: %+v", q)
		}
	})
}

func TestQuoteSagaUseCase_SingleCallbackDoesNotPrice(t *testing.T) {
	store := repository.NewQuoteMemoryRepository()
	uc := NewQuoteSagaUseCase(store, nil, nil, nil)
	seedAwaitingQuote(t, store, "QT-2025-0003")

	q, err := uc.ApplyOperationsResponse(context.Background(), "QT-2025-0003", okOps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != entities.QuoteStatusAwaitingFinance {
		t.Fatalf("one response must not trigger pricing, got %s", q.Status)
	}
	if q.FinalPrice != nil {
		t.Fatalf("unexpected price before both responses: %+v", q)
	}
}

func TestQuoteSagaUseCase_DuplicateCallbacksAreIgnored(t *testing.T) {
	ctx := context.Background()
	store := repository.NewQuoteMemoryRepository()
	uc := NewQuoteSagaUseCase(store, nil, nil, nil)
	seedAwaitingQuote(t, store, "QT-2025-0004")

	if _, err := uc.ApplyOperationsResponse(ctx, "QT-2025-0004", okOps()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.ApplyFinanceResponse(ctx, "QT-2025-0004", okFin()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A late/duplicate finance callback with a different cost must neither
	// overwrite the merged response nor re-run pricing.
	q, err := uc.ApplyFinanceResponse(ctx, "QT-2025-0004", entities.FinanceResponse{BaseCostForQuote: 9999})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != entities.QuoteStatusReadyToSend {
		t.Fatalf("duplicate callback changed status: %s", q.Status)
	}
	if q.FinalPrice == nil || *q.FinalPrice != 1200.00 {
		t.Fatalf("duplicate callback changed price: %+v", q.FinalPrice)
	}
	if q.BaseCostForQuote != 1000 || q.FinanceCheck.Response.BaseCostForQuote != 1000 {
		t.Fatalf("duplicate callback overwrote inputs: %+v", q)
	}

	q, err = uc.ApplyOperationsResponse(ctx, "QT-2025-0004", entities.OperationsResponse{CanBeFulfilled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != entities.QuoteStatusReadyToSend || !q.OperationsCheck.Response.CanBeFulfilled {
		t.Fatalf("duplicate operations callback mutated the quote: %+v", q)
	}
}

func TestQuoteSagaUseCase_CapacityRejected(t *testing.T) {
	ctx := context.Background()
	store := repository.NewQuoteMemoryRepository()
	uc := NewQuoteSagaUseCase(store, nil, nil, nil)
	seedAwaitingQuote(t, store, "QT-2025-0005")

	_, _ = uc.ApplyFinanceResponse(ctx, "QT-2025-0005", okFin())
	q, err := uc.ApplyOperationsResponse(ctx, "QT-2025-0005", entities.OperationsResponse{CanBeFulfilled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != entities.QuoteStatusRejectedCapacity {
		t.Fatalf("expected REJECTED_CAPACITY, got %s", q.Status)
	}
	if q.FinalPrice != nil {
		t.Fatalf("rejected quote must never carry a price: %+v", q)
	}
}

func TestQuoteSagaUseCase_ZeroCostYieldsCostingError(t *testing.T) {
	ctx := context.Background()
	store := repository.NewQuoteMemoryRepository()
	uc := NewQuoteSagaUseCase(store, nil, nil, nil)
	seedAwaitingQuote(t, store, "QT-2025-0006")

	_, _ = uc.ApplyOperationsResponse(ctx, "QT-2025-0006", okOps())
	q, err := uc.ApplyFinanceResponse(ctx, "QT-2025-0006", entities.FinanceResponse{BaseCostForQuote: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != entities.QuoteStatusErrorCosting {
		t.Fatalf("expected ERROR_COSTING, got %s", q.Status)
	}
	if q.FinalPrice != nil {
		t.Fatalf("costing error must never carry a price: %+v", q)
	}
}

func TestQuoteSagaUseCase_CallbackForUnknownQuote(t *testing.T) {
	uc := NewQuoteSagaUseCase(repository.NewQuoteMemoryRepository(), nil, nil, nil)

	if _, err := uc.ApplyOperationsResponse(context.Background(), "QT-2025-NOPE", okOps()); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
	if _, err := uc.ApplyFinanceResponse(context.Background(), "QT-2025-NOPE", okFin()); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestQuoteSagaUseCase_GetQuoteNotFound(t *testing.T) {
	uc := NewQuoteSagaUseCase(repository.NewQuoteMemoryRepository(), nil, nil, nil)

	if _, err := uc.GetQuote(context.Background(), "QT-2025-NOPE"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestQuoteSagaUseCase_UpdateSalesStatus(t *testing.T) {
	ctx := context.Background()
	store := repository.NewQuoteMemoryRepository()
	uc := NewQuoteSagaUseCase(store, nil, nil, nil)
	seedAwaitingQuote(t, store, "QT-2025-0007")

	// WON before SENT is not a legal sales transition.
	if _, err := uc.UpdateSalesStatus(ctx, "QT-2025-0007", entities.QuoteStatusWon); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}

	_, _ = uc.ApplyOperationsResponse(ctx, "QT-2025-0007", okOps())
	_, _ = uc.ApplyFinanceResponse(ctx, "QT-2025-0007", okFin())

	q, err := uc.UpdateSalesStatus(ctx, "QT-2025-0007", entities.QuoteStatusSent)
	if err != nil || q.Status != entities.QuoteStatusSent {
		t.Fatalf("expected SENT, got %+v err=%v", q, err)
	}
	q, err = uc.UpdateSalesStatus(ctx, "QT-2025-0007", entities.QuoteStatusWon)
	if err != nil || q.Status != entities.QuoteStatusWon {
		t.Fatalf("expected WON, got %+v err=%v", q, err)
	}

	// Non-sales statuses are never settable from the outside.
	if _, err := uc.UpdateSalesStatus(ctx, "QT-2025-0007", entities.QuoteStatusReadyToSend); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}

	if _, err := uc.UpdateSalesStatus(ctx, "QT-2025-NOPE", entities.QuoteStatusSent); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestQuoteSagaUseCase_ReapStalled(t *testing.T) {
	ctx := context.Background()
	store := repository.NewQuoteMemoryRepository()
	uc := NewQuoteSagaUseCase(store, nil, nil, nil)

	stale := time.Now().UTC().Add(-time.Hour)
	_, _ = store.Create(ctx, entities.Quote{
		ID:              "QT-2025-OLD1",
		Status:          entities.QuoteStatusAwaitingOps,
		OperationsCheck: entities.OperationsCheck{RequestID: "QT-2025-OLD1"},
		CreatedAt:       stale,
		UpdatedAt:       stale,
	})
	_, _ = store.Create(ctx, entities.Quote{
		ID:              "QT-2025-OLD2",
		Status:          entities.QuoteStatusAwaitingFinance,
		OperationsCheck: entities.OperationsCheck{RequestID: "QT-2025-OLD2", Response: &entities.OperationsResponse{CanBeFulfilled: true}},
		CreatedAt:       stale,
		UpdatedAt:       stale,
	})
	seedAwaitingQuote(t, store, "QT-2025-FRESH")

	reaped, err := uc.ReapStalled(ctx, 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reaped != 2 {
		t.Fatalf("expected 2 reaped quotes, got %d", reaped)
	}

	q, _ := uc.GetQuote(ctx, "QT-2025-OLD1")
	if q.Status != entities.QuoteStatusErrorOperations {
		t.Fatalf("expected ERROR_OPERATIONS for missing operations answer, got %s", q.Status)
	}
	q, _ = uc.GetQuote(ctx, "QT-2025-OLD2")
	if q.Status != entities.QuoteStatusErrorFinance {
		t.Fatalf("expected ERROR_FINANCE for missing finance answer, got %s", q.Status)
	}
	q, _ = uc.GetQuote(ctx, "QT-2025-FRESH")
	if q.Status != entities.QuoteStatusAwaitingFinance {
		t.Fatalf("fresh quote must not be reaped, got %s", q.Status)
	}
}

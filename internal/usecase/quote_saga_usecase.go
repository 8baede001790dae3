package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"commercial_agent/internal/domain/entities"
	"commercial_agent/internal/domain/pricing"
	"commercial_agent/internal/infrastructure/tasks"
	"commercial_agent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidQuoteLeadID      = errors.New("invalid lead_id")
	ErrMissingAgentPayload     = errors.New("missing operations or finance payload")
	ErrInvalidStatusTransition = errors.New("invalid sales status transition")
	ErrQuoteIDConflict         = errors.New("could not allocate a free quote id")
)

// maxIDAttempts bounds id regeneration when a generated id is already taken.
const maxIDAttempts = 5

// IQuoteSagaUseCase drives the quote orchestration saga: initiation, fan-out
// dispatch to the Operations and Finance agents, merge of their out-of-band
// callbacks, and the single pricing decision once both answers are present.
//
// Fan-out ordering: operations is dispatched first; a dispatch failure there
// yields ERROR_OPERATIONS and the costing dispatch is never attempted.

type IQuoteSagaUseCase interface {
	CreateQuote(ctx context.Context, leadID string, opsPayload, finPayload map[string]interface{}) (entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	ApplyOperationsResponse(ctx context.Context, requestID string, resp entities.OperationsResponse) (entities.Quote, error)
	ApplyFinanceResponse(ctx context.Context, quoteID string, resp entities.FinanceResponse) (entities.Quote, error)
	UpdateSalesStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}

type QuoteSagaUseCase struct {
	repo     interfaces.IQuoteRepository
	capacity interfaces.ICapacityClient
	costing  interfaces.ICostingClient
	policy   pricing.Policy
	pool     *tasks.Pool
}

var _ IQuoteSagaUseCase = (*QuoteSagaUseCase)(nil)

func NewQuoteSagaUseCase(
	repo interfaces.IQuoteRepository,
	capacity interfaces.ICapacityClient,
	costing interfaces.ICostingClient,
	pool *tasks.Pool,
) *QuoteSagaUseCase {
	return &QuoteSagaUseCase{
		repo:     repo,
		capacity: capacity,
		costing:  costing,
		policy:   pricing.NewPolicy(),
		pool:     pool,
	}
}

// CreateQuote records a DRAFT quote and schedules the agent fan-out on the
// worker pool, so the caller gets its 202 without waiting on either agent.
func (u *QuoteSagaUseCase) CreateQuote(ctx context.Context, leadID string, opsPayload, finPayload map[string]interface{}) (entities.Quote, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Quote{}, ErrInvalidQuoteLeadID
	}
	if opsPayload == nil || finPayload == nil {
		return entities.Quote{}, ErrMissingAgentPayload
	}

	now := time.Now().UTC()
	q := entities.Quote{
		LeadID:            leadID,
		Status:            entities.QuoteStatusDraft,
		OperationsPayload: opsPayload,
		FinancePayload:    finPayload,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// The repo answers an id collision with a zero quote and no error (same
	// contract as the conditional DynamoDB put), so retry with a fresh id.
	var created entities.Quote
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		q.ID = newQuoteID(now)
		// The capacity check is correlated by request_id; the quote id
		// doubles as the correlation id.
		q.OperationsCheck = entities.OperationsCheck{RequestID: q.ID}

		var err error
		created, err = u.repo.Create(ctx, q)
		if err != nil {
			log.Printf("[quote][usecase] create failed lead_id=%s err=%v", leadID, err)
			return entities.Quote{}, err
		}
		if created.ID != "" {
			break
		}
		log.Printf("[quote][usecase] quote id already taken, regenerating id=%s", q.ID)
	}
	if created.ID == "" {
		log.Printf("[quote][usecase] create failed lead_id=%s err=%v", leadID, ErrQuoteIDConflict)
		return entities.Quote{}, ErrQuoteIDConflict
	}
	log.Printf("[quote][usecase] quote created quote_id=%s lead_id=%s", created.ID, leadID)

	u.pool.Submit(func() {
		u.dispatchChecks(context.Background(), created.ID)
	})
	return created, nil
}

// dispatchChecks runs the outbound fan-out for one quote on a pool worker.
// Dispatch progress is recorded in the status (AWAITING_OPERATIONS then
// AWAITING_FINANCE); the business answers arrive later as callbacks.
func (u *QuoteSagaUseCase) dispatchChecks(ctx context.Context, quoteID string) {
	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil || q.ID == "" {
		log.Printf("[quote][usecase] dispatch aborted quote_id=%s err=%v", quoteID, err)
		return
	}

	u.setDispatchStatus(ctx, quoteID, entities.QuoteStatusAwaitingOps)
	if err := u.capacity.Dispatch(ctx, q.OperationsCheck.RequestID, q.OperationsPayload); err != nil {
		log.Printf("[quote][usecase] operations dispatch failed quote_id=%s err=%v", quoteID, err)
		u.setDispatchStatus(ctx, quoteID, entities.QuoteStatusErrorOperations)
		return
	}

	u.setDispatchStatus(ctx, quoteID, entities.QuoteStatusAwaitingFinance)
	if err := u.costing.Dispatch(ctx, quoteID, q.FinancePayload); err != nil {
		log.Printf("[quote][usecase] finance dispatch failed quote_id=%s err=%v", quoteID, err)
		u.setDispatchStatus(ctx, quoteID, entities.QuoteStatusErrorFinance)
		return
	}
	log.Printf("[quote][usecase] fan-out dispatched quote_id=%s", quoteID)
}

// setDispatchStatus advances the dispatch-progress label without ever
// clobbering a decision the callback path already reached.
func (u *QuoteSagaUseCase) setDispatchStatus(ctx context.Context, quoteID string, status entities.QuoteStatus) {
	_, err := u.repo.Update(ctx, quoteID, func(q *entities.Quote) {
		if q.Status.SagaTerminal() {
			return
		}
		q.Status = status
		q.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		log.Printf("[quote][usecase] status update failed quote_id=%s status=%s err=%v", quoteID, status, err)
	}
}

func (u *QuoteSagaUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// ApplyOperationsResponse merges the capacity answer and re-evaluates
// readiness, all under the record's lock. A second operations callback for
// the same quote is ignored: the response field moves from absent to present
// at most once.
func (u *QuoteSagaUseCase) ApplyOperationsResponse(ctx context.Context, requestID string, resp entities.OperationsResponse) (entities.Quote, error) {
	duplicate := false
	updated, err := u.repo.Update(ctx, requestID, func(q *entities.Quote) {
		if q.OperationsCheck.Response != nil {
			duplicate = true
			return
		}
		r := resp
		q.OperationsCheck.Response = &r
		q.UpdatedAt = time.Now().UTC()
		u.evaluate(q)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if duplicate {
		log.Printf("[quote][usecase] duplicate operations callback ignored quote_id=%s", requestID)
		return updated, nil
	}
	log.Printf("[quote][usecase] operations response merged quote_id=%s can_be_fulfilled=%t status=%s", requestID, resp.CanBeFulfilled, updated.Status)
	return updated, nil
}

// ApplyFinanceResponse is the finance-side counterpart of
// ApplyOperationsResponse; it also derives base_cost_for_quote.
func (u *QuoteSagaUseCase) ApplyFinanceResponse(ctx context.Context, quoteID string, resp entities.FinanceResponse) (entities.Quote, error) {
	duplicate := false
	updated, err := u.repo.Update(ctx, quoteID, func(q *entities.Quote) {
		if q.FinanceCheck.Response != nil {
			duplicate = true
			return
		}
		r := resp
		q.FinanceCheck.Response = &r
		q.BaseCostForQuote = resp.BaseCostForQuote
		q.UpdatedAt = time.Now().UTC()
		u.evaluate(q)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if duplicate {
		log.Printf("[quote][usecase] duplicate finance callback ignored quote_id=%s", quoteID)
		return updated, nil
	}
	log.Printf("[quote][usecase] finance response merged quote_id=%s base_cost=%.2f status=%s", quoteID, resp.BaseCostForQuote, updated.Status)
	return updated, nil
}

// evaluate runs the readiness check. It must be called under the record's
// lock and is idempotent: once the saga is terminal it does nothing, and it
// only prices when both responses are present. Arrival order of the two
// callbacks does not change the outcome.
func (u *QuoteSagaUseCase) evaluate(q *entities.Quote) {
	if q.Status.SagaTerminal() {
		return
	}
	if q.OperationsCheck.Response == nil || q.FinanceCheck.Response == nil {
		return
	}

	q.Status = entities.QuoteStatusCalculatingPrice
	res := u.policy.Price(*q.OperationsCheck.Response, *q.FinanceCheck.Response)
	q.Status = res.Status
	if res.Priced {
		price := res.FinalPrice
		q.FinalPrice = &price
		log.Printf("[quote][usecase] quote priced quote_id=%s final_price=%.2f", q.ID, price)
		return
	}
	log.Printf("[quote][usecase] quote not priced quote_id=%s status=%s", q.ID, q.Status)
}

// UpdateSalesStatus applies the explicit transitions owned by the downstream
// sales-closing process: READY_TO_SEND -> SENT -> WON|LOST.
func (u *QuoteSagaUseCase) UpdateSalesStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	var transitionErr error
	updated, err := u.repo.Update(ctx, id, func(q *entities.Quote) {
		if !salesTransitionAllowed(q.Status, status) {
			transitionErr = ErrInvalidStatusTransition
			return
		}
		q.Status = status
		q.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if transitionErr != nil {
		return entities.Quote{}, transitionErr
	}
	log.Printf("[quote][usecase] sales status applied quote_id=%s status=%s", id, status)
	return updated, nil
}

func salesTransitionAllowed(from, to entities.QuoteStatus) bool {
	switch to {
	case entities.QuoteStatusSent:
		return from == entities.QuoteStatusReadyToSend
	case entities.QuoteStatusWon, entities.QuoteStatusLost:
		return from == entities.QuoteStatusSent
	}
	return false
}

// ReapStalled moves quotes stuck in AWAITING_* for longer than olderThan into
// the ERROR_* state of whichever agent never answered. It returns the number
// of quotes reaped. Wired to QUOTE_SAGA_TIMEOUT; a zero timeout disables the
// reaper entirely.
func (u *QuoteSagaUseCase) ReapStalled(ctx context.Context, olderThan time.Duration) (int, error) {
	quotes, err := u.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-olderThan)
	reaped := 0
	for _, q := range quotes {
		if !awaitingStatus(q.Status) || q.UpdatedAt.After(cutoff) {
			continue
		}
		_, err := u.repo.Update(ctx, q.ID, func(q *entities.Quote) {
			// Re-check under the lock; a callback may have landed meanwhile.
			if !awaitingStatus(q.Status) || q.UpdatedAt.After(cutoff) {
				return
			}
			if q.OperationsCheck.Response == nil {
				q.Status = entities.QuoteStatusErrorOperations
			} else {
				q.Status = entities.QuoteStatusErrorFinance
			}
			q.UpdatedAt = time.Now().UTC()
			reaped++
			log.Printf("[quote][usecase] stalled quote reaped quote_id=%s status=%s", q.ID, q.Status)
		})
		if err != nil {
			return reaped, err
		}
	}
	return reaped, nil
}

func awaitingStatus(s entities.QuoteStatus) bool {
	return s == entities.QuoteStatusAwaitingOps || s == entities.QuoteStatusAwaitingFinance
}

func newQuoteID(now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("QT-%d-%X", now.Year(), id[:2])
}

package repository

import (
	"context"
	"sort"
	"sync"

	"commercial_agent/internal/domain/entities"
	"commercial_agent/internal/usecase/interfaces"
)

// quoteRecord pairs a quote with its own lock so that mutations to the same
// quote serialize while different quotes proceed independently.
type quoteRecord struct {
	mu    sync.Mutex
	quote entities.Quote
}

// QuoteMemoryRepository keeps saga state in volatile process memory: the
// commercial agent is the single owner of quote state and there is no
// durability requirement on it.
//
// Locking model:
//   - mu guards the map itself (insert/lookup).
//   - each record's lock guards that record's quote; Update runs the mutator
//     while holding it, which makes merge-and-evaluate atomic from the
//     outside.

type QuoteMemoryRepository struct {
	mu     sync.RWMutex
	quotes map[string]*quoteRecord
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{quotes: make(map[string]*quoteRecord)}
}

func (r *QuoteMemoryRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.quotes[q.ID]; exists {
		return entities.Quote{}, nil
	}
	r.quotes[q.ID] = &quoteRecord{quote: cloneQuote(q)}
	return q, nil
}

func (r *QuoteMemoryRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	r.mu.RLock()
	rec, ok := r.quotes[id]
	r.mu.RUnlock()
	if !ok {
		return entities.Quote{}, nil
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return cloneQuote(rec.quote), nil
}

func (r *QuoteMemoryRepository) Update(_ context.Context, id string, mutate func(q *entities.Quote)) (entities.Quote, error) {
	r.mu.RLock()
	rec, ok := r.quotes[id]
	r.mu.RUnlock()
	if !ok {
		return entities.Quote{}, nil
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	mutate(&rec.quote)
	return cloneQuote(rec.quote), nil
}

func (r *QuoteMemoryRepository) ListAll(_ context.Context) ([]entities.Quote, error) {
	r.mu.RLock()
	recs := make([]*quoteRecord, 0, len(r.quotes))
	for _, rec := range r.quotes {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	out := make([]entities.Quote, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		out = append(out, cloneQuote(rec.quote))
		rec.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// cloneQuote deep-copies the fields a reader could otherwise share with the
// locked record (pointers, maps, slices).
func cloneQuote(q entities.Quote) entities.Quote {
	out := q
	if q.OperationsCheck.Response != nil {
		resp := *q.OperationsCheck.Response
		resp.PotentialBottlenecks = append([]string(nil), q.OperationsCheck.Response.PotentialBottlenecks...)
		out.OperationsCheck.Response = &resp
	}
	if q.FinanceCheck.Response != nil {
		resp := *q.FinanceCheck.Response
		out.FinanceCheck.Response = &resp
	}
	if q.FinalPrice != nil {
		price := *q.FinalPrice
		out.FinalPrice = &price
	}
	out.OperationsPayload = cloneMap(q.OperationsPayload)
	out.FinancePayload = cloneMap(q.FinancePayload)
	return out
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

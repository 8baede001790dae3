package repository

import (
	"context"
	"sort"
	"sync"

	"commercial_agent/internal/domain/entities"
	"commercial_agent/internal/usecase/interfaces"
)

// LeadMemoryRepository is the default lead store. Leads carry no saga state,
// so a single mutex over the map is enough.

type LeadMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]entities.Lead
}

var _ interfaces.ILeadRepository = (*LeadMemoryRepository)(nil)

func NewLeadMemoryRepository() *LeadMemoryRepository {
	return &LeadMemoryRepository{leads: make(map[string]entities.Lead)}
}

func (r *LeadMemoryRepository) Create(_ context.Context, l entities.Lead) (entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.leads[l.ID]; exists {
		return entities.Lead{}, nil
	}
	r.leads[l.ID] = l
	return l, nil
}

func (r *LeadMemoryRepository) GetByID(_ context.Context, id string) (entities.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.leads[id], nil
}

func (r *LeadMemoryRepository) UpdateScore(_ context.Context, id string, score float64, status entities.LeadStatus) (entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.leads[id]
	if !ok {
		return entities.Lead{}, nil
	}
	l.Score = score
	l.Status = status
	r.leads[id] = l
	return l, nil
}

func (r *LeadMemoryRepository) ListAll(_ context.Context) ([]entities.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Lead, 0, len(r.leads))
	for _, l := range r.leads {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

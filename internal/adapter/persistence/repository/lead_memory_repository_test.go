package repository

import (
	"context"
	"testing"
	"time"

	"commercial_agent/internal/domain/entities"
)

func TestLeadMemoryRepository_CRUD(t *testing.T) {
	repo := NewLeadMemoryRepository()
	ctx := context.Background()

	l := entities.Lead{
		ID:        "lead-abc123",
		Source:    "webinar",
		Criteria:  entities.LeadCriteria{ICP: 80, Intent: 90, Engagement: 40},
		Status:    entities.LeadStatusPreliminary,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := repo.Create(ctx, l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, "lead-abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Source != "webinar" || got.Status != entities.LeadStatusPreliminary {
		t.Fatalf("unexpected lead: %+v", got)
	}

	updated, err := repo.UpdateScore(ctx, "lead-abc123", 80, entities.LeadStatusMQL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Score != 80 || updated.Status != entities.LeadStatusMQL {
		t.Fatalf("unexpected updated lead: %+v", updated)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(all))
	}
}

func TestLeadMemoryRepository_DuplicateCreateKeepsFirst(t *testing.T) {
	repo := NewLeadMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, entities.Lead{ID: "lead-abc123", Source: "webinar"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup, err := repo.Create(ctx, entities.Lead{ID: "lead-abc123", Source: "referral"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dup.ID != "" {
		t.Fatalf("expected zero lead on taken id, got %+v", dup)
	}

	got, err := repo.GetByID(ctx, "lead-abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Source != "webinar" {
		t.Fatalf("first record must win, got %+v", got)
	}
}

func TestLeadMemoryRepository_UnknownID(t *testing.T) {
	repo := NewLeadMemoryRepository()
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "lead-missing")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero lead, got %+v err=%v", got, err)
	}

	updated, err := repo.UpdateScore(ctx, "lead-missing", 10, entities.LeadStatusQualifiedOut)
	if err != nil || updated.ID != "" {
		t.Fatalf("expected zero lead, got %+v err=%v", updated, err)
	}
}

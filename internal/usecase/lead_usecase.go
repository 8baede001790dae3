package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"commercial_agent/internal/domain/entities"
	"commercial_agent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrInvalidLeadInput = errors.New("invalid lead input")
	ErrLeadIDConflict   = errors.New("could not allocate a free lead id")
)

// Qualification weights and threshold. A score above the threshold makes the
// lead an MQL; anything else is qualified out.
const (
	weightICP        = 0.5
	weightIntent     = 0.4
	weightEngagement = 0.1
	mqlThreshold     = 75.0
)

var defaultCriteria = entities.LeadCriteria{ICP: 50, Intent: 50, Engagement: 10}

// ILeadUseCase exposes lead intake and the one-shot qualification scoring.

type ILeadUseCase interface {
	CreateLead(ctx context.Context, source string, details map[string]interface{}, criteria *entities.LeadCriteria) (entities.Lead, error)
	QualifyLead(ctx context.Context, id string) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) CreateLead(ctx context.Context, source string, details map[string]interface{}, criteria *entities.LeadCriteria) (entities.Lead, error) {
	source = strings.TrimSpace(source)
	if source == "" || details == nil {
		return entities.Lead{}, ErrInvalidLeadInput
	}

	c := defaultCriteria
	if criteria != nil {
		c = *criteria
	}

	l := entities.Lead{
		Source:    source,
		Details:   details,
		Criteria:  c,
		Status:    entities.LeadStatusPreliminary,
		CreatedAt: time.Now().UTC(),
	}

	// Same id-collision contract as the quote store: zero lead, no error.
	var created entities.Lead
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		l.ID = newLeadID()

		var err error
		created, err = u.repo.Create(ctx, l)
		if err != nil {
			log.Printf("[lead][usecase] create failed source=%s err=%v", source, err)
			return entities.Lead{}, err
		}
		if created.ID != "" {
			break
		}
		log.Printf("[lead][usecase] lead id already taken, regenerating id=%s", l.ID)
	}
	if created.ID == "" {
		log.Printf("[lead][usecase] create failed source=%s err=%v", source, ErrLeadIDConflict)
		return entities.Lead{}, ErrLeadIDConflict
	}
	log.Printf("[lead][usecase] lead created lead_id=%s source=%s", created.ID, source)
	return created, nil
}

// QualifyLead computes the weighted lead score and stores the MQL decision.
func (u *LeadUseCase) QualifyLead(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrLeadNotFound
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}

	score := weightICP*l.Criteria.ICP + weightIntent*l.Criteria.Intent + weightEngagement*l.Criteria.Engagement
	score = math.Round(score*100) / 100

	status := entities.LeadStatusQualifiedOut
	if score > mqlThreshold {
		status = entities.LeadStatusMQL
	}

	updated, err := u.repo.UpdateScore(ctx, id, score, status)
	if err != nil {
		log.Printf("[lead][usecase] qualify failed lead_id=%s err=%v", id, err)
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	log.Printf("[lead][usecase] lead qualified lead_id=%s score=%.2f status=%s", id, score, status)
	return updated, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrLeadNotFound
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func newLeadID() string {
	id := uuid.New()
	return fmt.Sprintf("lead-%x", id[:3])
}

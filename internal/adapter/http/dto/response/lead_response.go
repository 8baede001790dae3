package response

import (
	"time"

	"commercial_agent/internal/domain/entities"
)

type LeadResponse struct {
	ID        string                 `json:"id"`
	Source    string                 `json:"source"`
	Details   map[string]interface{} `json:"details"`
	Criteria  entities.LeadCriteria  `json:"criteria"`
	Score     float64                `json:"score"`
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:        l.ID,
		Source:    l.Source,
		Details:   l.Details,
		Criteria:  l.Criteria,
		Score:     l.Score,
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt,
	}
}

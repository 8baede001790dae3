package request

import (
	"strings"

	"commercial_agent/internal/domain/entities"
)

// LeadCriteriaRequest carries the optional qualification inputs on intake.
type LeadCriteriaRequest struct {
	ICP        float64 `json:"icp"`
	Intent     float64 `json:"intent"`
	Engagement float64 `json:"engagement"`
}

// CreateLeadRequest is the lead-intake payload. Criteria may be omitted; the
// use case then applies intake defaults.
type CreateLeadRequest struct {
	Source   string                 `json:"source" binding:"required"`
	Details  map[string]interface{} `json:"details"`
	Criteria *LeadCriteriaRequest   `json:"criteria"`
}

func (r CreateLeadRequest) ResolveSource() string {
	return strings.TrimSpace(r.Source)
}

func (r CreateLeadRequest) Valid() bool {
	return r.ResolveSource() != "" && r.Details != nil
}

func (r CreateLeadRequest) ResolveCriteria() *entities.LeadCriteria {
	if r.Criteria == nil {
		return nil
	}
	return &entities.LeadCriteria{
		ICP:        r.Criteria.ICP,
		Intent:     r.Criteria.Intent,
		Engagement: r.Criteria.Engagement,
	}
}

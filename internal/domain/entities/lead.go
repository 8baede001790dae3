package entities

import "time"

// LeadStatus is the lead qualification lifecycle: created PRELIMINARY, scored
// once into MQL or QUALIFIED_OUT, never deleted.

type LeadStatus string

const (
	LeadStatusPreliminary  LeadStatus = "PRELIMINARY"
	LeadStatusMQL          LeadStatus = "MQL"
	LeadStatusQualifiedOut LeadStatus = "QUALIFIED_OUT"
)

// LeadCriteria are the raw inputs to the qualification score.
type LeadCriteria struct {
	ICP        float64 `json:"icp"`
	Intent     float64 `json:"intent"`
	Engagement float64 `json:"engagement"`
}

type Lead struct {
	ID        string                 `json:"id"`
	Source    string                 `json:"source"`
	Details   map[string]interface{} `json:"details"`
	Criteria  LeadCriteria           `json:"criteria"`
	Score     float64                `json:"score"`
	Status    LeadStatus             `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
}

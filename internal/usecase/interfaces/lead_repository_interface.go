package interfaces

import (
	"context"

	"commercial_agent/internal/domain/entities"
)

//go:generate mockgen -source=lead_repository_interface.go -destination=mocks/lead_repository_mock.go -package=mocks

// ILeadRepository abstracts lead persistence (in-memory by default, DynamoDB
// when LEADS_BACKEND=dynamodb).

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	UpdateScore(ctx context.Context, id string, score float64, status entities.LeadStatus) (entities.Lead, error)
	ListAll(ctx context.Context) ([]entities.Lead, error)
}

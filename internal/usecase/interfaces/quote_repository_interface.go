package interfaces

import (
	"context"

	"commercial_agent/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mocks

// IQuoteRepository is the quote store: the only shared mutable resource of the
// saga and its sole synchronization boundary.
//
// Contract:
//   - GetByID returns the zero Quote when the id is unknown (no error).
//   - Update applies the mutator under the record's lock and returns the
//     updated record; mutations to the same quote never interleave, mutations
//     to different quotes proceed independently. The zero Quote is returned
//     when the id is unknown.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, id string, mutate func(q *entities.Quote)) (entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
}

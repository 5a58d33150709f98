package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// IEstimateRepository abstracts persistence for Estimate.
//
// The estimate engine must be able to:
//   - create a quote (conditional on the id being new)
//   - load it by id and list a customer's quotes
//   - rewrite it after a transition, only if nobody else did first

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}

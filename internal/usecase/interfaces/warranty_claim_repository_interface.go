package interfaces

import (
	"context"
	"repairdesk/internal/domain/entities"
)

// IWarrantyClaimRepository abstracts persistence for WarrantyClaim.

type IWarrantyClaimRepository interface {
	Create(ctx context.Context, c entities.WarrantyClaim) (entities.WarrantyClaim, error)
	GetByID(ctx context.Context, id string) (entities.WarrantyClaim, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.WarrantyClaim, error)
	Update(ctx context.Context, c entities.WarrantyClaim) (entities.WarrantyClaim, error)
}

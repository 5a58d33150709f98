package request

import (
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/shopspring/decimal"
)

type FileClaimRequest struct {
	TicketNumber   string `json:"ticket_number" binding:"required" example:"TKT-000001"`
	Reason         string `json:"reason" binding:"required" example:"screen flickers"`
	Description    string `json:"description,omitempty"`
	ResolutionType string `json:"resolution_type" binding:"required" example:"redo"`
}

func (r FileClaimRequest) ToInput(performedBy string) usecase.FileClaimInput {
	return usecase.FileClaimInput{
		TicketNumber:   r.TicketNumber,
		Reason:         r.Reason,
		Description:    r.Description,
		ResolutionType: entities.ResolutionType(r.ResolutionType),
		PerformedBy:    performedBy,
	}
}

type ApproveClaimRequest struct {
	Notes string `json:"notes,omitempty" example:"covered, same fault"`
}

// ResolveClaimRequest.RefundAmount is read only for partial-refund claims.
type ResolveClaimRequest struct {
	RefundAmount string `json:"refund_amount,omitempty" example:"100.00"`
}

func (r ResolveClaimRequest) Resolve() (*decimal.Decimal, error) {
	return optionalMoney("refund_amount", r.RefundAmount)
}

package usecase

import (
	"context"
	"testing"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicket_NumbersAndLookup(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)

	in := CreateTicketInput{CustomerID: "cust-1", Device: testDevice(), RepairType: "battery", PerformedBy: "front-desk"}
	first, err := s.tickets.Create(ctx, in)
	require.NoError(t, err)
	second, err := s.tickets.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "TKT-000001", first.TicketNumber)
	assert.Equal(t, "TKT-000002", second.TicketNumber)
	assert.Equal(t, "front-desk", first.UpdatedBy)

	got, err := s.tickets.GetByNumber(ctx, " TKT-000002 ")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	_, err = s.tickets.GetByNumber(ctx, "TKT-000404")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.tickets.GetByID(ctx, "")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestTicket_AdvanceAcceptsAnyCase(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk, err := s.tickets.Create(ctx, CreateTicketInput{CustomerID: "cust-1", Device: testDevice(), RepairType: "screen"})
	require.NoError(t, err)

	tk, err = s.tickets.Advance(ctx, tk.ID, "diagnosed", "tech")
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusDiagnosed, tk.Status)
	assert.Equal(t, "tech", tk.UpdatedBy)
	assert.Equal(t, int64(2), tk.Version)
}

func TestTicket_UpdateCosts(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk, err := s.tickets.Create(ctx, CreateTicketInput{CustomerID: "cust-1", Device: testDevice(), RepairType: "screen", EstimatedCost: decPtr("237.07")})
	require.NoError(t, err)

	_, err = s.tickets.UpdateCosts(ctx, tk.ID, nil, nil, "tech")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = s.tickets.UpdateCosts(ctx, tk.ID, nil, decPtr("-5"), "tech")
	assert.ErrorIs(t, err, errs.ErrValidation)

	tk, err = s.tickets.UpdateCosts(ctx, tk.ID, nil, decPtr("250.00"), "tech")
	require.NoError(t, err)
	require.NotNil(t, tk.ActualCost)
	assert.Equal(t, "250.00", tk.ActualCost.StringFixed(2))
	assert.Equal(t, "237.07", tk.EstimatedCost.StringFixed(2))
	assert.Equal(t, "250.00", tk.BilledAmount().StringFixed(2))

	_, err = s.tickets.UpdateCosts(ctx, "missing", decPtr("1"), nil, "tech")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

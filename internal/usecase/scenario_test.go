package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_EstimateToWarrantyClaim(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)

	e, err := s.estimates.Create(ctx, CreateEstimateInput{
		CustomerID: "cust-1",
		Device:     testDevice(),
		RepairType: "screen",
		Items:      screenItems(),
		TaxRate:    screenTax,
	})
	require.NoError(t, err)
	assert.Equal(t, "EST-000001", e.EstimateNumber)
	assert.Equal(t, "219.00", e.Subtotal.StringFixed(2))
	assert.Equal(t, "18.07", e.TaxAmount.StringFixed(2))
	assert.Equal(t, "237.07", e.Total.StringFixed(2))
	assert.Equal(t, entities.EstimateStatusDraft, e.Status)

	_, err = s.estimates.Send(ctx, e.ID, "front-desk")
	require.NoError(t, err)
	_, err = s.estimates.MarkViewed(ctx, e.ID, "customer")
	require.NoError(t, err)
	e, err = s.estimates.Approve(ctx, e.ID, "customer")
	require.NoError(t, err)
	assert.Equal(t, entities.EstimateStatusApproved, e.Status)

	tk, err := s.estimates.Convert(ctx, e.ID, "front-desk")
	require.NoError(t, err)
	assert.Equal(t, "TKT-000001", tk.TicketNumber)
	assert.Equal(t, entities.TicketStatusIntake, tk.Status)
	assert.Equal(t, e.ID, tk.SourceEstimateID)
	require.NotNil(t, tk.EstimatedCost)
	assert.Equal(t, "237.07", tk.EstimatedCost.StringFixed(2))

	for _, st := range []entities.TicketStatus{
		entities.TicketStatusDiagnosed, entities.TicketStatusInProgress,
		entities.TicketStatusReady, entities.TicketStatusPickedUp,
	} {
		s.clock.Advance(time.Hour)
		tk, err = s.tickets.Advance(ctx, tk.ID, st, "tech")
		require.NoError(t, err)
	}
	require.NotNil(t, tk.PickedUpAt)

	inv, err := s.invoices.CreateFromEstimate(ctx, e.ID, dec("0"), nil, "front-desk")
	require.NoError(t, err)
	assert.Equal(t, "INV-000001", inv.InvoiceNumber)
	assert.Equal(t, tk.TicketNumber, inv.TicketNumber)
	assert.Equal(t, "237.07", inv.AmountDue.StringFixed(2))

	_, err = s.invoices.Send(ctx, inv.ID, "front-desk")
	require.NoError(t, err)
	p, err := s.payments.ApplyPayment(ctx, ApplyPaymentInput{InvoiceID: inv.ID, Amount: dec("237.07"), Method: entities.PaymentMethodCash, PerformedBy: "front-desk"})
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusCompleted, p.Status)
	assert.True(t, p.ProcessorFee.IsZero())

	inv, err = s.invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPaid, inv.Status)
	assert.True(t, inv.AmountDue.IsZero())
	assert.Equal(t, "237.07", inv.AmountPaid.StringFixed(2))

	s.clock.Advance(10 * 24 * time.Hour)
	claim, err := s.warranty.FileClaim(ctx, FileClaimInput{
		TicketNumber:   tk.TicketNumber,
		Reason:         "screen flickers",
		Description:    "flicker after 10 days",
		ResolutionType: entities.ResolutionRedo,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ClaimStatusPending, claim.Status)
	assert.Equal(t, "WC-000001", claim.ClaimNumber)
	assert.Equal(t, 90, claim.WarrantyPeriodDays)
	assert.True(t, claim.OriginalRepairDate.Equal(*tk.PickedUpAt))

	status, err := s.warranty.DaysRemaining(ctx, claim.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, status.DaysRemaining)

	balance, err := s.customers.OutstandingBalance(ctx, "cust-1")
	require.NoError(t, err)
	assert.True(t, balance.Outstanding.IsZero())

	records, err := s.customers.ListByCustomer(ctx, "cust-1")
	require.NoError(t, err)
	assert.Len(t, records.Tickets, 1)
	assert.Len(t, records.Estimates, 1)
	assert.Len(t, records.Invoices, 1)
	assert.Len(t, records.WarrantyClaims, 1)
}

func TestEstimateConvert_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	e := s.approvedEstimate(t, "cust-1")

	first, err := s.estimates.Convert(ctx, e.ID, "staff")
	require.NoError(t, err)

	second, err := s.estimates.Convert(ctx, e.ID, "staff")
	assert.True(t, errors.Is(err, errs.ErrAlreadyConverted))
	assert.Equal(t, first.ID, second.ID)

	tickets, err := s.store.Tickets().ListByCustomerID(ctx, "cust-1")
	require.NoError(t, err)
	assert.Len(t, tickets, 1)

	stored, _ := s.estimates.GetByID(ctx, e.ID)
	assert.Equal(t, entities.EstimateStatusConverted, stored.Status)
	assert.Equal(t, first.ID, stored.ConvertedToTicketID)
}

func TestEstimateConvert_ConcurrentCallsOpenOneTicket(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	e := s.approvedEstimate(t, "cust-1")

	var wg sync.WaitGroup
	ticketIDs := make([]string, 8)
	results := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tk, err := s.estimates.Convert(ctx, e.ID, "staff")
			ticketIDs[i], results[i] = tk.ID, err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for i, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errs.KindOf(err) == errs.KindAlreadyConverted:
		default:
			t.Fatalf("caller %d: unexpected error: %v", i, err)
		}
		assert.NotEmpty(t, ticketIDs[i])
		assert.Equal(t, ticketIDs[0], ticketIDs[i], "every caller gets the same ticket")
	}
	assert.Equal(t, 1, succeeded)

	tickets, _ := s.store.Tickets().ListByCustomerID(ctx, "cust-1")
	assert.Len(t, tickets, 1)
}

func TestEstimateConvert_RequiresApproval(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	e, err := s.estimates.Create(ctx, CreateEstimateInput{CustomerID: "c", Device: testDevice(), Items: screenItems(), TaxRate: screenTax})
	require.NoError(t, err)

	_, err = s.estimates.Convert(ctx, e.ID, "staff")
	assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
}

func TestEstimate_ApproveAfterValidity(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	e, err := s.estimates.Create(ctx, CreateEstimateInput{CustomerID: "c", Device: testDevice(), Items: screenItems(), TaxRate: screenTax})
	require.NoError(t, err)
	assert.True(t, e.ValidUntil.Equal(s.clock.Now().AddDate(0, 0, 30)))

	s.clock.Set(e.ValidUntil.Add(time.Millisecond))
	_, err = s.estimates.Approve(ctx, e.ID, "customer")
	assert.True(t, errors.Is(err, errs.ErrExpired))

	stored, _ := s.estimates.GetByID(ctx, e.ID)
	assert.Equal(t, entities.EstimateStatusDraft, stored.Status)
}

func TestEstimate_DuplicateAndUpdateItems(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	e := s.approvedEstimate(t, "cust-1")

	dup, err := s.estimates.Duplicate(ctx, e.ID, "staff")
	require.NoError(t, err)
	assert.NotEqual(t, e.ID, dup.ID)
	assert.Equal(t, "EST-000002", dup.EstimateNumber)
	assert.Equal(t, entities.EstimateStatusDraft, dup.Status)
	assert.Equal(t, e.Total.StringFixed(2), dup.Total.StringFixed(2))

	_, err = s.estimates.UpdateItems(ctx, e.ID, screenItems()[:1], screenTax, "staff")
	assert.True(t, errors.Is(err, errs.ErrInvalidTransition))

	dup, err = s.estimates.UpdateItems(ctx, dup.ID, screenItems()[:1], screenTax, "staff")
	require.NoError(t, err)
	assert.Equal(t, "194.85", dup.Total.StringFixed(2))
}

func TestTicket_AdvanceFailurePersistsNothing(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk, err := s.tickets.Create(ctx, CreateTicketInput{CustomerID: "c", Device: testDevice(), RepairType: "battery"})
	require.NoError(t, err)

	_, err = s.tickets.Advance(ctx, tk.ID, entities.TicketStatusReady, "tech")
	assert.True(t, errors.Is(err, errs.ErrInvalidTransition))

	stored, _ := s.tickets.GetByID(ctx, tk.ID)
	assert.Equal(t, tk.Version, stored.Version)
	assert.Equal(t, entities.TicketStatusIntake, stored.Status)

	_, err = s.tickets.GetByNumber(ctx, "TKT-999999")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

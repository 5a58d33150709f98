package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"repairdesk/internal/adapter/persistence/memory"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// shop wires every usecase to one in-memory store.
type shop struct {
	store     *memory.Store
	clock     *testClock
	tickets   *TicketUseCase
	estimates *EstimateUseCase
	invoices  *InvoiceUseCase
	payments  *PaymentUseCase
	warranty  *WarrantyUseCase
	customers *CustomerUseCase
}

func newShop(t *testing.T, gateway interfaces.IPaymentGateway) *shop {
	t.Helper()
	store := memory.NewStore()
	clock := &testClock{t: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	opts := []Option{WithClock(clock.Now), WithShopID("test")}

	payments := NewPaymentUseCase(store.Payments(), store.Invoices(), gateway, opts...)
	return &shop{
		store:     store,
		clock:     clock,
		tickets:   NewTicketUseCase(store.Tickets(), store.Sequence(), opts...),
		estimates: NewEstimateUseCase(store.Estimates(), store.Tickets(), store.Sequence(), opts...),
		invoices:  NewInvoiceUseCase(store.Invoices(), store.Tickets(), store.Estimates(), store.Sequence(), opts...),
		payments:  payments,
		warranty:  NewWarrantyUseCase(store.Claims(), store.Tickets(), store.Invoices(), store.Payments(), payments, store.Sequence(), opts...),
		customers: NewCustomerUseCase(store.Tickets(), store.Estimates(), store.Invoices(), store.Claims(), opts...),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func testDevice() entities.Device {
	return entities.Device{Brand: "Apple", Model: "iPhone 13", Type: "phone", SerialNumber: "SN-1"}
}

// screenItems prices to 219.00 / 18.07 / 237.07 at 8.25% tax.
func screenItems() []entities.LineItem {
	return []entities.LineItem{
		{Type: entities.LineItemPart, Description: "OLED screen", Quantity: dec("1"), UnitPrice: dec("180.00")},
		{Type: entities.LineItemLabor, Description: "Screen replacement", Quantity: dec("1"), UnitPrice: dec("39.00")},
	}
}

var screenTax = decimal.RequireFromString("0.0825")

func (s *shop) approvedEstimate(t *testing.T, customerID string) entities.Estimate {
	t.Helper()
	ctx := context.Background()
	e, err := s.estimates.Create(ctx, CreateEstimateInput{
		CustomerID: customerID,
		Device:     testDevice(),
		RepairType: "screen",
		Items:      screenItems(),
		TaxRate:    screenTax,
	})
	require.NoError(t, err)
	_, err = s.estimates.Send(ctx, e.ID, "front-desk")
	require.NoError(t, err)
	e, err = s.estimates.Approve(ctx, e.ID, "customer")
	require.NoError(t, err)
	return e
}

// pickedUpTicket walks a fresh ticket through the whole flow.
func (s *shop) pickedUpTicket(t *testing.T, customerID, repairType string) entities.Ticket {
	t.Helper()
	ctx := context.Background()
	tk, err := s.tickets.Create(ctx, CreateTicketInput{
		CustomerID:    customerID,
		Device:        testDevice(),
		RepairType:    repairType,
		EstimatedCost: decPtr("237.07"),
	})
	require.NoError(t, err)
	for _, st := range []entities.TicketStatus{
		entities.TicketStatusDiagnosed,
		entities.TicketStatusInProgress,
		entities.TicketStatusReady,
		entities.TicketStatusPickedUp,
	} {
		tk, err = s.tickets.Advance(ctx, tk.ID, st, "tech")
		require.NoError(t, err)
	}
	return tk
}

func (s *shop) sentInvoice(t *testing.T, customerID, ticketNumber string) entities.Invoice {
	t.Helper()
	ctx := context.Background()
	inv, err := s.invoices.Create(ctx, CreateInvoiceInput{
		CustomerID:   customerID,
		TicketNumber: ticketNumber,
		Items:        screenItems(),
		TaxRate:      screenTax,
	})
	require.NoError(t, err)
	inv, err = s.invoices.Send(ctx, inv.ID, "front-desk")
	require.NoError(t, err)
	return inv
}

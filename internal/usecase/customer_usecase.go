package usecase

import (
	"context"
	"fmt"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/errs"
	"repairdesk/internal/usecase/interfaces"
	"strings"

	"github.com/shopspring/decimal"
)

// CustomerRecords is everything the shop holds for one customer.
type CustomerRecords struct {
	CustomerID     string
	Tickets        []entities.Ticket
	Estimates      []entities.Estimate
	Invoices       []entities.Invoice
	WarrantyClaims []entities.WarrantyClaim
}

// CustomerBalance aggregates what a customer still owes. Void invoices are
// excluded.
type CustomerBalance struct {
	CustomerID      string
	Outstanding     decimal.Decimal
	OverdueAmount   decimal.Decimal
	OpenInvoices    int
	OverdueInvoices int
}

type ICustomerUseCase interface {
	ListByCustomer(ctx context.Context, customerID string) (CustomerRecords, error)
	OutstandingBalance(ctx context.Context, customerID string) (CustomerBalance, error)
}

type CustomerUseCase struct {
	tickets   interfaces.ITicketRepository
	estimates interfaces.IEstimateRepository
	invoices  interfaces.IInvoiceRepository
	claims    interfaces.IWarrantyClaimRepository
	opts      options
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(
	tickets interfaces.ITicketRepository,
	estimates interfaces.IEstimateRepository,
	invoices interfaces.IInvoiceRepository,
	claims interfaces.IWarrantyClaimRepository,
	opts ...Option,
) *CustomerUseCase {
	return &CustomerUseCase{tickets: tickets, estimates: estimates, invoices: invoices, claims: claims, opts: newOptions(opts)}
}

func (u *CustomerUseCase) ListByCustomer(ctx context.Context, customerID string) (CustomerRecords, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return CustomerRecords{}, errs.Validation("customer", "customer_id is required")
	}
	out := CustomerRecords{CustomerID: customerID}
	var err error
	if out.Tickets, err = u.tickets.ListByCustomerID(ctx, customerID); err != nil {
		return CustomerRecords{}, fmt.Errorf("tickets for %s: %w", customerID, err)
	}
	if out.Estimates, err = u.estimates.ListByCustomerID(ctx, customerID); err != nil {
		return CustomerRecords{}, fmt.Errorf("estimates for %s: %w", customerID, err)
	}
	if out.Invoices, err = u.invoices.ListByCustomerID(ctx, customerID); err != nil {
		return CustomerRecords{}, fmt.Errorf("invoices for %s: %w", customerID, err)
	}
	if out.WarrantyClaims, err = u.claims.ListByCustomerID(ctx, customerID); err != nil {
		return CustomerRecords{}, fmt.Errorf("warranty claims for %s: %w", customerID, err)
	}
	return out, nil
}

func (u *CustomerUseCase) OutstandingBalance(ctx context.Context, customerID string) (CustomerBalance, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return CustomerBalance{}, errs.Validation("customer", "customer_id is required")
	}
	invs, err := u.invoices.ListByCustomerID(ctx, customerID)
	if err != nil {
		return CustomerBalance{}, fmt.Errorf("invoices for %s: %w", customerID, err)
	}

	now := u.opts.now()
	b := CustomerBalance{CustomerID: customerID, Outstanding: decimal.Zero, OverdueAmount: decimal.Zero}
	for _, inv := range invs {
		if inv.Status == entities.InvoiceStatusVoid || !inv.AmountDue.IsPositive() {
			continue
		}
		b.Outstanding = b.Outstanding.Add(inv.AmountDue)
		b.OpenInvoices++
		if inv.IsOverdue(now) {
			b.OverdueAmount = b.OverdueAmount.Add(inv.AmountDue)
			b.OverdueInvoices++
		}
	}
	return b, nil
}

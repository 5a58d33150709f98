package response

import (
	"time"

	"repairdesk/internal/domain/money"
	"repairdesk/internal/usecase"
)

type CustomerRecordsResponse struct {
	CustomerID     string                  `json:"customer_id"`
	Tickets        []TicketResponse        `json:"tickets"`
	Estimates      []EstimateResponse      `json:"estimates"`
	Invoices       []InvoiceResponse       `json:"invoices"`
	WarrantyClaims []WarrantyClaimResponse `json:"warranty_claims"`
}

func FromCustomerRecords(r usecase.CustomerRecords, now time.Time) CustomerRecordsResponse {
	return CustomerRecordsResponse{
		CustomerID:     r.CustomerID,
		Tickets:        FromTickets(r.Tickets),
		Estimates:      FromEstimates(r.Estimates),
		Invoices:       FromInvoices(r.Invoices, now),
		WarrantyClaims: FromWarrantyClaims(r.WarrantyClaims),
	}
}

type CustomerBalanceResponse struct {
	CustomerID      string `json:"customer_id"`
	Outstanding     string `json:"outstanding" example:"137.07"`
	OverdueAmount   string `json:"overdue_amount" example:"0.00"`
	OpenInvoices    int    `json:"open_invoices"`
	OverdueInvoices int    `json:"overdue_invoices"`
}

func FromCustomerBalance(b usecase.CustomerBalance) CustomerBalanceResponse {
	return CustomerBalanceResponse{
		CustomerID:      b.CustomerID,
		Outstanding:     money.Format(b.Outstanding),
		OverdueAmount:   money.Format(b.OverdueAmount),
		OpenInvoices:    b.OpenInvoices,
		OverdueInvoices: b.OverdueInvoices,
	}
}

package handlers

import (
	"net/http"
	"testing"
	"time"

	"repairdesk/internal/adapter/http/handlers/mocks"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)
	h.now = func() time.Time { return now }
	r := gin.New()
	r.GET("/v1/customers/:customer_id/records", h.GetCustomerRecords)
	r.GET("/v1/customers/:customer_id/balance", h.GetCustomerBalance)

	t.Run("records", func(t *testing.T) {
		uc.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return(usecase.CustomerRecords{
			CustomerID: "cust-1",
			Tickets:    []entities.Ticket{{ID: "t-1", Status: entities.TicketStatusIntake}},
			Invoices:   []entities.Invoice{{ID: "inv-1", Status: entities.InvoiceStatusSent, AmountDue: decimal.RequireFromString("137.07"), DueDate: now.AddDate(0, 0, -2)}},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/customers/cust-1/records", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := decodeBody(t, w)
		tickets, _ := got["tickets"].([]any)
		invoices, _ := got["invoices"].([]any)
		estimates, ok := got["estimates"].([]any)
		if len(tickets) != 1 || len(invoices) != 1 || !ok || len(estimates) != 0 {
			t.Fatalf("unexpected body: %v", got)
		}
		if inv := invoices[0].(map[string]any); inv["effective_status"] != "overdue" {
			t.Fatalf("expected overdue invoice, got %v", inv["effective_status"])
		}
	})

	t.Run("balance", func(t *testing.T) {
		uc.EXPECT().OutstandingBalance(gomock.Any(), "cust-1").Return(usecase.CustomerBalance{
			CustomerID:      "cust-1",
			Outstanding:     decimal.RequireFromString("137.07"),
			OverdueAmount:   decimal.RequireFromString("137.07"),
			OpenInvoices:    1,
			OverdueInvoices: 1,
		}, nil)

		w := serve(r, http.MethodGet, "/v1/customers/cust-1/balance", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := decodeBody(t, w)
		if got["outstanding"] != "137.07" || got["overdue_invoices"] != float64(1) {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

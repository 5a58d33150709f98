package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"repairdesk/internal/adapter/http/handlers/mocks"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/errs"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(uc usecase.IPaymentUseCase) *gin.Engine {
	h := NewPaymentHandler(uc)
	r := gin.New()
	r.POST("/v1/invoices/:id/payments", h.ApplyPayment)
	r.GET("/v1/invoices/:id/payments", h.ListInvoicePayments)
	r.POST("/v1/payments/:id/refund", h.RefundPayment)
	return r
}

func TestPaymentHandler_ApplyPayment(t *testing.T) {
	t.Run("card payment forwards the provider payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ApplyPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in usecase.ApplyPaymentInput) (entities.Payment, error) {
				if in.InvoiceID != "inv-1" || in.Method != entities.PaymentMethodCard || in.PerformedBy != "ana" {
					t.Fatalf("unexpected input: %+v", in)
				}
				var payload map[string]any
				if err := json.Unmarshal(in.ProviderPayload, &payload); err != nil || payload["token"] != "tok" {
					t.Fatalf("payload not forwarded: %s", in.ProviderPayload)
				}
				return entities.Payment{
					ID:                "p-1",
					InvoiceID:         in.InvoiceID,
					Kind:              entities.PaymentKindPayment,
					Amount:            in.Amount,
					Method:            in.Method,
					ProcessorFee:      decimal.RequireFromString("3.20"),
					NetAmount:         decimal.RequireFromString("96.80"),
					Status:            entities.PaymentStatusCompleted,
					ProviderPaymentID: "mock-1",
					ProviderPayload:   json.RawMessage(`{"id":"mock-1","status":"approved"}`),
				}, nil
			})

		body := `{"amount":"100.00","method":"card","mp_payload":{"token":"tok","installments":1}}`
		w := serve(newPaymentRouter(uc), http.MethodPost, "/v1/invoices/inv-1/payments", body, HeaderPerformedBy, "ana")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		got := decodeBody(t, w)
		if got["processor_fee"] != "3.20" || got["net_amount"] != "96.80" || got["provider_payment_id"] != "mock-1" {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("exceeds balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().ApplyPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errs.New(errs.KindExceedsBalance, "payment", "100.00 exceeds 37.07 due"))

		w := serve(newPaymentRouter(uc), http.MethodPost, "/v1/invoices/inv-1/payments", `{"amount":"100.00","method":"CASH"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if got := decodeError(t, w).Code; got != "EXCEEDS_BALANCE" {
			t.Fatalf("expected EXCEEDS_BALANCE, got %s", got)
		}
	})

	t.Run("three decimal amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		w := serve(newPaymentRouter(uc), http.MethodPost, "/v1/invoices/inv-1/payments", `{"amount":"10.001","method":"CASH"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	gatewayCases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidProviderPayload, http.StatusBadRequest, "INVALID_PROVIDER_PAYLOAD"},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest, "INVALID_PROVIDER_PAYLOAD"},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest, "PAYMENT_PROVIDER_INVALID_USERS"},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_GATEWAY_NOT_CONFIGURED"},
	}
	for _, tc := range gatewayCases {
		t.Run("gateway "+tc.code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			uc.EXPECT().ApplyPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, fmt.Errorf("charge: %w", tc.err))

			w := serve(newPaymentRouter(uc), http.MethodPost, "/v1/invoices/inv-1/payments", `{"amount":"10.00","method":"CARD","provider_payload":{}}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if got := decodeError(t, w).Code; got != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, got)
			}
		})
	}
}

func TestPaymentHandler_RefundPayment(t *testing.T) {
	t.Run("full refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().Refund(gomock.Any(), usecase.RefundInput{PaymentID: "p-1", Reason: "part returned", PerformedBy: "ana", RefundID: "r-1"}).
			Return(entities.Payment{ID: "r-1", Kind: entities.PaymentKindRefund, Amount: decimal.RequireFromString("100.00"), Status: entities.PaymentStatusRefunded, RefundOfID: "p-1"}, nil)

		w := serve(newPaymentRouter(uc), http.MethodPost, "/v1/payments/p-1/refund", `{"reason":"part returned","refund_id":" r-1 "}`, HeaderPerformedBy, "ana")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if got := decodeBody(t, w); got["kind"] != "refund" || got["refund_of_id"] != "p-1" {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("reason required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)

		w := serve(newPaymentRouter(uc), http.MethodPost, "/v1/payments/p-1/refund", `{"amount":"10.00"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListInvoicePayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	uc.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.Payment{
		{ID: "p-1", Kind: entities.PaymentKindPayment, Amount: decimal.RequireFromString("100"), Status: entities.PaymentStatusCompleted},
		{ID: "r-1", Kind: entities.PaymentKindRefund, Amount: decimal.RequireFromString("40"), Status: entities.PaymentStatusRefunded, RefundOfID: "p-1"},
	}, nil)

	w := serve(newPaymentRouter(uc), http.MethodGet, "/v1/invoices/inv-1/payments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0]["amount"] != "100.00" || got[1]["amount"] != "40.00" {
		t.Fatalf("unexpected ledger: %v", got)
	}
}

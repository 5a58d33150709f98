package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/errs"
	"repairdesk/internal/usecase/interfaces"
	mock_interfaces "repairdesk/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func cash(invoiceID, amount string) ApplyPaymentInput {
	return ApplyPaymentInput{InvoiceID: invoiceID, Amount: dec(amount), Method: entities.PaymentMethodCash, PerformedBy: "front-desk"}
}

func TestApplyPayment_PartialThenPaid(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)

	_, err := s.payments.ApplyPayment(ctx, cash(inv.ID, "100.00"))
	require.NoError(t, err)
	inv, _ = s.invoices.GetByID(ctx, inv.ID)
	assert.Equal(t, entities.InvoiceStatusPartial, inv.Status)
	assert.Equal(t, "137.07", inv.AmountDue.StringFixed(2))

	_, err = s.payments.ApplyPayment(ctx, cash(inv.ID, "137.07"))
	require.NoError(t, err)
	inv, _ = s.invoices.GetByID(ctx, inv.ID)
	assert.Equal(t, entities.InvoiceStatusPaid, inv.Status)
	assert.True(t, inv.AmountDue.IsZero())

	ledger, err := s.payments.ListByInvoiceID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Len(t, ledger, 2)
	assert.True(t, entities.AmountPaid(ledger).Equal(inv.AmountPaid))
}

func TestApplyPayment_RejectsOverpaymentWithoutWriting(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)

	_, err := s.payments.ApplyPayment(ctx, cash(inv.ID, "237.08"))
	assert.True(t, errors.Is(err, errs.ErrExceedsBalance))

	after, _ := s.invoices.GetByID(ctx, inv.ID)
	assert.Equal(t, inv.Version, after.Version)
	ledger, _ := s.payments.ListByInvoiceID(ctx, inv.ID)
	assert.Empty(t, ledger)
}

func TestApplyPayment_Validation(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)

	cases := []struct {
		name string
		in   ApplyPaymentInput
		kind errs.Kind
	}{
		{name: "zero", in: cash(inv.ID, "0"), kind: errs.KindValidation},
		{name: "negative", in: cash(inv.ID, "-5"), kind: errs.KindValidation},
		{name: "sub-cent", in: cash(inv.ID, "10.005"), kind: errs.KindValidation},
		{name: "method", in: ApplyPaymentInput{InvoiceID: inv.ID, Amount: dec("10"), Method: "BARTER"}, kind: errs.KindValidation},
		{name: "missing invoice", in: cash("nope", "10"), kind: errs.KindNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.payments.ApplyPayment(ctx, tc.in)
			assert.Equal(t, tc.kind, errs.KindOf(err))
		})
	}

	_, err := s.invoices.Void(ctx, inv.ID, "duplicate", "manager")
	require.NoError(t, err)
	_, err = s.payments.ApplyPayment(ctx, cash(inv.ID, "10.00"))
	assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
}

func TestApplyPayment_ConcurrentPaymentsNeverOverpay(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)

	done := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			_, err := s.payments.ApplyPayment(ctx, cash(inv.ID, "100.00"))
			done <- err
		}()
	}
	for i := 0; i < 4; i++ {
		if err := <-done; err != nil {
			kind := errs.KindOf(err)
			assert.Contains(t, []errs.Kind{errs.KindConflict, errs.KindExceedsBalance}, kind)
		}
	}

	inv, _ = s.invoices.GetByID(ctx, inv.ID)
	ledger, _ := s.payments.ListByInvoiceID(ctx, inv.ID)
	assert.True(t, entities.AmountPaid(ledger).Equal(inv.AmountPaid))
	assert.False(t, inv.AmountPaid.GreaterThan(inv.Total))
}

func TestRefund(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)
	p, err := s.payments.ApplyPayment(ctx, cash(inv.ID, "237.07"))
	require.NoError(t, err)

	_, err = s.payments.Refund(ctx, RefundInput{PaymentID: p.ID, Amount: decPtr("50.00")})
	assert.True(t, errors.Is(err, errs.ErrValidation), "reason is required")

	r, err := s.payments.Refund(ctx, RefundInput{PaymentID: p.ID, Amount: decPtr("50.00"), Reason: "goodwill", RefundID: "refund-1"})
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentKindRefund, r.Kind)
	assert.Equal(t, entities.PaymentStatusRefunded, r.Status)
	assert.Equal(t, p.ID, r.RefundOfID)

	again, err := s.payments.Refund(ctx, RefundInput{PaymentID: p.ID, Amount: decPtr("50.00"), Reason: "goodwill", RefundID: "refund-1"})
	require.NoError(t, err)
	assert.Equal(t, r.ID, again.ID)

	inv, _ = s.invoices.GetByID(ctx, inv.ID)
	assert.Equal(t, entities.InvoiceStatusPartial, inv.Status)
	assert.Equal(t, "50.00", inv.AmountDue.StringFixed(2))

	orig, _ := s.payments.GetByID(ctx, p.ID)
	assert.Equal(t, entities.PaymentStatusCompleted, orig.Status, "original payment is never edited")

	_, err = s.payments.Refund(ctx, RefundInput{PaymentID: p.ID, Amount: decPtr("187.08"), Reason: "too much"})
	assert.True(t, errors.Is(err, errs.ErrExceedsBalance))

	rest, err := s.payments.Refund(ctx, RefundInput{PaymentID: p.ID, Reason: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "187.07", rest.Amount.StringFixed(2))

	_, err = s.payments.Refund(ctx, RefundInput{PaymentID: p.ID, Reason: "again"})
	assert.True(t, errors.Is(err, errs.ErrExceedsBalance))

	_, err = s.payments.Refund(ctx, RefundInput{PaymentID: p.ID, Amount: decPtr("1.00"), Reason: "reused id", RefundID: p.ID})
	assert.True(t, errors.Is(err, errs.ErrConflict), "refund id taken by the payment itself")

	_, err = s.payments.Refund(ctx, RefundInput{PaymentID: r.ID, Reason: "refund of refund"})
	assert.True(t, errors.Is(err, errs.ErrInvalidTransition))

	inv, _ = s.invoices.GetByID(ctx, inv.ID)
	assert.True(t, inv.AmountPaid.IsZero())
	assert.Equal(t, entities.InvoiceStatusSent, inv.Status)
}

// laggingLedger serves an invoice's ledger as it was when freeze ran, the
// way a secondary index that has not caught up would.
type laggingLedger struct {
	interfaces.IPaymentRepository
	frozen map[string][]entities.Payment
}

func (l *laggingLedger) freeze(ctx context.Context, invoiceID string) error {
	ledger, err := l.IPaymentRepository.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if l.frozen == nil {
		l.frozen = map[string][]entities.Payment{}
	}
	l.frozen[invoiceID] = ledger
	return nil
}

func (l *laggingLedger) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	if ledger, ok := l.frozen[invoiceID]; ok {
		return ledger, nil
	}
	return l.IPaymentRepository.ListByInvoiceID(ctx, invoiceID)
}

func TestRefund_LaggingLedgerCannotRefundTwice(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)
	p, err := s.payments.ApplyPayment(ctx, cash(inv.ID, "237.07"))
	require.NoError(t, err)

	ledger := &laggingLedger{IPaymentRepository: s.store.Payments()}
	require.NoError(t, ledger.freeze(ctx, inv.ID))
	payments := NewPaymentUseCase(ledger, s.store.Invoices(), nil, WithClock(s.clock.Now), WithShopID("test"))

	_, err = payments.Refund(ctx, RefundInput{PaymentID: p.ID, Reason: "cancelled"})
	require.NoError(t, err)
	_, err = payments.Refund(ctx, RefundInput{PaymentID: p.ID, Reason: "cancelled again"})
	assert.True(t, errors.Is(err, errs.ErrExceedsBalance), "got %v", err)

	inv, err = s.invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, inv.AmountPaid.IsZero())
	assert.Equal(t, "237.07", inv.AmountDue.StringFixed(2))
	assert.Equal(t, entities.InvoiceStatusSent, inv.Status)
}

func TestRefund_LaggingLedgerWithOtherPaymentsIsConflict(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)
	first, err := s.payments.ApplyPayment(ctx, cash(inv.ID, "100.00"))
	require.NoError(t, err)
	_, err = s.payments.ApplyPayment(ctx, cash(inv.ID, "137.07"))
	require.NoError(t, err)

	ledger := &laggingLedger{IPaymentRepository: s.store.Payments()}
	require.NoError(t, ledger.freeze(ctx, inv.ID))
	payments := NewPaymentUseCase(ledger, s.store.Invoices(), nil, WithClock(s.clock.Now), WithShopID("test"))

	_, err = payments.Refund(ctx, RefundInput{PaymentID: first.ID, Reason: "cancelled"})
	require.NoError(t, err)

	// still within the invoice's amountPaid, but the first payment is spent
	_, err = payments.Refund(ctx, RefundInput{PaymentID: first.ID, Amount: decPtr("50.00"), Reason: "again"})
	assert.True(t, errors.Is(err, errs.ErrConflict), "got %v", err)

	inv, err = s.invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "137.07", inv.AmountPaid.StringFixed(2))
}

func TestApplyPayment_CardWithoutPayloadUsesFeeSchedule(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)

	p, err := s.payments.ApplyPayment(ctx, ApplyPaymentInput{InvoiceID: inv.ID, Amount: dec("100.00"), Method: entities.PaymentMethodCard})
	require.NoError(t, err)
	assert.Equal(t, "3.20", p.ProcessorFee.StringFixed(2))
	assert.Equal(t, "96.80", p.NetAmount.StringFixed(2))
}

func TestApplyPayment_CardThroughGateway(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	s := newShop(t, gateway)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, 237.07, req["transaction_amount"])
			assert.Equal(t, inv.ID, req["external_reference"])
			payer := req["payer"].(map[string]any)
			assert.Equal(t, "customer", payer["type"])
			return "mp-123", "approved", json.RawMessage(`{"id":123,"status":"approved","fee_details":[{"amount":6.10},{"amount":0.77}]}`), nil
		})

	p, err := s.payments.ApplyPayment(ctx, ApplyPaymentInput{
		InvoiceID:       inv.ID,
		Amount:          dec("237.07"),
		Method:          entities.PaymentMethodCard,
		ProviderPayload: json.RawMessage(`{"payment_method_id":"visa","token":"tok","transaction_amount":1,"payer":{"email":"buyer@example.com"}}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "mp-123", p.ProviderPaymentID)
	assert.Equal(t, entities.PaymentStatusCompleted, p.Status)
	assert.Equal(t, "6.87", p.ProcessorFee.StringFixed(2))

	inv, _ = s.invoices.GetByID(ctx, inv.ID)
	assert.Equal(t, entities.InvoiceStatusPaid, inv.Status)
}

func TestApplyPayment_PendingCardLeavesInvoiceUnpaid(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	s := newShop(t, gateway)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", "in_process", json.RawMessage(`{"id":9}`), nil)

	p, err := s.payments.ApplyPayment(ctx, ApplyPaymentInput{
		InvoiceID:       inv.ID,
		Amount:          dec("50.00"),
		Method:          entities.PaymentMethodCard,
		ProviderPayload: json.RawMessage(`{"payment_method_id":"visa","payer":{"id":"42"}}`),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPending, p.Status)
	assert.Equal(t, "1.75", p.ProcessorFee.StringFixed(2))

	after, _ := s.invoices.GetByID(ctx, inv.ID)
	assert.True(t, after.AmountPaid.IsZero())
	ledger, _ := s.payments.ListByInvoiceID(ctx, inv.ID)
	assert.Len(t, ledger, 1)
}

func TestApplyPayment_GatewayErrors(t *testing.T) {
	ctx := context.Background()
	payload := json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"buyer@example.com"}}`)

	t.Run("not configured", func(t *testing.T) {
		s := newShop(t, nil)
		tk := s.pickedUpTicket(t, "cust-1", "screen")
		inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)
		_, err := s.payments.ApplyPayment(ctx, ApplyPaymentInput{InvoiceID: inv.ID, Amount: dec("10"), Method: entities.PaymentMethodCard, ProviderPayload: payload})
		assert.ErrorIs(t, err, ErrPaymentGatewayNotConfigured)
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newShop(t, mock_interfaces.NewMockIPaymentGateway(ctrl))
		tk := s.pickedUpTicket(t, "cust-1", "screen")
		inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)
		_, err := s.payments.ApplyPayment(ctx, ApplyPaymentInput{InvoiceID: inv.ID, Amount: dec("10"), Method: entities.PaymentMethodCard, ProviderPayload: json.RawMessage(`{"payer":{"email":"a@b.c"}}`)})
		assert.ErrorIs(t, err, ErrInvalidProviderPayload)
	})

	classified := []struct {
		name string
		err  error
		want error
	}{
		{name: "bad request", err: errors.New(`{"error":"bad_request","status":400}`), want: ErrPaymentGatewayBadRequest},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized","status":401}`), want: ErrPaymentGatewayUnauthorized},
		{name: "invalid users", err: errors.New(`{"message":"Invalid users involved","code":2034}`), want: ErrPaymentGatewayInvalidUsers},
		{name: "customer not found", err: errors.New(`{"message":"Customer not found","code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
	}
	for _, tc := range classified {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			s := newShop(t, gateway)
			tk := s.pickedUpTicket(t, "cust-1", "screen")
			inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := s.payments.ApplyPayment(ctx, ApplyPaymentInput{InvoiceID: inv.ID, Amount: dec("10"), Method: entities.PaymentMethodCard, ProviderPayload: payload})
			assert.ErrorIs(t, err, tc.want)
			ledger, _ := s.payments.ListByInvoiceID(ctx, inv.ID)
			assert.Empty(t, ledger)
		})
	}
}

func TestSandboxPayerNormalization(t *testing.T) {
	u := NewPaymentUseCase(nil, nil, nil, WithSandboxPayer(SandboxPayer{
		AccessToken: "TEST-123",
		Email:       "sandbox@testuser.com",
		UserID:      "777",
	}))

	m := map[string]any{"payer": map[string]any{"id": "777"}}
	u.normalizeSandboxPayerFromUserID(m)
	payer := m["payer"].(map[string]any)
	assert.Equal(t, "sandbox@testuser.com", payer["email"])
	assert.NotContains(t, payer, "id")

	empty := map[string]any{}
	u.ensurePayerDefaults(empty)
	assert.Equal(t, "sandbox@testuser.com", empty["payer"].(map[string]any)["email"])

	prod := NewPaymentUseCase(nil, nil, nil, WithSandboxPayer(SandboxPayer{AccessToken: "APP_USR-1", UserID: "777", Email: "x@y.z"}))
	kept := map[string]any{"payer": map[string]any{"id": "777"}}
	prod.normalizeSandboxPayerFromUserID(kept)
	assert.Contains(t, kept["payer"].(map[string]any), "id")
}

func TestInvoice_OverdueIsReportedNotStored(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, nil)
	tk := s.pickedUpTicket(t, "cust-1", "screen")
	inv := s.sentInvoice(t, "cust-1", tk.TicketNumber)

	s.clock.Set(inv.DueDate.Add(time.Minute))
	report, err := s.invoices.Overdue(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, report.Overdue)
	assert.Equal(t, entities.InvoiceStatusSent, report.StoredStatus)
	assert.Equal(t, entities.InvoiceStatusOverdue, report.EffectiveStatus)

	stored, _ := s.invoices.GetByID(ctx, inv.ID)
	assert.Equal(t, entities.InvoiceStatusSent, stored.Status)

	balance, err := s.customers.OutstandingBalance(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "237.07", balance.Outstanding.StringFixed(2))
	assert.Equal(t, "237.07", balance.OverdueAmount.StringFixed(2))
	assert.Equal(t, 1, balance.OverdueInvoices)
}

func TestProviderFee(t *testing.T) {
	fee, ok := providerFee(json.RawMessage(`{"fee_details":[{"amount":6.10},{"amount":0.77}]}`))
	require.True(t, ok)
	assert.Equal(t, "6.87", fee.StringFixed(2))

	_, ok = providerFee(json.RawMessage(`{"fee_details":[{"amount":1e400000000}]}`))
	assert.False(t, ok)

	_, ok = providerFee(json.RawMessage(`{"status":"approved"}`))
	assert.False(t, ok)
}

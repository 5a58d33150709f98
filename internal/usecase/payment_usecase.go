package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/domain/errs"
	"repairdesk/internal/domain/money"
	"repairdesk/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

type ApplyPaymentInput struct {
	InvoiceID       string
	Amount          decimal.Decimal
	Method          entities.PaymentMethod
	Reference       string
	ProviderPayload json.RawMessage
	PerformedBy     string
}

// RefundInput.Amount nil refunds everything still refundable on the payment.
// RefundID is optional; callers that may retry pass a stable one so the second
// attempt returns the first refund instead of issuing another.
type RefundInput struct {
	PaymentID   string
	Amount      *decimal.Decimal
	Reason      string
	PerformedBy string
	RefundID    string
}

// IPaymentUseCase is the append-only ledger.
//
// Requested behavior:
//   - every payment or refund is a new record, never an edit
//   - the record and the recomputed invoice are written together

type IPaymentUseCase interface {
	ApplyPayment(ctx context.Context, in ApplyPaymentInput) (entities.Payment, error)
	Refund(ctx context.Context, in RefundInput) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	invoices interfaces.IInvoiceRepository
	gateway  interfaces.IPaymentGateway
	opts     options
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, invoices interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, opts ...Option) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, invoices: invoices, gateway: gateway, opts: newOptions(opts)}
}

func (u *PaymentUseCase) ApplyPayment(ctx context.Context, in ApplyPaymentInput) (entities.Payment, error) {
	in.InvoiceID = strings.TrimSpace(in.InvoiceID)
	in.Method = entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(string(in.Method))))
	log.Debug().Str("invoice_id", in.InvoiceID).Str("method", string(in.Method)).Int("payload_len", len(in.ProviderPayload)).
		Msg("[payment][usecase] apply start")

	if err := requireID("invoice", in.InvoiceID); err != nil {
		return entities.Payment{}, err
	}
	if !in.Method.Valid() {
		return entities.Payment{}, errs.Validation("payment", "unknown method %q", in.Method)
	}
	if !in.Amount.IsPositive() {
		return entities.Payment{}, errs.Validation("payment", "amount must be greater than zero")
	}
	if !in.Amount.Equal(money.Round(in.Amount)) {
		return entities.Payment{}, errs.Validation("payment", "amount has more than %d decimal places", money.Scale)
	}

	inv, err := loadInvoice(ctx, u.invoices, in.InvoiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if inv.Status == entities.InvoiceStatusVoid {
		return entities.Payment{}, errs.InvalidTransition("invoice", inv.Status, "payment")
	}
	if in.Amount.GreaterThan(inv.AmountDue) {
		log.Warn().Str("invoice_id", inv.ID).Str("amount", money.Format(in.Amount)).Str("amount_due", money.Format(inv.AmountDue)).
			Msg("[payment][usecase] overpayment rejected")
		return entities.Payment{}, errs.New(errs.KindExceedsBalance, "payment", "amount %s exceeds amount due %s", money.Format(in.Amount), money.Format(inv.AmountDue))
	}

	now := u.opts.now()
	p := entities.Payment{
		ID:           uuid.NewString(),
		InvoiceID:    inv.ID,
		CustomerID:   inv.CustomerID,
		Kind:         entities.PaymentKindPayment,
		Amount:       in.Amount,
		Method:       in.Method,
		Reference:    strings.TrimSpace(in.Reference),
		ProcessorFee: money.ProcessorFee(in.Method == entities.PaymentMethodCard, in.Amount, u.opts.fees),
		Status:       entities.PaymentStatusCompleted,
		PerformedBy:  in.PerformedBy,
		CreatedAt:    now,
	}

	if in.Method == entities.PaymentMethodCard && len(in.ProviderPayload) > 0 {
		if err := u.charge(ctx, inv, &p, in.ProviderPayload); err != nil {
			return entities.Payment{}, err
		}
	}
	p.NetAmount = p.Amount.Sub(p.ProcessorFee)

	next := inv
	if p.Settled() {
		next = inv.WithAmountPaid(inv.AmountPaid.Add(p.Amount), now)
	}
	next.UpdatedBy = in.PerformedBy

	savedInv, saved, err := u.invoices.AppendPayment(ctx, next, p)
	if err != nil {
		if p.ProviderPaymentID != "" {
			log.Error().Err(err).Str("invoice_id", inv.ID).Str("provider_payment_id", p.ProviderPaymentID).
				Msg("[payment][usecase] card charged but ledger append failed")
		}
		return entities.Payment{}, storeErr("invoice", inv.ID, err)
	}
	log.Info().Str("invoice_id", savedInv.ID).Str("payment_id", saved.ID).Str("amount", money.Format(saved.Amount)).
		Str("status", string(saved.Status)).Str("invoice_status", string(savedInv.Status)).
		Str("amount_due", money.Format(savedInv.AmountDue)).Str("performed_by", in.PerformedBy).
		Msg("[payment][usecase] applied")
	return saved, nil
}

// charge runs a card payment through the gateway and copies the provider's
// id, outcome and fee onto p.
func (u *PaymentUseCase) charge(ctx context.Context, inv entities.Invoice, p *entities.Payment, payload json.RawMessage) error {
	if u.gateway == nil {
		log.Error().Str("invoice_id", inv.ID).Msg("[payment][usecase] gateway not configured")
		return ErrPaymentGatewayNotConfigured
	}
	if !json.Valid(payload) {
		return ErrInvalidProviderPayload
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return ErrInvalidProviderPayload
	}
	if !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Warn().Str("invoice_id", inv.ID).Msg("[payment][usecase] missing payment_method_id")
		return ErrInvalidProviderPayload
	}
	u.normalizeSandboxPayerFromUserID(reqMap)
	u.ensurePayerDefaults(reqMap)
	if !hasPayer(reqMap) {
		log.Warn().Str("invoice_id", inv.ID).Msg("[payment][usecase] missing/invalid payer")
		return ErrInvalidProviderPayload
	}

	// The ledger, not the caller, decides how much is charged.
	reqMap["transaction_amount"] = json.Number(money.Format(p.Amount))
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	body, err := json.Marshal(reqMap)
	if err != nil {
		return err
	}

	providerID, providerStatus, resp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("[payment][usecase] payment gateway failed")
		return classifyGatewayError(err)
	}
	log.Info().Str("invoice_id", inv.ID).Str("provider_payment_id", providerID).Str("provider_status", providerStatus).
		Msg("[payment][usecase] payment gateway responded")

	p.ProviderPaymentID = providerID
	p.ProviderPayload = resp
	p.Status = providerOutcome(providerStatus)
	if fee, ok := providerFee(resp); ok {
		p.ProcessorFee = fee
	}
	return nil
}

func (u *PaymentUseCase) Refund(ctx context.Context, in RefundInput) (entities.Payment, error) {
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	in.Reason = strings.TrimSpace(in.Reason)
	if err := requireID("payment", in.PaymentID); err != nil {
		return entities.Payment{}, err
	}
	if in.Reason == "" {
		return entities.Payment{}, errs.Validation("payment", "refund reason is required")
	}
	if in.Amount != nil && (!in.Amount.IsPositive() || !in.Amount.Equal(money.Round(*in.Amount))) {
		return entities.Payment{}, errs.Validation("payment", "refund amount must be a positive amount with at most %d decimal places", money.Scale)
	}

	if in.RefundID != "" {
		if existing, err := u.repo.GetByID(ctx, in.RefundID); err != nil {
			return entities.Payment{}, fmt.Errorf("payment %s: %w", in.RefundID, err)
		} else if existing.ID != "" {
			if existing.Kind != entities.PaymentKindRefund || existing.RefundOfID != in.PaymentID {
				return entities.Payment{}, errs.Conflict("payment", in.RefundID, interfaces.ErrItemExists)
			}
			return existing, nil
		}
	}

	orig, err := u.GetByID(ctx, in.PaymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if !orig.Settled() {
		return entities.Payment{}, errs.InvalidTransition("payment", fmt.Sprintf("%s %s", orig.Kind, orig.Status), entities.PaymentStatusRefunded)
	}

	// Invoice first, ledger second: any append after this read bumps the
	// invoice version and fails our write.
	inv, err := loadInvoice(ctx, u.invoices, orig.InvoiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	ledger, err := u.repo.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("ledger %s: %w", inv.ID, err)
	}
	// The ledger comes from an index that may lag; the invoice was read
	// consistently, so its amountPaid caps every refund.
	refundable := decimal.Min(entities.Refundable(orig, ledger), inv.AmountPaid)
	amount := refundable
	if in.Amount != nil {
		amount = *in.Amount
	}
	if !refundable.IsPositive() || amount.GreaterThan(refundable) {
		return entities.Payment{}, errs.New(errs.KindExceedsBalance, "payment", "refund %s exceeds refundable %s", money.Format(amount), money.Format(refundable))
	}
	if folded := entities.AmountPaid(ledger); !folded.Equal(inv.AmountPaid) {
		log.Warn().Str("invoice_id", inv.ID).Str("ledger_paid", money.Format(folded)).
			Str("invoice_paid", money.Format(inv.AmountPaid)).Msg("[payment][usecase] ledger behind invoice, refund rejected")
		return entities.Payment{}, errs.Conflict("invoice", inv.ID, nil)
	}

	now := u.opts.now()
	id := in.RefundID
	if id == "" {
		id = uuid.NewString()
	}
	r := entities.Payment{
		ID:          id,
		InvoiceID:   inv.ID,
		CustomerID:  orig.CustomerID,
		Kind:        entities.PaymentKindRefund,
		Amount:      amount,
		Method:      orig.Method,
		NetAmount:   amount,
		Status:      entities.PaymentStatusRefunded,
		RefundOfID:  orig.ID,
		Reason:      in.Reason,
		PerformedBy: in.PerformedBy,
		CreatedAt:   now,
	}
	r.ProcessorFee = decimal.Zero

	next := inv.WithAmountPaid(inv.AmountPaid.Sub(amount), now)
	next.UpdatedBy = in.PerformedBy
	savedInv, saved, err := u.invoices.AppendPayment(ctx, next, r)
	if err != nil {
		return entities.Payment{}, storeErr("invoice", inv.ID, err)
	}
	log.Info().Str("invoice_id", savedInv.ID).Str("refund_id", saved.ID).Str("refund_of", orig.ID).
		Str("amount", money.Format(amount)).Str("invoice_status", string(savedInv.Status)).
		Str("performed_by", in.PerformedBy).Msg("[payment][usecase] refunded")
	return saved, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if err := requireID("payment", id); err != nil {
		return entities.Payment{}, err
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("payment %s: %w", id, err)
	}
	if p.ID == "" {
		return entities.Payment{}, errs.NotFound("payment", id)
	}
	return p, nil
}

func (u *PaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if err := requireID("invoice", invoiceID); err != nil {
		return nil, err
	}
	if _, err := loadInvoice(ctx, u.invoices, invoiceID); err != nil {
		return nil, err
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

func providerOutcome(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusCompleted
	case "pending", "in_process", "in_mediation":
		return entities.PaymentStatusPending
	}
	return entities.PaymentStatusFailed
}

// providerFee sums fee_details from a Mercado Pago payment response.
func providerFee(resp json.RawMessage) (decimal.Decimal, bool) {
	var body struct {
		FeeDetails []struct {
			Amount decimal.Decimal `json:"amount"`
		} `json:"fee_details"`
	}
	if len(resp) == 0 || json.Unmarshal(resp, &body) != nil || len(body.FeeDetails) == 0 {
		return decimal.Zero, false
	}
	fee := decimal.Zero
	for _, f := range body.FeeDetails {
		if money.CheckBounds("fee_details.amount", f.Amount) != nil {
			return decimal.Zero, false
		}
		fee = fee.Add(f.Amount)
	}
	return money.Round(fee), true
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.sandboxPayer.AccessToken), "TEST-")
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Either payer.id or payer.email identifies the buyer; fill email only
	// when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.sandboxPayer.Email); email != "" {
		payer["email"] = email
	} else if u.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox user id for its
// email, which is what the sandbox accepts.
func (u *PaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.sandboxPayer.UserID)
	email := strings.TrimSpace(u.opts.sandboxPayer.Email)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Debug().Msg("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

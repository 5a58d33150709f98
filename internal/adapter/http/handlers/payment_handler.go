package handlers

import (
	"net/http"

	request "repairdesk/internal/adapter/http/dto/request"
	response "repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PaymentHandler serves the append-only ledger.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ApplyPayment godoc
// @Summary      Record a payment against an invoice
// @Description  CARD payments are charged through Mercado Pago with the supplied provider_payload.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Invoice id"
// @Param        body  body      request.ApplyPaymentRequest  true  "Payment"
// @Success      201   {object}  response.PaymentResponse
// @Failure      422   {object}  pkg.HTTPError  "EXCEEDS_BALANCE"
// @Router       /invoices/{id}/payments [post]
func (h *PaymentHandler) ApplyPayment(c *gin.Context) {
	invoiceID := c.Param("id")
	var payload request.ApplyPaymentRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput(invoiceID, performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	log.Debug().Str("invoice_id", invoiceID).Str("method", string(in.Method)).Msg("[payment][handler] apply start")

	p, err := h.usecase.ApplyPayment(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(p))
}

// ListInvoicePayments godoc
// @Summary      List the ledger of an invoice, oldest first
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {array}   response.PaymentResponse
// @Router       /invoices/{id}/payments [get]
func (h *PaymentHandler) ListInvoicePayments(c *gin.Context) {
	ps, err := h.usecase.ListByInvoiceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(ps))
}

// GetPayment godoc
// @Summary      Get a ledger record
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// RefundPayment godoc
// @Summary      Refund all or part of a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Payment id"
// @Param        body  body      request.RefundRequest  true  "Refund"
// @Success      201   {object}  response.PaymentResponse
// @Router       /payments/{id}/refund [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	var payload request.RefundRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput(c.Param("id"), performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	p, err := h.usecase.Refund(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(p))
}

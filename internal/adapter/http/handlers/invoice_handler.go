package handlers

import (
	"context"
	"net/http"
	"time"

	request "repairdesk/internal/adapter/http/dto/request"
	response "repairdesk/internal/adapter/http/dto/response"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves the bill lifecycle. Responses carry the effective
// status, so the handler needs a clock.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	now     func() time.Time
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, now: time.Now}
}

// CreateInvoice godoc
// @Summary      Create a draft invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateInvoiceRequest  true  "Invoice"
// @Success      201   {object}  response.InvoiceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput(performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	inv, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv, h.now()))
}

// CreateInvoiceFromEstimate godoc
// @Summary      Bill an approved or converted estimate
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                               true   "Estimate id"
// @Param        body         body      request.InvoiceFromEstimateRequest  false  "Discount and due date"
// @Success      201          {object}  response.InvoiceResponse
// @Router       /invoices/from-estimate/{estimate_id} [post]
func (h *InvoiceHandler) CreateInvoiceFromEstimate(c *gin.Context) {
	var payload request.InvoiceFromEstimateRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	discount, due, err := payload.Resolve()
	if err != nil {
		respondError(c, err)
		return
	}
	inv, err := h.usecase.CreateFromEstimate(c.Request.Context(), c.Param("estimate_id"), discount, due, performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv, h.now()))
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv, h.now()))
}

// SendInvoice godoc
// @Summary      Send an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.InvoiceResponse
// @Router       /invoices/{id}/send [post]
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	h.transition(c, h.usecase.Send)
}

// RemindInvoice godoc
// @Summary      Send a payment reminder
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.InvoiceResponse
// @Router       /invoices/{id}/remind [post]
func (h *InvoiceHandler) RemindInvoice(c *gin.Context) {
	h.transition(c, h.usecase.Remind)
}

// ViewInvoice godoc
// @Summary      Record that the customer opened the invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.InvoiceResponse
// @Router       /invoices/{id}/view [post]
func (h *InvoiceHandler) ViewInvoice(c *gin.Context) {
	h.transition(c, h.usecase.MarkViewed)
}

// VoidInvoice godoc
// @Summary      Void an unpaid invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Invoice id"
// @Param        body  body      request.ReasonRequest  true  "Reason"
// @Success      200   {object}  response.InvoiceResponse
// @Router       /invoices/{id}/void [post]
func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	var payload request.ReasonRequest
	if !bindJSON(c, &payload) {
		return
	}
	inv, err := h.usecase.Void(c.Request.Context(), c.Param("id"), payload.Reason, performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv, h.now()))
}

// GetInvoiceOverdue godoc
// @Summary      Derived overdue view of an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.OverdueResponse
// @Router       /invoices/{id}/overdue [get]
func (h *InvoiceHandler) GetInvoiceOverdue(c *gin.Context) {
	r, err := h.usecase.Overdue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOverdueReport(r))
}

func (h *InvoiceHandler) transition(c *gin.Context, fn func(ctx context.Context, id, performedBy string) (entities.Invoice, error)) {
	inv, err := fn(c.Request.Context(), c.Param("id"), performedBy(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv, h.now()))
}
